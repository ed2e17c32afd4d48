package response

import "github.com/gin-gonic/gin"

// envelope is the wire shape every endpoint answers with. Exactly one of
// Data or Err is set.
type envelope struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Err     *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func Success(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, envelope{Success: true, Data: data})
}

func Error(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, envelope{Success: false, Err: &errorBody{Code: code, Message: message}})
}

// ErrorWithDetails is Error plus a machine-readable details payload, used
// for field-level validation failures.
func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details any) {
	c.JSON(statusCode, envelope{Success: false, Err: &errorBody{Code: code, Message: message, Details: details}})
}
