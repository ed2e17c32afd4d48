package payment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"stayelo/internal/domain"
	"stayelo/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the payment endpoints. The group is expected to carry
// the auth middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/order", h.CreateOrder)
	rg.POST("/payments/verify", h.VerifyPayment)
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Amount is required")
		return
	}

	order, err := h.service.CreateOrder(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			response.Error(c, http.StatusServiceUnavailable, "PAYMENTS_UNAVAILABLE", "Payment gateway is not configured")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create order")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"order": order})
}

func (h *Handler) VerifyPayment(c *gin.Context) {
	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "MISSING_FIELD", "Order id, payment id and signature are required")
		return
	}
	req.UserID = c.GetInt64("user_id")

	b, err := h.service.ConfirmPayment(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingField):
			response.Error(c, http.StatusBadRequest, "MISSING_FIELD", "Missing required fields")
		case errors.Is(err, ErrInvalidSignature):
			response.Error(c, http.StatusBadRequest, "PAYMENT_VERIFICATION_FAILED", "Invalid payment signature")
		case errors.Is(err, ErrRoomUnavailable):
			response.Error(c, http.StatusConflict, "ROOM_UNAVAILABLE", "Room is unavailable for the selected dates")
		case errors.Is(err, domain.ErrPaymentFinal):
			response.Error(c, http.StatusConflict, "PAYMENT_FINAL", "Payment status for this order is already final")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to verify payment")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}
