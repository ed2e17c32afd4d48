package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stayelo/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes wires the admin dashboard. The group is expected to carry
// the auth and admin-role middleware.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/admin/dashboard", h.Dashboard)
}

func (h *Handler) Dashboard(c *gin.Context) {
	stats, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load dashboard")
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"total_bookings": stats.TotalBookings,
		"total_revenue":  stats.TotalRevenue,
	})
}
