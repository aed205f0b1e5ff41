package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/vitrine-app/vitrine/internal/pkg/middleware"
	"github.com/vitrine-app/vitrine/internal/pkg/models"
	httpHandler "github.com/vitrine-app/vitrine/services/payment/handler/http"
)

// Handler aggregates the payment service handlers
type Handler struct {
	payment *httpHandler.PaymentHandler
	cfg     *models.Config
}

// NewHandler creates the payment handler aggregate
func NewHandler(payment *httpHandler.PaymentHandler, cfg *models.Config) *Handler {
	return &Handler{
		payment: payment,
		cfg:     cfg,
	}
}

// RegisterRoutes wires the payment routes onto the router
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	methods := e.Group("/payment-methods", middleware.JWTAuthMiddleware(h.cfg.JWT))
	methods.GET("", h.payment.ListMethods)
	methods.POST("", h.payment.AddMethod)
	methods.PUT("/:methodId/default", h.payment.SetDefaultMethod)
	methods.DELETE("/:methodId", h.payment.RemoveMethod)

	// compensation endpoints for support staff, never part of the lifecycle
	admin := e.Group("/admin/payments",
		middleware.JWTAuthMiddleware(h.cfg.JWT),
		middleware.RequireRole("admin"))
	admin.GET("/:participationId", h.payment.GetPaymentRecord)
	admin.POST("/:participationId/release", h.payment.ReleasePayment)
	admin.POST("/:participationId/refund", h.payment.RefundPayment)
}
