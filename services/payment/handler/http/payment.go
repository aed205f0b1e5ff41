package http

import (
	nethttp "net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/vitrine-app/vitrine/internal/pkg/logger"
	"github.com/vitrine-app/vitrine/internal/pkg/models"
	"github.com/vitrine-app/vitrine/internal/utils"
	"github.com/vitrine-app/vitrine/services/payment"
)

// PaymentHandler handles HTTP requests for payment methods and settlements
type PaymentHandler struct {
	paymentUC payment.PaymentUC
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payment.PaymentUC) *PaymentHandler {
	return &PaymentHandler{paymentUC: paymentUC}
}

type refundPaymentRequest struct {
	Reason string `json:"reason"`
}

func ownerID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get("user_id").(uuid.UUID)
	return id, ok
}

// ListMethods returns the authenticated user's stored payment methods
func (h *PaymentHandler) ListMethods(c echo.Context) error {
	owner, ok := ownerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	methods, err := h.paymentUC.ListMethods(c.Request().Context(), owner)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Payment methods retrieved", methods)
}

// AddMethod registers a new card for the authenticated user
func (h *PaymentHandler) AddMethod(c echo.Context) error {
	owner, ok := ownerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.AddPaymentMethodRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	method, err := h.paymentUC.AddMethod(c.Request().Context(), owner, &req)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Payment method added", method)
}

// SetDefaultMethod flips the user's default to the given method
func (h *PaymentHandler) SetDefaultMethod(c echo.Context) error {
	owner, ok := ownerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	methodID, err := uuid.Parse(c.Param("methodId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid payment method ID")
	}

	if err := h.paymentUC.SetDefaultMethod(c.Request().Context(), owner, methodID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Default payment method updated", nil)
}

// RemoveMethod deletes a stored card
func (h *PaymentHandler) RemoveMethod(c echo.Context) error {
	owner, ok := ownerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	methodID, err := uuid.Parse(c.Param("methodId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid payment method ID")
	}

	if err := h.paymentUC.RemoveMethod(c.Request().Context(), owner, methodID); err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Payment method removed", nil)
}

// GetPaymentRecord returns the settlement record of a participation
func (h *PaymentHandler) GetPaymentRecord(c echo.Context) error {
	participationID, err := uuid.Parse(c.Param("participationId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid participation ID")
	}

	record, err := h.paymentUC.GetPaymentRecord(c.Request().Context(), participationID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Payment record retrieved", record)
}

// ReleasePayment restamps the release date of a completed settlement
func (h *PaymentHandler) ReleasePayment(c echo.Context) error {
	participationID, err := uuid.Parse(c.Param("participationId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid participation ID")
	}

	record, err := h.paymentUC.ReleaseCampaignPayment(c.Request().Context(), participationID)
	if err != nil {
		logger.Warn("Failed to release payment",
			logger.ErrorField(err),
			logger.String("participation_id", participationID.String()),
		)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Payment released", record)
}

// RefundPayment refunds a completed settlement through the provider
func (h *PaymentHandler) RefundPayment(c echo.Context) error {
	participationID, err := uuid.Parse(c.Param("participationId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid participation ID")
	}

	var req refundPaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	record, err := h.paymentUC.RefundCampaignPayment(c.Request().Context(), participationID, req.Reason)
	if err != nil {
		logger.Warn("Failed to refund payment",
			logger.ErrorField(err),
			logger.String("participation_id", participationID.String()),
		)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Payment refunded", record)
}
