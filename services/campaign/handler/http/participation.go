package http

import (
	nethttp "net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/vitrine-app/vitrine/internal/pkg/logger"
	"github.com/vitrine-app/vitrine/internal/utils"
	"github.com/vitrine-app/vitrine/services/campaign"
)

// ParticipationHandler handles HTTP requests for the participation lifecycle
type ParticipationHandler struct {
	participationUC campaign.ParticipationUC
}

// NewParticipationHandler creates a new participation handler
func NewParticipationHandler(participationUC campaign.ParticipationUC) *ParticipationHandler {
	return &ParticipationHandler{participationUC: participationUC}
}

type acceptProposalRequest struct {
	TermsAccepted bool `json:"terms_accepted"`
}

type submitDeliveryRequest struct {
	PostURL   string          `json:"post_url"`
	Checklist map[string]bool `json:"checklist"`
}

type approveValidationRequest struct {
	Rating    int             `json:"rating"`
	Checklist map[string]bool `json:"checklist"`
}

type rejectValidationRequest struct {
	Feedback string `json:"feedback"`
	Revise   bool   `json:"revise"`
}

type processPaymentRequest struct {
	MethodID uuid.UUID `json:"method_id"`
}

func (h *ParticipationHandler) parseIDs(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	campaignID, err := uuid.Parse(c.Param("campaignId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	influencerID, err := uuid.Parse(c.Param("influencerId"))
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return campaignID, influencerID, nil
}

// InviteInfluencer creates a participation in PROPOSAL phase
func (h *ParticipationHandler) InviteInfluencer(c echo.Context) error {
	campaignID, influencerID, err := h.parseIDs(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid campaign or influencer ID")
	}

	participation, err := h.participationUC.InviteInfluencer(c.Request().Context(), campaignID, influencerID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusCreated, "Influencer invited", participation)
}

// AcceptProposal advances the participation from PROPOSAL to PRODUCTION
func (h *ParticipationHandler) AcceptProposal(c echo.Context) error {
	campaignID, influencerID, err := h.parseIDs(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid campaign or influencer ID")
	}

	var req acceptProposalRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	participation, err := h.participationUC.AcceptProposal(c.Request().Context(), campaignID, influencerID, req.TermsAccepted)
	if err != nil {
		logger.Warn("Failed to accept proposal",
			logger.ErrorField(err),
			logger.String("campaign_id", campaignID.String()),
			logger.String("influencer_id", influencerID.String()),
		)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Proposal accepted", participation)
}

// RejectProposal moves the participation to the terminal REJECTED_PROPOSAL phase
func (h *ParticipationHandler) RejectProposal(c echo.Context) error {
	campaignID, influencerID, err := h.parseIDs(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid campaign or influencer ID")
	}

	participation, err := h.participationUC.RejectProposal(c.Request().Context(), campaignID, influencerID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Proposal rejected", participation)
}

// CompleteProduction advances the participation from PRODUCTION to DELIVERY
func (h *ParticipationHandler) CompleteProduction(c echo.Context) error {
	campaignID, influencerID, err := h.parseIDs(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid campaign or influencer ID")
	}

	participation, err := h.participationUC.CompleteProduction(c.Request().Context(), campaignID, influencerID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Production completed", participation)
}

// SubmitDelivery stores the post URL and checklist, moving to VALIDATION
func (h *ParticipationHandler) SubmitDelivery(c echo.Context) error {
	campaignID, influencerID, err := h.parseIDs(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid campaign or influencer ID")
	}

	var req submitDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	participation, err := h.participationUC.SubmitDelivery(c.Request().Context(), campaignID, influencerID, req.PostURL, req.Checklist)
	if err != nil {
		logger.Warn("Failed to submit delivery",
			logger.ErrorField(err),
			logger.String("campaign_id", campaignID.String()),
			logger.String("influencer_id", influencerID.String()),
		)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Delivery submitted", participation)
}

// ApproveValidation records the rating and moves to PAYMENT
func (h *ParticipationHandler) ApproveValidation(c echo.Context) error {
	campaignID, influencerID, err := h.parseIDs(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid campaign or influencer ID")
	}

	var req approveValidationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	participation, err := h.participationUC.ApproveValidation(c.Request().Context(), campaignID, influencerID, req.Rating, req.Checklist)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Content approved", participation)
}

// RejectValidation records feedback; with revise=true the participation
// returns to PRODUCTION, otherwise it ends in REJECTED_CONTENT
func (h *ParticipationHandler) RejectValidation(c echo.Context) error {
	campaignID, influencerID, err := h.parseIDs(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid campaign or influencer ID")
	}

	var req rejectValidationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	participation, err := h.participationUC.RejectValidation(c.Request().Context(), campaignID, influencerID, req.Feedback, req.Revise)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Content rejected", participation)
}

// ProcessPayment settles the campaign budget and completes the participation
func (h *ParticipationHandler) ProcessPayment(c echo.Context) error {
	campaignID, influencerID, err := h.parseIDs(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid campaign or influencer ID")
	}

	var req processPaymentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.MethodID == uuid.Nil {
		return utils.BadRequestResponse(c, "Payment method ID is required")
	}

	participation, err := h.participationUC.ProcessPayment(c.Request().Context(), campaignID, influencerID, req.MethodID)
	if err != nil {
		logger.Error("Failed to process payment",
			logger.ErrorField(err),
			logger.String("campaign_id", campaignID.String()),
			logger.String("influencer_id", influencerID.String()),
		)
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Payment processed", participation)
}

// GetParticipation returns one participation
func (h *ParticipationHandler) GetParticipation(c echo.Context) error {
	campaignID, influencerID, err := h.parseIDs(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid campaign or influencer ID")
	}

	participation, err := h.participationUC.GetParticipation(c.Request().Context(), campaignID, influencerID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Participation retrieved", participation)
}

// ListParticipations returns every participation of a campaign
func (h *ParticipationHandler) ListParticipations(c echo.Context) error {
	campaignID, err := uuid.Parse(c.Param("campaignId"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid campaign ID")
	}

	participations, err := h.participationUC.ListParticipations(c.Request().Context(), campaignID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Participations retrieved", participations)
}

// GetSteps returns the derived step projection for a participation
func (h *ParticipationHandler) GetSteps(c echo.Context) error {
	campaignID, influencerID, err := h.parseIDs(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid campaign or influencer ID")
	}

	projection, err := h.participationUC.ProjectSteps(c.Request().Context(), campaignID, influencerID)
	if err != nil {
		return utils.DomainErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, nethttp.StatusOK, "Steps retrieved", projection)
}
