package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/vitrine-app/vitrine/internal/pkg/apperrors"
	"github.com/vitrine-app/vitrine/internal/pkg/constants"
	"github.com/vitrine-app/vitrine/internal/pkg/logger"
	"github.com/vitrine-app/vitrine/internal/pkg/models"
	"github.com/vitrine-app/vitrine/services/campaign"
)

// participationUC implements the campaign.ParticipationUC interface
type participationUC struct {
	cfg        *models.Config
	repo       campaign.CampaignRepo
	gw         campaign.CampaignGW
	settlement campaign.SettlementGW
}

// NewParticipationUC creates a new participation use case
func NewParticipationUC(
	cfg *models.Config,
	repo campaign.CampaignRepo,
	gw campaign.CampaignGW,
	settlement campaign.SettlementGW,
) campaign.ParticipationUC {
	return &participationUC{
		cfg:        cfg,
		repo:       repo,
		gw:         gw,
		settlement: settlement,
	}
}

// InviteInfluencer creates a participation in PROPOSAL phase with an
// all-false checklist keyed by the campaign requirements.
func (uc *participationUC) InviteInfluencer(ctx context.Context, campaignID, influencerID uuid.UUID) (*models.Participation, error) {
	cmp, err := uc.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	participation := models.NewParticipation(cmp, influencerID)
	if err := uc.repo.CreateParticipation(ctx, participation); err != nil {
		return nil, err
	}

	return participation, nil
}

// AcceptProposal moves the participation from PROPOSAL to PRODUCTION once the
// influencer accepts the campaign terms.
func (uc *participationUC) AcceptProposal(ctx context.Context, campaignID, influencerID uuid.UUID, termsAccepted bool) (*models.Participation, error) {
	p, err := uc.repo.GetParticipation(ctx, campaignID, influencerID)
	if err != nil {
		return nil, err
	}
	if p.Phase != models.PhaseProposal {
		return nil, apperrors.NewInvalidStateTransition("acceptProposal", string(p.Phase))
	}
	if !termsAccepted {
		return nil, apperrors.NewPreconditionFailed("campaign terms must be accepted")
	}

	now := models.Now()
	expected := p.Version
	p.Phase = models.PhaseProduction
	p.AcceptedAt = &now
	p.UpdatedAt = now

	if err := uc.repo.UpdateParticipation(ctx, p, expected); err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, constants.SubjectParticipationAccepted, p)
	return p, nil
}

// RejectProposal moves the participation to the terminal REJECTED_PROPOSAL
// phase.
func (uc *participationUC) RejectProposal(ctx context.Context, campaignID, influencerID uuid.UUID) (*models.Participation, error) {
	p, err := uc.repo.GetParticipation(ctx, campaignID, influencerID)
	if err != nil {
		return nil, err
	}
	if p.Phase != models.PhaseProposal {
		return nil, apperrors.NewInvalidStateTransition("rejectProposal", string(p.Phase))
	}

	expected := p.Version
	p.Phase = models.PhaseRejectedProposal
	p.UpdatedAt = models.Now()

	if err := uc.repo.UpdateParticipation(ctx, p, expected); err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, constants.SubjectParticipationRejected, p)
	return p, nil
}

// CompleteProduction moves the participation from PRODUCTION to DELIVERY.
func (uc *participationUC) CompleteProduction(ctx context.Context, campaignID, influencerID uuid.UUID) (*models.Participation, error) {
	p, err := uc.repo.GetParticipation(ctx, campaignID, influencerID)
	if err != nil {
		return nil, err
	}
	if p.Phase != models.PhaseProduction {
		return nil, apperrors.NewInvalidStateTransition("completeProduction", string(p.Phase))
	}

	expected := p.Version
	p.Phase = models.PhaseDelivery
	p.UpdatedAt = models.Now()

	if err := uc.repo.UpdateParticipation(ctx, p, expected); err != nil {
		return nil, err
	}

	return p, nil
}

// SubmitDelivery stores the published post URL and the confirmed checklist,
// moving the participation to VALIDATION. Every campaign requirement must be
// confirmed and the checklist key set must match the campaign's requirements.
func (uc *participationUC) SubmitDelivery(ctx context.Context, campaignID, influencerID uuid.UUID, postURL string, checklist map[string]bool) (*models.Participation, error) {
	p, err := uc.repo.GetParticipation(ctx, campaignID, influencerID)
	if err != nil {
		return nil, err
	}
	if p.Phase != models.PhaseDelivery {
		return nil, apperrors.NewInvalidStateTransition("submitDelivery", string(p.Phase))
	}
	if postURL == "" {
		return nil, apperrors.NewPreconditionFailed("post URL is required")
	}

	cmp, err := uc.repo.GetCampaign(ctx, p.CampaignID)
	if err != nil {
		return nil, err
	}
	if !ChecklistWellFormed(cmp.Requirements, checklist) {
		return nil, apperrors.NewPreconditionFailed("checklist does not match campaign requirements")
	}
	if unmet := UnmetRequirements(cmp.Requirements, checklist); len(unmet) > 0 {
		return nil, apperrors.NewUnmetRequirements(unmet)
	}

	now := models.Now()
	expected := p.Version
	p.Phase = models.PhaseValidation
	p.PostURL = postURL
	p.RequirementChecklist = checklist
	p.DeliveredAt = &now
	p.UpdatedAt = now

	if err := uc.repo.UpdateParticipation(ctx, p, expected); err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, constants.SubjectParticipationDelivered, p)
	return p, nil
}

// ApproveValidation records the advertiser's rating and moves the
// participation to PAYMENT.
func (uc *participationUC) ApproveValidation(ctx context.Context, campaignID, influencerID uuid.UUID, rating int, checklist map[string]bool) (*models.Participation, error) {
	p, err := uc.repo.GetParticipation(ctx, campaignID, influencerID)
	if err != nil {
		return nil, err
	}
	if p.Phase != models.PhaseValidation {
		return nil, apperrors.NewInvalidStateTransition("approveValidation", string(p.Phase))
	}
	if rating < 1 || rating > 5 {
		return nil, apperrors.NewPreconditionFailed("rating must be between 1 and 5")
	}

	cmp, err := uc.repo.GetCampaign(ctx, p.CampaignID)
	if err != nil {
		return nil, err
	}
	if unmet := UnmetRequirements(cmp.Requirements, checklist); len(unmet) > 0 {
		return nil, apperrors.NewUnmetRequirements(unmet)
	}

	now := models.Now()
	expected := p.Version
	p.Phase = models.PhasePayment
	p.Rating = &rating
	p.ApprovedAt = &now
	p.UpdatedAt = now

	if err := uc.repo.UpdateParticipation(ctx, p, expected); err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, constants.SubjectParticipationApproved, p)
	return p, nil
}

// RejectValidation records advertiser feedback. With revise the checklist is
// reset and the participation returns to PRODUCTION; otherwise it moves to
// the terminal REJECTED_CONTENT phase with the checklist preserved for audit.
// The post URL is retained in both cases.
func (uc *participationUC) RejectValidation(ctx context.Context, campaignID, influencerID uuid.UUID, feedback string, revise bool) (*models.Participation, error) {
	p, err := uc.repo.GetParticipation(ctx, campaignID, influencerID)
	if err != nil {
		return nil, err
	}
	if p.Phase != models.PhaseValidation {
		return nil, apperrors.NewInvalidStateTransition("rejectValidation", string(p.Phase))
	}
	if feedback == "" {
		return nil, apperrors.NewPreconditionFailed("feedback is required when rejecting content")
	}

	expected := p.Version
	p.Feedback = feedback
	p.UpdatedAt = models.Now()

	subject := constants.SubjectParticipationRejected
	if revise {
		cmp, err := uc.repo.GetCampaign(ctx, p.CampaignID)
		if err != nil {
			return nil, err
		}
		p.ResetChecklist(cmp.Requirements)
		p.Phase = models.PhaseProduction
		subject = constants.SubjectParticipationRevision
	} else {
		p.Phase = models.PhaseRejectedContent
	}

	if err := uc.repo.UpdateParticipation(ctx, p, expected); err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, subject, p)
	return p, nil
}

// ProcessPayment settles the campaign budget against the given method and,
// on provider success, completes the participation. On provider failure the
// phase stays PAYMENT so the caller can retry with the same or another
// method.
func (uc *participationUC) ProcessPayment(ctx context.Context, campaignID, influencerID, methodID uuid.UUID) (*models.Participation, error) {
	p, err := uc.repo.GetParticipation(ctx, campaignID, influencerID)
	if err != nil {
		return nil, err
	}
	if p.Phase != models.PhasePayment {
		return nil, apperrors.NewInvalidStateTransition("processPayment", string(p.Phase))
	}

	cmp, err := uc.repo.GetCampaign(ctx, p.CampaignID)
	if err != nil {
		return nil, err
	}

	record, err := uc.settlement.ProcessCampaignPayment(ctx, p.ID, methodID, cmp.Budget)
	if err != nil {
		return nil, err
	}

	now := models.Now()
	expected := p.Version
	p.Phase = models.PhaseCompleted
	p.PaymentRecordID = &record.ID
	p.PaymentProcessedAt = &now
	p.UpdatedAt = now

	if err := uc.repo.UpdateParticipation(ctx, p, expected); err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, constants.SubjectParticipationCompleted, p)
	return p, nil
}

// GetParticipation returns one participation
func (uc *participationUC) GetParticipation(ctx context.Context, campaignID, influencerID uuid.UUID) (*models.Participation, error) {
	return uc.repo.GetParticipation(ctx, campaignID, influencerID)
}

// ListParticipations returns every participation of a campaign. Pure read
// path: collaborator failures degrade to an empty list.
func (uc *participationUC) ListParticipations(ctx context.Context, campaignID uuid.UUID) ([]*models.Participation, error) {
	participations, err := uc.repo.ListParticipations(ctx, campaignID)
	if err != nil {
		logger.Warn("Failed to list participations, returning empty list",
			logger.ErrorField(err),
			logger.String("campaign_id", campaignID.String()),
		)
		return []*models.Participation{}, nil
	}
	return participations, nil
}

// ProjectSteps derives the UI-facing step list for a participation
func (uc *participationUC) ProjectSteps(ctx context.Context, campaignID, influencerID uuid.UUID) (*models.StepProjection, error) {
	cmp, err := uc.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	p, err := uc.repo.GetParticipation(ctx, campaignID, influencerID)
	if err != nil {
		return nil, err
	}
	return ProjectSteps(cmp, p), nil
}

func (uc *participationUC) publishEvent(ctx context.Context, subject string, p *models.Participation) {
	event := &models.ParticipationEvent{
		ParticipationID: p.ID,
		CampaignID:      p.CampaignID,
		InfluencerID:    p.InfluencerID,
		Phase:           p.Phase,
		Timestamp:       models.Now(),
	}

	if err := uc.gw.PublishParticipationEvent(ctx, subject, event); err != nil {
		logger.Warn("Failed to publish participation event",
			logger.ErrorField(err),
			logger.String("subject", subject),
			logger.String("participation_id", p.ID.String()),
		)
	}
}
