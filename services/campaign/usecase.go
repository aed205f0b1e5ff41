package campaign

import (
	"context"

	"github.com/google/uuid"
	"github.com/vitrine-app/vitrine/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/vitrine-app/vitrine/services/campaign ParticipationUC

// ParticipationUC drives one influencer's lifecycle within a campaign.
// Every transition is atomic: it either fully applies or fails leaving the
// participation unchanged.
type ParticipationUC interface {
	// InviteInfluencer creates the participation when an influencer is
	// matched to a campaign, starting in PROPOSAL phase
	InviteInfluencer(ctx context.Context, campaignID, influencerID uuid.UUID) (*models.Participation, error)

	// lifecycle transitions
	AcceptProposal(ctx context.Context, campaignID, influencerID uuid.UUID, termsAccepted bool) (*models.Participation, error)
	RejectProposal(ctx context.Context, campaignID, influencerID uuid.UUID) (*models.Participation, error)
	CompleteProduction(ctx context.Context, campaignID, influencerID uuid.UUID) (*models.Participation, error)
	SubmitDelivery(ctx context.Context, campaignID, influencerID uuid.UUID, postURL string, checklist map[string]bool) (*models.Participation, error)
	ApproveValidation(ctx context.Context, campaignID, influencerID uuid.UUID, rating int, checklist map[string]bool) (*models.Participation, error)
	RejectValidation(ctx context.Context, campaignID, influencerID uuid.UUID, feedback string, revise bool) (*models.Participation, error)
	ProcessPayment(ctx context.Context, campaignID, influencerID, methodID uuid.UUID) (*models.Participation, error)

	// read paths
	GetParticipation(ctx context.Context, campaignID, influencerID uuid.UUID) (*models.Participation, error)
	ListParticipations(ctx context.Context, campaignID uuid.UUID) ([]*models.Participation, error)
	ProjectSteps(ctx context.Context, campaignID, influencerID uuid.UUID) (*models.StepProjection, error)
}
