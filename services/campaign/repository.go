package campaign

import (
	"context"

	"github.com/google/uuid"
	"github.com/vitrine-app/vitrine/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/vitrine-app/vitrine/services/campaign CampaignRepo

// CampaignRepo persists campaigns and their participations. UpdateParticipation
// compares expectedVersion against the stored row and returns
// apperrors.ErrConcurrentUpdate when another caller already advanced the
// participation.
type CampaignRepo interface {
	GetCampaign(ctx context.Context, id uuid.UUID) (*models.Campaign, error)
	CreateCampaign(ctx context.Context, campaign *models.Campaign) error

	GetParticipation(ctx context.Context, campaignID, influencerID uuid.UUID) (*models.Participation, error)
	ListParticipations(ctx context.Context, campaignID uuid.UUID) ([]*models.Participation, error)
	CreateParticipation(ctx context.Context, participation *models.Participation) error
	// UpdateParticipation persists the participation only when the stored
	// version still equals expectedVersion, bumping it by one.
	UpdateParticipation(ctx context.Context, participation *models.Participation, expectedVersion int) error
}
