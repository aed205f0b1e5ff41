package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	natspkg "github.com/vitrine-app/vitrine/internal/pkg/nats"
	"github.com/vitrine-app/vitrine/internal/pkg/models"
	"github.com/vitrine-app/vitrine/services/campaign"
)

// CampaignGW implements campaign.CampaignGW over NATS
type CampaignGW struct {
	natsClient *natspkg.Client
}

// NewCampaignGW creates a new campaign gateway
func NewCampaignGW(natsClient *natspkg.Client) campaign.CampaignGW {
	return &CampaignGW{natsClient: natsClient}
}

// PublishParticipationEvent publishes a lifecycle event to the given subject
func (g *CampaignGW) PublishParticipationEvent(ctx context.Context, subject string, event *models.ParticipationEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal participation event: %w", err)
	}

	if err := g.natsClient.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish participation event: %w", err)
	}

	return nil
}
