package campaign

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vitrine-app/vitrine/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/vitrine-app/vitrine/services/campaign CampaignGW,SettlementGW

// CampaignGW publishes participation lifecycle events for downstream
// consumers. Publish failures never roll back a transition; events are a
// read-side concern.
type CampaignGW interface {
	PublishParticipationEvent(ctx context.Context, subject string, event *models.ParticipationEvent) error
}

// SettlementGW is the boundary to the payment settlement process. The state
// machine only learns success or failure; record bookkeeping stays on the
// payment side.
type SettlementGW interface {
	ProcessCampaignPayment(ctx context.Context, participationID, methodID uuid.UUID, amount decimal.Decimal) (*models.PaymentRecord, error)
}
