package payment

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vitrine-app/vitrine/internal/pkg/models"
)

// PaymentUC owns stored payment methods and the settlement of campaign
// payments. ProcessCampaignPayment also satisfies the campaign service's
// settlement boundary.
type PaymentUC interface {
	// payment method registry
	ListMethods(ctx context.Context, ownerID uuid.UUID) ([]*models.PaymentMethod, error)
	AddMethod(ctx context.Context, ownerID uuid.UUID, req *models.AddPaymentMethodRequest) (*models.PaymentMethod, error)
	SetDefaultMethod(ctx context.Context, ownerID, methodID uuid.UUID) error
	RemoveMethod(ctx context.Context, ownerID, methodID uuid.UUID) error

	// settlement
	ProcessCampaignPayment(ctx context.Context, participationID, methodID uuid.UUID, amount decimal.Decimal) (*models.PaymentRecord, error)
	ReleaseCampaignPayment(ctx context.Context, participationID uuid.UUID) (*models.PaymentRecord, error)
	RefundCampaignPayment(ctx context.Context, participationID uuid.UUID, reason string) (*models.PaymentRecord, error)
	GetPaymentRecord(ctx context.Context, participationID uuid.UUID) (*models.PaymentRecord, error)
}
