package payment

import (
	"context"

	"github.com/vitrine-app/vitrine/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/vitrine-app/vitrine/services/payment ChargerGW,PaymentGW

// ChargerGW is the boundary to the external card-charging provider.
// Charges are idempotent on ChargeRequest.ReferenceID (the settlement
// record ID): the provider deduplicates repeated charges carrying the same
// reference, so re-sending after a crash or a lost response cannot capture
// the card twice.
type ChargerGW interface {
	Charge(ctx context.Context, req *models.ChargeRequest) (*models.ChargeResponse, error)
	Refund(ctx context.Context, providerRef, reason string) (*models.ChargeResponse, error)
}

// PaymentGW publishes settlement events for downstream consumers
type PaymentGW interface {
	PublishPaymentEvent(ctx context.Context, subject string, event *models.PaymentEvent) error
}
