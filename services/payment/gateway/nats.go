package gateway

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vitrine-app/vitrine/internal/pkg/models"
	natspkg "github.com/vitrine-app/vitrine/internal/pkg/nats"
	"github.com/vitrine-app/vitrine/services/payment"
)

// PaymentGW implements payment.PaymentGW over NATS
type PaymentGW struct {
	natsClient *natspkg.Client
}

// NewPaymentGW creates a new payment gateway
func NewPaymentGW(natsClient *natspkg.Client) payment.PaymentGW {
	return &PaymentGW{natsClient: natsClient}
}

// PublishPaymentEvent publishes a settlement event to the given subject
func (g *PaymentGW) PublishPaymentEvent(ctx context.Context, subject string, event *models.PaymentEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal payment event: %w", err)
	}

	if err := g.natsClient.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish payment event: %w", err)
	}

	return nil
}
