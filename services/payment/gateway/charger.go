package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/vitrine-app/vitrine/internal/pkg/models"
	"github.com/vitrine-app/vitrine/services/payment"
)

// ChargerGW implements payment.ChargerGW against the card-charging provider's
// HTTP API
type ChargerGW struct {
	cfg    *models.Config
	client *http.Client
}

// NewChargerGW creates a new charging provider gateway
func NewChargerGW(cfg *models.Config) payment.ChargerGW {
	return &ChargerGW{
		cfg: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.Charger.Timeout) * time.Second,
		},
	}
}

// Charge requests the provider to charge the given method
func (g *ChargerGW) Charge(ctx context.Context, req *models.ChargeRequest) (*models.ChargeResponse, error) {
	return g.post(ctx, "/v1/charges", req)
}

// Refund requests the provider to refund a previous charge
func (g *ChargerGW) Refund(ctx context.Context, providerRef, reason string) (*models.ChargeResponse, error) {
	body := map[string]string{
		"reference_id": providerRef,
		"reason":       reason,
	}
	return g.post(ctx, "/v1/refunds", body)
}

func (g *ChargerGW) post(ctx context.Context, path string, body interface{}) (*models.ChargeResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal charger request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.cfg.Charger.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build charger request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.cfg.Charger.APIKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("charger request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("charger returned status %d", resp.StatusCode)
	}

	var chargeResp models.ChargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&chargeResp); err != nil {
		return nil, fmt.Errorf("failed to decode charger response: %w", err)
	}

	return &chargeResp, nil
}
