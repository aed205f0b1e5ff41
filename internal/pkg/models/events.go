package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ParticipationEvent is published on every successful lifecycle transition
type ParticipationEvent struct {
	ParticipationID uuid.UUID          `json:"participation_id"`
	CampaignID      uuid.UUID          `json:"campaign_id"`
	InfluencerID    uuid.UUID          `json:"influencer_id"`
	Phase           ParticipationPhase `json:"phase"`
	Timestamp       time.Time          `json:"timestamp"`
}

// PaymentEvent is published when a settlement attempt finishes
type PaymentEvent struct {
	PaymentRecordID uuid.UUID       `json:"payment_record_id"`
	ParticipationID uuid.UUID       `json:"participation_id"`
	Amount          decimal.Decimal `json:"amount"`
	Status          PaymentStatus   `json:"status"`
	Timestamp       time.Time       `json:"timestamp"`
}
