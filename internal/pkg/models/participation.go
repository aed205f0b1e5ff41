package models

import (
	"time"

	"github.com/google/uuid"
)

// ParticipationPhase represents the current stage of one influencer's
// participation in a campaign lifecycle
type ParticipationPhase string

const (
	PhaseProposal         ParticipationPhase = "PROPOSAL"
	PhaseProduction       ParticipationPhase = "PRODUCTION"
	PhaseDelivery         ParticipationPhase = "DELIVERY"
	PhaseValidation       ParticipationPhase = "VALIDATION"
	PhasePayment          ParticipationPhase = "PAYMENT"
	PhaseCompleted        ParticipationPhase = "COMPLETED"
	PhaseRejectedProposal ParticipationPhase = "REJECTED_PROPOSAL"
	PhaseRejectedContent  ParticipationPhase = "REJECTED_CONTENT"
)

// Terminal reports whether the phase is a final state
func (p ParticipationPhase) Terminal() bool {
	switch p {
	case PhaseCompleted, PhaseRejectedProposal, PhaseRejectedContent:
		return true
	}
	return false
}

// Participation is the lifecycle relationship between one influencer and one
// campaign. The checklist key set always equals the campaign's requirement set.
// Version is bumped on every transition; repositories compare it on update so
// concurrent callers cannot both apply a transition from the same phase.
type Participation struct {
	ID           uuid.UUID          `json:"id" db:"id"`
	CampaignID   uuid.UUID          `json:"campaign_id" db:"campaign_id"`
	InfluencerID uuid.UUID          `json:"influencer_id" db:"influencer_id"`
	Phase        ParticipationPhase `json:"phase" db:"phase"`

	RequirementChecklist map[string]bool `json:"requirement_checklist"`

	PostURL         string     `json:"post_url,omitempty" db:"post_url"`
	Rating          *int       `json:"rating,omitempty" db:"rating"`
	Feedback        string     `json:"feedback,omitempty" db:"feedback"`
	PaymentRecordID *uuid.UUID `json:"payment_record_id,omitempty" db:"payment_record_id"`

	AcceptedAt         *time.Time `json:"accepted_at,omitempty" db:"accepted_at"`
	DeliveredAt        *time.Time `json:"delivered_at,omitempty" db:"delivered_at"`
	ApprovedAt         *time.Time `json:"approved_at,omitempty" db:"approved_at"`
	PaymentProcessedAt *time.Time `json:"payment_processed_at,omitempty" db:"payment_processed_at"`

	Version   int       `json:"version" db:"version"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// NewParticipation creates a participation in PROPOSAL phase with an
// all-false checklist keyed by the campaign's requirements.
func NewParticipation(campaign *Campaign, influencerID uuid.UUID) *Participation {
	checklist := make(map[string]bool, len(campaign.Requirements))
	for _, req := range campaign.Requirements {
		checklist[req] = false
	}
	now := Now()
	return &Participation{
		ID:                   uuid.New(),
		CampaignID:           campaign.ID,
		InfluencerID:         influencerID,
		Phase:                PhaseProposal,
		RequirementChecklist: checklist,
		Version:              1,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
}

// ResetChecklist sets every checklist entry back to false, keeping the key
// set aligned with the campaign requirements. Used when a revision is
// requested after validation.
func (p *Participation) ResetChecklist(requirements []string) {
	checklist := make(map[string]bool, len(requirements))
	for _, req := range requirements {
		checklist[req] = false
	}
	p.RequirementChecklist = checklist
}
