package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod represents a stored card belonging to a user. For a given
// owner at most one method is default, and exactly one whenever the owner has
// any methods at all.
type PaymentMethod struct {
	ID         uuid.UUID `json:"id" db:"id"`
	OwnerID    uuid.UUID `json:"owner_id" db:"owner_id"`
	Brand      string    `json:"brand" db:"brand"`
	Last4      string    `json:"last4" db:"last4"`
	ExpMonth   int       `json:"exp_month" db:"exp_month"`
	ExpYear    int       `json:"exp_year" db:"exp_year"`
	HolderName string    `json:"holder_name" db:"holder_name"`
	IsDefault  bool      `json:"is_default" db:"is_default"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// AddPaymentMethodRequest carries card data for registering a new method.
// The CVC is validated and discarded, never stored.
type AddPaymentMethodRequest struct {
	CardNumber string `json:"card_number"`
	Brand      string `json:"brand"`
	ExpMonth   int    `json:"exp_month"`
	ExpYear    int    `json:"exp_year"`
	CVC        string `json:"cvc"`
	HolderName string `json:"holder_name"`
}

// PaymentStatus is the settlement state of a payment record
type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

// PaymentRecord tracks the settlement of one participation. There is one
// active record per participation; retries reuse it rather than creating a
// second charge.
type PaymentRecord struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	ParticipationID uuid.UUID       `json:"participation_id" db:"participation_id"`
	Amount          decimal.Decimal `json:"amount" db:"amount"`
	MethodID        uuid.UUID       `json:"method_id" db:"method_id"`
	Status          PaymentStatus   `json:"status" db:"status"`
	ReleaseDate     *time.Time      `json:"release_date,omitempty" db:"release_date"`
	FailureReason   string          `json:"failure_reason,omitempty" db:"failure_reason"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`
}

// MarkCompleted transitions the record to completed and stamps the release date
func (r *PaymentRecord) MarkCompleted() {
	now := Now()
	r.Status = PaymentStatusCompleted
	r.ReleaseDate = &now
	r.FailureReason = ""
	r.UpdatedAt = now
}

// MarkFailed transitions the record to failed keeping the provider reason
func (r *PaymentRecord) MarkFailed(reason string) {
	r.Status = PaymentStatusFailed
	r.FailureReason = reason
	r.UpdatedAt = Now()
}

// ChargeRequest is the payload sent to the card-charging provider
type ChargeRequest struct {
	ReferenceID string          `json:"reference_id"`
	MethodID    uuid.UUID       `json:"method_id"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Description string          `json:"description,omitempty"`
}

// ChargeResponse is the provider's answer to a charge, release or refund
type ChargeResponse struct {
	ProviderRef string `json:"provider_ref"`
	Approved    bool   `json:"approved"`
	Reason      string `json:"reason,omitempty"`
}
