package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vitrine-app/vitrine/internal/pkg/apperrors"
	"github.com/vitrine-app/vitrine/internal/pkg/models"
)

// GetRecordByParticipation retrieves the settlement record of a participation
func (r *PaymentRepo) GetRecordByParticipation(ctx context.Context, participationID uuid.UUID) (*models.PaymentRecord, error) {
	query := `
		SELECT id, participation_id, amount, method_id, status, release_date,
			failure_reason, created_at, updated_at
		FROM payment_records
		WHERE participation_id = $1
	`

	var record models.PaymentRecord
	if err := r.db.GetContext(ctx, &record, query, participationID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("payment record for participation %s: %w", participationID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get payment record: %w", err)
	}

	return &record, nil
}

// CreateRecord inserts a new settlement record
func (r *PaymentRepo) CreateRecord(ctx context.Context, record *models.PaymentRecord) error {
	query := `
		INSERT INTO payment_records (id, participation_id, amount, method_id,
			status, release_date, failure_reason, created_at, updated_at
		) VALUES (:id, :participation_id, :amount, :method_id,
			:status, :release_date, :failure_reason, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, record); err != nil {
		return fmt.Errorf("failed to insert payment record: %w", err)
	}

	return nil
}

// UpdateRecord persists the record's current settlement state
func (r *PaymentRepo) UpdateRecord(ctx context.Context, record *models.PaymentRecord) error {
	query := `
		UPDATE payment_records SET
			amount = :amount,
			method_id = :method_id,
			status = :status,
			release_date = :release_date,
			failure_reason = :failure_reason,
			updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, record)
	if err != nil {
		return fmt.Errorf("failed to update payment record: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("payment record %s: %w", record.ID, apperrors.ErrNotFound)
	}

	return nil
}
