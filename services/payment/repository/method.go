package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/vitrine-app/vitrine/internal/pkg/apperrors"
	"github.com/vitrine-app/vitrine/internal/pkg/models"
)

// lockOwnerMethods takes a transaction-scoped advisory lock on the owner.
// Registry writes decide the default flag from what they read inside the
// transaction; under READ COMMITTED two concurrent writers would otherwise
// each act on a snapshot that misses the other's insert or flip and leave
// the owner with two defaults.
func lockOwnerMethods(ctx context.Context, tx *sqlx.Tx, ownerID uuid.UUID) error {
	if _, err := tx.ExecContext(ctx,
		`SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`, ownerID); err != nil {
		return fmt.Errorf("failed to lock payment methods of owner %s: %w", ownerID, err)
	}
	return nil
}

// ListMethods returns the owner's stored payment methods, default first
func (r *PaymentRepo) ListMethods(ctx context.Context, ownerID uuid.UUID) ([]*models.PaymentMethod, error) {
	query := `
		SELECT id, owner_id, brand, last4, exp_month, exp_year, holder_name,
			is_default, created_at, updated_at
		FROM payment_methods
		WHERE owner_id = $1
		ORDER BY is_default DESC, created_at
	`

	var methods []*models.PaymentMethod
	if err := r.db.SelectContext(ctx, &methods, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list payment methods: %w", err)
	}

	return methods, nil
}

// GetMethod retrieves a payment method by ID
func (r *PaymentRepo) GetMethod(ctx context.Context, methodID uuid.UUID) (*models.PaymentMethod, error) {
	query := `
		SELECT id, owner_id, brand, last4, exp_month, exp_year, holder_name,
			is_default, created_at, updated_at
		FROM payment_methods
		WHERE id = $1
	`

	var method models.PaymentMethod
	if err := r.db.GetContext(ctx, &method, query, methodID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("payment method %s: %w", methodID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get payment method: %w", err)
	}

	return &method, nil
}

// CreateMethod inserts the method inside a transaction, marking it default
// when it is the owner's first.
func (r *PaymentRepo) CreateMethod(ctx context.Context, method *models.PaymentMethod) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := lockOwnerMethods(ctx, tx, method.OwnerID); err != nil {
		return err
	}

	var count int
	if err := tx.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM payment_methods WHERE owner_id = $1`, method.OwnerID); err != nil {
		return fmt.Errorf("failed to count payment methods: %w", err)
	}
	method.IsDefault = count == 0

	query := `
		INSERT INTO payment_methods (id, owner_id, brand, last4, exp_month,
			exp_year, holder_name, is_default, created_at, updated_at
		) VALUES (:id, :owner_id, :brand, :last4, :exp_month,
			:exp_year, :holder_name, :is_default, :created_at, :updated_at)
	`
	if _, err := tx.NamedExecContext(ctx, query, method); err != nil {
		return fmt.Errorf("failed to insert payment method: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// SetDefaultMethod clears the previous default and sets the new one in a
// single transaction, so no reader observes zero or two defaults.
func (r *PaymentRepo) SetDefaultMethod(ctx context.Context, ownerID, methodID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := lockOwnerMethods(ctx, tx, ownerID); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE payment_methods SET is_default = TRUE, updated_at = $1 WHERE id = $2 AND owner_id = $3`,
		models.Now(), methodID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to set default payment method: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("payment method %s: %w", methodID, apperrors.ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE payment_methods SET is_default = FALSE, updated_at = $1 WHERE owner_id = $2 AND id <> $3 AND is_default`,
		models.Now(), ownerID, methodID); err != nil {
		return fmt.Errorf("failed to clear previous default: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// RemoveMethod deletes the method. Removing the default while other methods
// remain fails so an owner with methods always keeps exactly one default.
func (r *PaymentRepo) RemoveMethod(ctx context.Context, ownerID, methodID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := lockOwnerMethods(ctx, tx, ownerID); err != nil {
		return err
	}

	var method models.PaymentMethod
	if err := tx.GetContext(ctx, &method,
		`SELECT id, owner_id, is_default FROM payment_methods WHERE id = $1 AND owner_id = $2 FOR UPDATE`,
		methodID, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("payment method %s: %w", methodID, apperrors.ErrNotFound)
		}
		return fmt.Errorf("failed to get payment method: %w", err)
	}

	if method.IsDefault {
		var others int
		if err := tx.GetContext(ctx, &others,
			`SELECT COUNT(*) FROM payment_methods WHERE owner_id = $1 AND id <> $2`,
			ownerID, methodID); err != nil {
			return fmt.Errorf("failed to count payment methods: %w", err)
		}
		if others > 0 {
			return apperrors.ErrConflictingDefaultPaymentMethod
		}
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM payment_methods WHERE id = $1 AND owner_id = $2`, methodID, ownerID); err != nil {
		return fmt.Errorf("failed to delete payment method: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
