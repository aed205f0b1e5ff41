package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vitrine-app/vitrine/internal/pkg/apperrors"
	"github.com/vitrine-app/vitrine/internal/pkg/models"
)

func parseAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}

// participationRow mirrors the participations table; the checklist is stored
// as JSONB so its key set always travels with the row
type participationRow struct {
	ID                 uuid.UUID      `db:"id"`
	CampaignID         uuid.UUID      `db:"campaign_id"`
	InfluencerID       uuid.UUID      `db:"influencer_id"`
	Phase              string         `db:"phase"`
	Checklist          []byte         `db:"requirement_checklist"`
	PostURL            sql.NullString `db:"post_url"`
	Rating             sql.NullInt32  `db:"rating"`
	Feedback           sql.NullString `db:"feedback"`
	PaymentRecordID    uuid.NullUUID  `db:"payment_record_id"`
	AcceptedAt         sql.NullTime   `db:"accepted_at"`
	DeliveredAt        sql.NullTime   `db:"delivered_at"`
	ApprovedAt         sql.NullTime   `db:"approved_at"`
	PaymentProcessedAt sql.NullTime   `db:"payment_processed_at"`
	Version            int            `db:"version"`
	CreatedAt          sql.NullTime   `db:"created_at"`
	UpdatedAt          sql.NullTime   `db:"updated_at"`
}

const participationColumns = `
	id, campaign_id, influencer_id, phase, requirement_checklist, post_url,
	rating, feedback, payment_record_id, accepted_at, delivered_at, approved_at,
	payment_processed_at, version, created_at, updated_at
`

// GetParticipation retrieves one influencer's participation in a campaign
func (r *CampaignRepo) GetParticipation(ctx context.Context, campaignID, influencerID uuid.UUID) (*models.Participation, error) {
	query := `
		SELECT ` + participationColumns + `
		FROM participations
		WHERE campaign_id = $1 AND influencer_id = $2
	`

	var row participationRow
	if err := r.db.GetContext(ctx, &row, query, campaignID, influencerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("participation of influencer %s in campaign %s: %w",
				influencerID, campaignID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get participation: %w", err)
	}

	return rowToParticipation(&row)
}

// ListParticipations returns every participation of a campaign
func (r *CampaignRepo) ListParticipations(ctx context.Context, campaignID uuid.UUID) ([]*models.Participation, error) {
	query := `
		SELECT ` + participationColumns + `
		FROM participations
		WHERE campaign_id = $1
		ORDER BY created_at
	`

	var rows []participationRow
	if err := r.db.SelectContext(ctx, &rows, query, campaignID); err != nil {
		return nil, fmt.Errorf("failed to list participations: %w", err)
	}

	participations := make([]*models.Participation, 0, len(rows))
	for i := range rows {
		p, err := rowToParticipation(&rows[i])
		if err != nil {
			return nil, err
		}
		participations = append(participations, p)
	}

	return participations, nil
}

// CreateParticipation inserts a new participation in PROPOSAL phase
func (r *CampaignRepo) CreateParticipation(ctx context.Context, p *models.Participation) error {
	checklist, err := json.Marshal(p.RequirementChecklist)
	if err != nil {
		return fmt.Errorf("failed to marshal checklist: %w", err)
	}

	query := `
		INSERT INTO participations (id, campaign_id, influencer_id, phase,
			requirement_checklist, version, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = r.db.ExecContext(ctx, query,
		p.ID,
		p.CampaignID,
		p.InfluencerID,
		p.Phase,
		checklist,
		p.Version,
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert participation: %w", err)
	}

	return nil
}

// UpdateParticipation persists a transition, guarded by the version the
// caller read. Zero rows updated means another caller advanced the
// participation first.
func (r *CampaignRepo) UpdateParticipation(ctx context.Context, p *models.Participation, expectedVersion int) error {
	checklist, err := json.Marshal(p.RequirementChecklist)
	if err != nil {
		return fmt.Errorf("failed to marshal checklist: %w", err)
	}

	query := `
		UPDATE participations
		SET phase = $1,
			requirement_checklist = $2,
			post_url = $3,
			rating = $4,
			feedback = $5,
			payment_record_id = $6,
			accepted_at = $7,
			delivered_at = $8,
			approved_at = $9,
			payment_processed_at = $10,
			version = version + 1,
			updated_at = $11
		WHERE id = $12 AND version = $13
	`
	result, err := r.db.ExecContext(ctx, query,
		p.Phase,
		checklist,
		nullString(p.PostURL),
		nullInt(p.Rating),
		nullString(p.Feedback),
		nullUUID(p.PaymentRecordID),
		nullTimePtr(p.AcceptedAt),
		nullTimePtr(p.DeliveredAt),
		nullTimePtr(p.ApprovedAt),
		nullTimePtr(p.PaymentProcessedAt),
		p.UpdatedAt,
		p.ID,
		expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update participation: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrConcurrentUpdate
	}

	p.Version = expectedVersion + 1
	return nil
}

func rowToParticipation(row *participationRow) (*models.Participation, error) {
	var checklist map[string]bool
	if len(row.Checklist) > 0 {
		if err := json.Unmarshal(row.Checklist, &checklist); err != nil {
			return nil, fmt.Errorf("failed to unmarshal checklist: %w", err)
		}
	}

	p := &models.Participation{
		ID:                   row.ID,
		CampaignID:           row.CampaignID,
		InfluencerID:         row.InfluencerID,
		Phase:                models.ParticipationPhase(row.Phase),
		RequirementChecklist: checklist,
		Version:              row.Version,
	}
	if row.PostURL.Valid {
		p.PostURL = row.PostURL.String
	}
	if row.Rating.Valid {
		rating := int(row.Rating.Int32)
		p.Rating = &rating
	}
	if row.Feedback.Valid {
		p.Feedback = row.Feedback.String
	}
	if row.PaymentRecordID.Valid {
		id := row.PaymentRecordID.UUID
		p.PaymentRecordID = &id
	}
	if row.AcceptedAt.Valid {
		t := row.AcceptedAt.Time
		p.AcceptedAt = &t
	}
	if row.DeliveredAt.Valid {
		t := row.DeliveredAt.Time
		p.DeliveredAt = &t
	}
	if row.ApprovedAt.Valid {
		t := row.ApprovedAt.Time
		p.ApprovedAt = &t
	}
	if row.PaymentProcessedAt.Valid {
		t := row.PaymentProcessedAt.Time
		p.PaymentProcessedAt = &t
	}
	if row.CreatedAt.Valid {
		p.CreatedAt = row.CreatedAt.Time
	}
	if row.UpdatedAt.Valid {
		p.UpdatedAt = row.UpdatedAt.Time
	}

	return p, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(v *int) sql.NullInt32 {
	if v == nil {
		return sql.NullInt32{}
	}
	return sql.NullInt32{Int32: int32(*v), Valid: true}
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

func nullTimePtr(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
