package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vitrine-app/vitrine/internal/pkg/apperrors"
	"github.com/vitrine-app/vitrine/internal/pkg/models"
)

// campaignRow mirrors the campaigns table; requirements are stored as JSONB
type campaignRow struct {
	ID           uuid.UUID    `db:"id"`
	AdvertiserID uuid.UUID    `db:"advertiser_id"`
	Title        string       `db:"title"`
	BrandName    string       `db:"brand_name"`
	BrandLogoURL string       `db:"brand_logo_url"`
	Description  string       `db:"description"`
	Budget       string       `db:"budget"`
	Deadline     sql.NullTime `db:"deadline"`
	Requirements []byte       `db:"requirements"`
	Platform     string       `db:"platform"`
	ContentType  string       `db:"content_type"`
	CreatedAt    sql.NullTime `db:"created_at"`
	UpdatedAt    sql.NullTime `db:"updated_at"`
}

// GetCampaign retrieves a campaign by ID
func (r *CampaignRepo) GetCampaign(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	query := `
		SELECT id, advertiser_id, title, brand_name, brand_logo_url, description,
			budget, deadline, requirements, platform, content_type, created_at, updated_at
		FROM campaigns
		WHERE id = $1
	`

	var row campaignRow
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("campaign %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	return rowToCampaign(&row)
}

// CreateCampaign inserts a new campaign
func (r *CampaignRepo) CreateCampaign(ctx context.Context, cmp *models.Campaign) error {
	if cmp.ID == uuid.Nil {
		cmp.ID = uuid.New()
	}
	now := models.Now()
	cmp.CreatedAt = now
	cmp.UpdatedAt = now

	requirements, err := json.Marshal(cmp.Requirements)
	if err != nil {
		return fmt.Errorf("failed to marshal requirements: %w", err)
	}

	query := `
		INSERT INTO campaigns (id, advertiser_id, title, brand_name, brand_logo_url,
			description, budget, deadline, requirements, platform, content_type,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err = r.db.ExecContext(ctx, query,
		cmp.ID,
		cmp.AdvertiserID,
		cmp.Title,
		cmp.Brand.Name,
		cmp.Brand.LogoURL,
		cmp.Description,
		cmp.Budget.String(),
		cmp.Deadline,
		requirements,
		cmp.Platform,
		cmp.ContentType,
		cmp.CreatedAt,
		cmp.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert campaign: %w", err)
	}

	return nil
}

func rowToCampaign(row *campaignRow) (*models.Campaign, error) {
	budget, err := parseAmount(row.Budget)
	if err != nil {
		return nil, fmt.Errorf("failed to parse campaign budget: %w", err)
	}

	var requirements []string
	if len(row.Requirements) > 0 {
		if err := json.Unmarshal(row.Requirements, &requirements); err != nil {
			return nil, fmt.Errorf("failed to unmarshal requirements: %w", err)
		}
	}

	cmp := &models.Campaign{
		ID:           row.ID,
		AdvertiserID: row.AdvertiserID,
		Title:        row.Title,
		Brand:        models.Brand{Name: row.BrandName, LogoURL: row.BrandLogoURL},
		Description:  row.Description,
		Budget:       budget,
		Requirements: requirements,
		Platform:     models.Platform(row.Platform),
		ContentType:  row.ContentType,
	}
	if row.Deadline.Valid {
		cmp.Deadline = row.Deadline.Time
	}
	if row.CreatedAt.Valid {
		cmp.CreatedAt = row.CreatedAt.Time
	}
	if row.UpdatedAt.Valid {
		cmp.UpdatedAt = row.UpdatedAt.Time
	}

	return cmp, nil
}
