package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/vitrine-app/vitrine/internal/pkg/models"
	"github.com/vitrine-app/vitrine/services/campaign"
)

// CampaignRepo implements campaign.CampaignRepo backed by PostgreSQL
type CampaignRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewCampaignRepo creates a new campaign repository
func NewCampaignRepo(cfg *models.Config, db *sqlx.DB) campaign.CampaignRepo {
	return &CampaignRepo{
		cfg: cfg,
		db:  db,
	}
}
