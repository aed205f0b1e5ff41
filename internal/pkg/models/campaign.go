package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Platform identifies the social network a campaign targets
type Platform string

const (
	PlatformInstagram Platform = "instagram"
	PlatformYouTube   Platform = "youtube"
	PlatformTikTok    Platform = "tiktok"
)

// CampaignStatus is derived from the phases of a campaign's participations.
// It is never stored; Participation phase is the source of truth.
type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusCompleted CampaignStatus = "completed"
)

// Brand holds the advertiser-facing identity shown on a campaign
type Brand struct {
	Name    string `json:"name" db:"brand_name"`
	LogoURL string `json:"logo_url,omitempty" db:"brand_logo_url"`
}

// Campaign represents a sponsored-content campaign created by an advertiser.
// Requirements is the ordered set of content requirements every participation
// checklist is keyed by.
type Campaign struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	AdvertiserID uuid.UUID       `json:"advertiser_id" db:"advertiser_id"`
	Title        string          `json:"title" db:"title"`
	Brand        Brand           `json:"brand"`
	Description  string          `json:"description,omitempty" db:"description"`
	Budget       decimal.Decimal `json:"budget" db:"budget"`
	Deadline     time.Time       `json:"deadline" db:"deadline"`
	Requirements []string        `json:"requirements"`
	Platform     Platform        `json:"platform" db:"platform"`
	ContentType  string          `json:"content_type" db:"content_type"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
}

// Status derives the campaign-level status from its participations.
func (c *Campaign) Status(participations []*Participation) CampaignStatus {
	if len(participations) == 0 {
		return CampaignStatusDraft
	}
	for _, p := range participations {
		if !p.Phase.Terminal() {
			return CampaignStatusActive
		}
	}
	return CampaignStatusCompleted
}
