package queries

import (
	"time"

	"creator-market/internal/domain/campaign"

	"github.com/google/uuid"
)

// CampaignView is the campaign data supplied by the marketplace database.
// Only the fields the lifecycle derivation and storefront cards need are read.
type CampaignView struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	BrandName string    `json:"brand_name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// CampaignLifecycle is a campaign plus its state derived at Now.
type CampaignLifecycle struct {
	Campaign      *CampaignView
	DisplayStatus campaign.DisplayStatus
	Countdown     *campaign.Countdown
	Started       bool
	Now           time.Time
}

// CountdownEvent is emitted by WatchCountdown on every tick.
type CountdownEvent struct {
	CampaignID uuid.UUID
	Countdown  *campaign.Countdown
	// Started is set only on the single event that observed the transition.
	Started bool
	At      time.Time
}
