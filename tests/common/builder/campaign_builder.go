//go:build unit || e2e

package builder

import (
	"time"

	"creator-market/internal/usecase/queries"

	"github.com/google/uuid"
)

type CampaignBuilder struct {
	view queries.CampaignView
}

// NewCampaignBuilder starts from an active campaign that opens in one hour
// and runs for a week.
func NewCampaignBuilder() *CampaignBuilder {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &CampaignBuilder{
		view: queries.CampaignView{
			ID:        uuid.New(),
			Title:     "Summer collab",
			BrandName: "Acme Cosmetics",
			StartDate: now.Add(time.Hour),
			EndDate:   now.Add(7 * 24 * time.Hour),
			Status:    "active",
			CreatedAt: now,
		},
	}
}

func (b *CampaignBuilder) WithID(id uuid.UUID) *CampaignBuilder {
	b.view.ID = id
	return b
}

func (b *CampaignBuilder) WithTitle(title string) *CampaignBuilder {
	b.view.Title = title
	return b
}

func (b *CampaignBuilder) WithWindow(start, end time.Time) *CampaignBuilder {
	b.view.StartDate = start
	b.view.EndDate = end
	return b
}

func (b *CampaignBuilder) WithStatus(status string) *CampaignBuilder {
	b.view.Status = status
	return b
}

func (b *CampaignBuilder) WithCreatedAt(t time.Time) *CampaignBuilder {
	b.view.CreatedAt = t
	return b
}

func (b *CampaignBuilder) BuildView() *queries.CampaignView {
	v := b.view
	return &v
}
