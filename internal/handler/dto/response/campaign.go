package response

import (
	"time"

	"creator-market/internal/domain/campaign"
	"creator-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CampaignResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	BrandName string    `json:"brand_name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Status    string    `json:"status"`
}

type CountdownResponse struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

type LifecycleResponse struct {
	Campaign      CampaignResponse   `json:"campaign"`
	DisplayStatus string             `json:"display_status"`
	Countdown     *CountdownResponse `json:"countdown"`
	Started       bool               `json:"started"`
	EvaluatedAt   time.Time          `json:"evaluated_at"`
}

type CampaignListResponse struct {
	Items      []*LifecycleResponse `json:"items"`
	NextCursor *string              `json:"next_cursor,omitempty"`
}

type CountdownEventResponse struct {
	CampaignID uuid.UUID          `json:"campaign_id"`
	Countdown  *CountdownResponse `json:"countdown"`
	Started    bool               `json:"started"`
	At         time.Time          `json:"at"`
}

func FromCampaignLifecycle(l *queries.CampaignLifecycle) (*LifecycleResponse, error) {
	res := &LifecycleResponse{
		DisplayStatus: l.DisplayStatus.String(),
		Countdown:     fromCountdown(l.Countdown),
		Started:       l.Started,
		EvaluatedAt:   l.Now,
	}
	if err := copier.Copy(&res.Campaign, l.Campaign); err != nil {
		return nil, err
	}
	return res, nil
}

func FromCampaignList(items []*queries.CampaignLifecycle, next *queries.Cursor) (*CampaignListResponse, error) {
	res := &CampaignListResponse{Items: make([]*LifecycleResponse, 0, len(items))}
	for _, it := range items {
		item, err := FromCampaignLifecycle(it)
		if err != nil {
			return nil, err
		}
		res.Items = append(res.Items, item)
	}
	if next != nil {
		res.NextCursor = &next.After
	}
	return res, nil
}

func FromCountdownEvent(ev queries.CountdownEvent) *CountdownEventResponse {
	return &CountdownEventResponse{
		CampaignID: ev.CampaignID,
		Countdown:  fromCountdown(ev.Countdown),
		Started:    ev.Started,
		At:         ev.At,
	}
}

func fromCountdown(cd *campaign.Countdown) *CountdownResponse {
	if cd == nil {
		return nil
	}
	res := &CountdownResponse{}
	// field names line up one to one
	_ = copier.Copy(res, cd)
	return res
}
