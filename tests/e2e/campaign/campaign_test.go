//go:build e2e

package campaign_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	resdto "creator-market/internal/handler/dto/response"
	"creator-market/tests/common/builder"
	"creator-market/tests/common/dbtest"
	"creator-market/tests/common/httptest"
	"creator-market/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	campaignsURL = "/api/campaigns"
	lifecycleURL = "/api/campaigns/%s/lifecycle"
	streamURL    = "/api/campaigns/%s/countdown/stream"
)

type CampaignSuite struct {
	e2e.SharedSuite
}

func (s *CampaignSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestCampaignSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CampaignSuite))
}

// =============================================================================
// TestLifecycle - GET /api/campaigns/:id/lifecycle
// =============================================================================

func (s *CampaignSuite) TestLifecycle() {
	now := time.Now().UTC().Truncate(time.Microsecond)

	cases := []struct {
		name          string
		start, end    time.Time
		status        string
		wantDisplay   string
		wantCountdown bool
	}{
		{name: "active campaign before start is scheduled", start: now.Add(26 * time.Hour), end: now.Add(72 * time.Hour), status: "active", wantDisplay: "scheduled", wantCountdown: true},
		{name: "active campaign inside window is active", start: now.Add(-time.Hour), end: now.Add(time.Hour), status: "active", wantDisplay: "active"},
		{name: "active campaign after end is completed", start: now.Add(-72 * time.Hour), end: now.Add(-time.Hour), status: "active", wantDisplay: "completed"},
		{name: "paused wins over the schedule", start: now.Add(-time.Hour), end: now.Add(time.Hour), status: "paused", wantDisplay: "paused"},
		{name: "draft wins over the schedule", start: now.Add(time.Hour), end: now.Add(2 * time.Hour), status: "draft", wantDisplay: "draft", wantCountdown: true},
	}

	for _, tc := range cases {
		s.Run("Normal case: "+tc.name, func() {
			t := s.T()
			view := builder.NewCampaignBuilder().WithWindow(tc.start, tc.end).WithStatus(tc.status).BuildView()
			dbtest.InsertCampaign(t, s.DB, view)

			w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(lifecycleURL, view.ID), nil, "")

			var res resdto.LifecycleResponse
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)

			expected := &resdto.LifecycleResponse{
				Campaign: resdto.CampaignResponse{
					ID:        view.ID,
					Title:     view.Title,
					BrandName: view.BrandName,
					StartDate: view.StartDate,
					EndDate:   view.EndDate,
					Status:    view.Status,
				},
				DisplayStatus: tc.wantDisplay,
				Started:       !tc.wantCountdown,
			}
			opts := []cmp.Option{
				cmpopts.IgnoreFields(resdto.LifecycleResponse{}, "Countdown", "EvaluatedAt"),
				cmpopts.EquateApproxTime(time.Millisecond),
			}
			if diff := cmp.Diff(expected, &res, opts...); diff != "" {
				t.Errorf("lifecycle mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tc.wantCountdown, res.Countdown != nil)
		})
	}

	s.Run("Normal case: countdown splits the remaining time into days and hours", func() {
		t := s.T()
		view := builder.NewCampaignBuilder().
			WithWindow(now.Add(26*time.Hour+30*time.Second), now.Add(72*time.Hour)).
			BuildView()
		dbtest.InsertCampaign(t, s.DB, view)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(lifecycleURL, view.ID), nil, "")

		var res resdto.LifecycleResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.NotNil(t, res.Countdown)
		assert.Equal(t, 1, res.Countdown.Days)
		assert.Equal(t, 2, res.Countdown.Hours)
		assert.Equal(t, 0, res.Countdown.Minutes)
	})

	s.Run("Error case: unknown campaign is 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(lifecycleURL, uuid.New()), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Campaign not found")
	})

	s.Run("Error case: end before start is 422", func() {
		t := s.T()
		view := builder.NewCampaignBuilder().WithWindow(now.Add(2*time.Hour), now.Add(time.Hour)).BuildView()
		dbtest.InsertCampaign(t, s.DB, view)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(lifecycleURL, view.ID), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Campaign schedule is invalid")
	})

	s.Run("Error case: malformed id is 400", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(lifecycleURL, "not-a-uuid"), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid id")
	})
}

// =============================================================================
// TestList - GET /api/campaigns
// =============================================================================

func (s *CampaignSuite) TestList() {
	s.Run("Normal case: newest first, drafts hidden, keyset pages", func() {
		t := s.T()
		base := time.Now().UTC().Truncate(time.Microsecond)

		var ids []uuid.UUID
		for i := range 3 {
			v := builder.NewCampaignBuilder().
				WithTitle(fmt.Sprintf("campaign %d", i)).
				WithCreatedAt(base.Add(time.Duration(i) * time.Minute)).
				BuildView()
			dbtest.InsertCampaign(t, s.DB, v)
			ids = append(ids, v.ID)
		}
		draft := builder.NewCampaignBuilder().WithStatus("draft").WithCreatedAt(base.Add(time.Hour)).BuildView()
		dbtest.InsertCampaign(t, s.DB, draft)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, campaignsURL+"?limit=2", nil, "")
		var page1 resdto.CampaignListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page1)
		require.Len(t, page1.Items, 2)
		assert.Equal(t, ids[2], page1.Items[0].Campaign.ID)
		assert.Equal(t, ids[1], page1.Items[1].Campaign.ID)
		assert.Equal(t, "scheduled", page1.Items[0].DisplayStatus)
		require.NotNil(t, page1.NextCursor)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, campaignsURL+"?limit=2&after="+*page1.NextCursor, nil, "")
		var page2 resdto.CampaignListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page2)
		require.Len(t, page2.Items, 1)
		assert.Equal(t, ids[0], page2.Items[0].Campaign.ID)
		assert.Nil(t, page2.NextCursor)
	})

	s.Run("Normal case: campaign with an invalid schedule is left out", func() {
		t := s.T()
		now := time.Now().UTC()
		good := builder.NewCampaignBuilder().BuildView()
		bad := builder.NewCampaignBuilder().WithWindow(now.Add(2*time.Hour), now.Add(time.Hour)).BuildView()
		dbtest.InsertCampaign(t, s.DB, good)
		dbtest.InsertCampaign(t, s.DB, bad)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, campaignsURL, nil, "")
		var res resdto.CampaignListResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)
		require.Len(t, res.Items, 1)
		assert.Equal(t, good.ID, res.Items[0].Campaign.ID)
	})

	s.Run("Error case: garbage cursor is 400", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, campaignsURL+"?after=%21%21", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid cursor")
	})
}

// =============================================================================
// TestStreamCountdown - GET /api/campaigns/:id/countdown/stream
// =============================================================================

func (s *CampaignSuite) TestStreamCountdown() {
	s.Run("Normal case: ticks until the start, then a single started event", func() {
		t := s.T()
		now := time.Now().UTC()
		view := builder.NewCampaignBuilder().WithWindow(now.Add(2*time.Second), now.Add(time.Hour)).BuildView()
		dbtest.InsertCampaign(t, s.DB, view)

		// returns once the campaign has started
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(streamURL, view.ID), nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")

		events := httptest.ParseSSE(t, w.Body)
		require.GreaterOrEqual(t, len(events), 2)

		for _, ev := range events[:len(events)-1] {
			assert.Equal(t, "tick", ev.Event)
			var body resdto.CountdownEventResponse
			ev.Decode(t, &body)
			assert.NotNil(t, body.Countdown)
			assert.False(t, body.Started)
		}

		last := events[len(events)-1]
		assert.Equal(t, "started", last.Event)
		var started resdto.CountdownEventResponse
		last.Decode(t, &started)
		assert.Equal(t, view.ID, started.CampaignID)
		assert.Nil(t, started.Countdown)
		assert.True(t, started.Started)
	})

	s.Run("Normal case: already started campaign yields one started event", func() {
		t := s.T()
		now := time.Now().UTC()
		view := builder.NewCampaignBuilder().WithWindow(now.Add(-time.Hour), now.Add(time.Hour)).BuildView()
		dbtest.InsertCampaign(t, s.DB, view)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(streamURL, view.ID), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		events := httptest.ParseSSE(t, w.Body)
		require.Len(t, events, 1)
		assert.Equal(t, "started", events[0].Event)
	})

	s.Run("Error case: unknown campaign is 404 before streaming", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(streamURL, uuid.New()), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Campaign not found")
	})
}
