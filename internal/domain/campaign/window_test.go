//go:build unit

package campaign_test

import (
	"testing"
	"time"

	"creator-market/internal/domain/campaign"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func mustWindow(t *testing.T, start, end time.Time, status campaign.StoredStatus) campaign.Window {
	t.Helper()
	w, err := campaign.NewWindow(start, end, status)
	require.NoError(t, err)
	return w
}

func TestNewWindow(t *testing.T) {
	t.Run("start equal to end OK", func(t *testing.T) {
		_, err := campaign.NewWindow(t0, t0, campaign.StoredActive)
		assert.NoError(t, err)
	})

	t.Run("start after end NG", func(t *testing.T) {
		_, err := campaign.NewWindow(t0.Add(time.Second), t0, campaign.StoredActive)
		assert.ErrorIs(t, err, campaign.ErrInvalidWindow)
	})

	t.Run("unknown status NG", func(t *testing.T) {
		_, err := campaign.NewWindow(t0, t0.Add(time.Hour), campaign.StoredStatus("archived"))
		assert.ErrorIs(t, err, campaign.ErrInvalidStatus)
	})
}

func TestComputeDisplayStatus(t *testing.T) {
	start := t0.Add(time.Hour)
	end := t0.Add(2 * time.Hour)

	t.Run("draft and paused win regardless of dates", func(t *testing.T) {
		instants := []time.Time{t0, start, t0.Add(90 * time.Minute), end, end.Add(time.Hour)}
		for _, now := range instants {
			assert.Equal(t, campaign.DisplayDraft,
				campaign.ComputeDisplayStatus(mustWindow(t, start, end, campaign.StoredDraft), now))
			assert.Equal(t, campaign.DisplayPaused,
				campaign.ComputeDisplayStatus(mustWindow(t, start, end, campaign.StoredPaused), now))
		}
	})

	testCases := []struct {
		name   string
		status campaign.StoredStatus
		now    time.Time
		want   campaign.DisplayStatus
	}{
		{name: "before start is scheduled", status: campaign.StoredActive, now: t0, want: campaign.DisplayScheduled},
		{name: "one ms before start is scheduled", status: campaign.StoredActive, now: start.Add(-time.Millisecond), want: campaign.DisplayScheduled},
		{name: "start is inclusive", status: campaign.StoredActive, now: start, want: campaign.DisplayActive},
		{name: "end is inclusive", status: campaign.StoredActive, now: end, want: campaign.DisplayActive},
		{name: "one ms after end is completed", status: campaign.StoredActive, now: end.Add(time.Millisecond), want: campaign.DisplayCompleted},
		{name: "stored completed inside window is still active", status: campaign.StoredCompleted, now: start, want: campaign.DisplayActive},
		{name: "stored completed before start is scheduled", status: campaign.StoredCompleted, now: t0, want: campaign.DisplayScheduled},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := mustWindow(t, start, end, tc.status)
			assert.Equal(t, tc.want, campaign.ComputeDisplayStatus(w, tc.now))
		})
	}
}
