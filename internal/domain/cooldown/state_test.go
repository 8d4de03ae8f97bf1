//go:build unit

package cooldown_test

import (
	"testing"
	"time"

	"creator-market/internal/domain/cooldown"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func TestNewState(t *testing.T) {
	testCases := []struct {
		name  string
		key   cooldown.Key
		d     time.Duration
		errIs error
	}{
		{name: "15 minute cooldown OK", key: cooldown.KeyGoogleScraping, d: 15 * time.Minute},
		{name: "10 minute cooldown OK", key: cooldown.KeyBingScraping, d: 10 * time.Minute},
		{name: "zero duration NG", key: cooldown.KeyGoogleScraping, d: 0, errIs: cooldown.ErrInvalidDuration},
		{name: "negative duration NG", key: cooldown.KeyGoogleScraping, d: -time.Second, errIs: cooldown.ErrInvalidDuration},
		{name: "empty key NG", key: "", d: time.Minute, errIs: cooldown.ErrInvalidKey},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			st, err := cooldown.NewState(tc.key, t0, tc.d)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, st)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, t0.Add(tc.d), st.EndTime())
			assert.Equal(t, tc.d, st.Duration())
			assert.Equal(t, tc.key, st.Key())
		})
	}
}

func TestState_Tick(t *testing.T) {
	st, err := cooldown.NewState(cooldown.KeyGoogleScraping, t0, 900_000*time.Millisecond)
	require.NoError(t, err)

	t.Run("at start the full duration remains", func(t *testing.T) {
		res := st.Tick(t0)
		assert.False(t, res.Expired)
		assert.Equal(t, 900_000*time.Millisecond, res.Remaining)
		assert.Equal(t, "15:00", res.Display())
	})

	t.Run("899999ms remaining shows 14:59", func(t *testing.T) {
		res := st.Tick(t0.Add(time.Millisecond))
		assert.False(t, res.Expired)
		assert.Equal(t, "14:59", res.Display())
	})

	t.Run("one millisecond before the end is still running", func(t *testing.T) {
		res := st.Tick(t0.Add(899_999 * time.Millisecond))
		assert.False(t, res.Expired)
		assert.Equal(t, "0:00", res.Display())
	})

	t.Run("exactly at the end expires", func(t *testing.T) {
		res := st.Tick(t0.Add(900_000 * time.Millisecond))
		assert.True(t, res.Expired)
		assert.True(t, st.ExpiredAt(t0.Add(900_000*time.Millisecond)))
	})

	t.Run("after the end expires", func(t *testing.T) {
		assert.True(t, st.Tick(t0.Add(time.Hour)).Expired)
		assert.Equal(t, time.Duration(0), st.Remaining(t0.Add(time.Hour)))
	})
}

func TestFormatRemaining(t *testing.T) {
	testCases := []struct {
		d    time.Duration
		want string
	}{
		{d: 0, want: "0:00"},
		{d: 999 * time.Millisecond, want: "0:00"},
		{d: time.Second, want: "0:01"},
		{d: 61 * time.Second, want: "1:01"},
		{d: 10 * time.Minute, want: "10:00"},
		{d: 75 * time.Minute, want: "75:00"},
		{d: -time.Second, want: "0:00"},
	}

	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, cooldown.FormatRemaining(tc.d))
		})
	}
}

func TestEndTimeEncoding(t *testing.T) {
	t.Run("round trip keeps millisecond precision", func(t *testing.T) {
		end := t0.Add(15*time.Minute + 123*time.Millisecond)
		encoded := cooldown.EncodeEndTime(end)
		assert.Equal(t, "2025-03-01T09:15:00.123Z", encoded)

		decoded, err := cooldown.DecodeEndTime(encoded)
		require.NoError(t, err)
		assert.True(t, end.Equal(decoded))
	})

	t.Run("accepts offsets and missing fraction", func(t *testing.T) {
		decoded, err := cooldown.DecodeEndTime("2025-03-01T18:15:00+09:00")
		require.NoError(t, err)
		assert.True(t, t0.Add(15*time.Minute).Equal(decoded))
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := cooldown.DecodeEndTime("tomorrow")
		assert.ErrorIs(t, err, cooldown.ErrMalformedValue)
	})
}
