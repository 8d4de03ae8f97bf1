//go:build unit

package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"creator-market/internal/domain/cooldown"
	"creator-market/internal/infra/kvstore"
	"creator-market/internal/pkg/clock"
	"creator-market/internal/pkg/config"
	"creator-market/internal/pkg/ticker"
	"creator-market/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const googleKey = cooldown.KeyGoogleScraping

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type failingStore struct {
	mock.Mock
}

func (m *failingStore) Get(ctx context.Context, key string) (string, bool, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *failingStore) Set(ctx context.Context, key, value string) error {
	return m.Called(ctx, key, value).Error(0)
}

func (m *failingStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type cooldownFixture struct {
	clock  *clock.MockClock
	ticker *ticker.ManualTicker
	store  *kvstore.MemoryStore
	uc     commands.CooldownCommands
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newCooldownFixture() *cooldownFixture {
	clk := clock.NewMockClock(t0)
	tk := ticker.NewManualTicker(clk)
	store := kvstore.NewMemoryStore()
	return &cooldownFixture{
		clock:  clk,
		ticker: tk,
		store:  store,
		uc:     commands.NewCooldownCommands(store, clk, tk, config.NewTestConfig(), discardLogger()),
	}
}

func (f *cooldownFixture) persisted(t *testing.T) (string, bool) {
	t.Helper()
	v, ok, err := f.store.Get(context.Background(), googleKey.String())
	require.NoError(t, err)
	return v, ok
}

func TestCooldownCommands_Start(t *testing.T) {
	ctx := context.Background()

	t.Run("persists end time and arms one ticker", func(t *testing.T) {
		f := newCooldownFixture()

		st, err := f.uc.Start(ctx, googleKey, 15*time.Minute)

		require.NoError(t, err)
		assert.Equal(t, t0.Add(15*time.Minute), st.EndTime())
		v, ok := f.persisted(t)
		require.True(t, ok)
		assert.Equal(t, "2026-03-01T12:15:00.000Z", v)
		assert.Equal(t, 1, f.ticker.Active())
	})

	t.Run("restart replaces the previous ticker", func(t *testing.T) {
		f := newCooldownFixture()
		_, err := f.uc.Start(ctx, googleKey, 15*time.Minute)
		require.NoError(t, err)

		f.clock.Add(5 * time.Minute)
		st, err := f.uc.Start(ctx, googleKey, 15*time.Minute)

		require.NoError(t, err)
		assert.Equal(t, t0.Add(20*time.Minute), st.EndTime())
		assert.Equal(t, 1, f.ticker.Active())
	})

	t.Run("rejects non-positive duration", func(t *testing.T) {
		f := newCooldownFixture()

		_, err := f.uc.Start(ctx, googleKey, 0)

		assert.ErrorIs(t, err, cooldown.ErrInvalidDuration)
		_, ok := f.persisted(t)
		assert.False(t, ok)
		assert.Equal(t, 0, f.ticker.Active())
	})

	t.Run("storage failure keeps the cooldown in memory", func(t *testing.T) {
		clk := clock.NewMockClock(t0)
		tk := ticker.NewManualTicker(clk)
		store := new(failingStore)
		store.On("Set", mock.Anything, googleKey.String(), mock.Anything).Return(errors.New("quota exceeded"))
		uc := commands.NewCooldownCommands(store, clk, tk, config.NewTestConfig(), discardLogger())

		st, err := uc.Start(ctx, googleKey, time.Minute)
		require.NoError(t, err)
		require.NotNil(t, st)

		view, err := uc.Status(ctx, googleKey)
		require.NoError(t, err)
		assert.True(t, view.Running)
		assert.Equal(t, "1:00", view.Display)
		store.AssertExpectations(t)
	})
}

func TestCooldownCommands_TryStart(t *testing.T) {
	ctx := context.Background()
	f := newCooldownFixture()

	first, ok, err := f.uc.TryStart(ctx, googleKey, 15*time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	f.clock.Add(time.Minute)
	running, ok, err := f.uc.TryStart(ctx, googleKey, 15*time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, first.EndTime(), running.EndTime())
	assert.Equal(t, 1, f.ticker.Active())
}

func TestCooldownCommands_LoadOnInit(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name        string
		stored      *string
		wantRunning bool
		wantKept    bool
	}{
		{name: "absent key is idle", stored: nil},
		{name: "future end time resumes", stored: ptr("2026-03-01T12:10:00.000Z"), wantRunning: true, wantKept: true},
		{name: "end time equal to now is expired", stored: ptr("2026-03-01T12:00:00.000Z")},
		{name: "past end time is expired and deleted", stored: ptr("2026-03-01T11:00:00.000Z")},
		{name: "malformed value is discarded", stored: ptr("not-a-date")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newCooldownFixture()
			if tc.stored != nil {
				require.NoError(t, f.store.Set(ctx, googleKey.String(), *tc.stored))
			}

			st, err := f.uc.LoadOnInit(ctx, googleKey)

			require.NoError(t, err)
			_, kept := f.persisted(t)
			assert.Equal(t, tc.wantKept, kept)
			if !tc.wantRunning {
				assert.Nil(t, st)
				assert.Equal(t, 0, f.ticker.Active())
				return
			}
			require.NotNil(t, st)
			assert.Equal(t, 10*time.Minute, st.Remaining(t0))
			assert.Equal(t, 1, f.ticker.Active())
		})
	}

	t.Run("storage read failure degrades to idle", func(t *testing.T) {
		clk := clock.NewMockClock(t0)
		tk := ticker.NewManualTicker(clk)
		store := new(failingStore)
		store.On("Get", mock.Anything, googleKey.String()).Return("", false, errors.New("storage disabled"))
		uc := commands.NewCooldownCommands(store, clk, tk, config.NewTestConfig(), discardLogger())

		st, err := uc.LoadOnInit(ctx, googleKey)

		require.NoError(t, err)
		assert.Nil(t, st)
	})
}

func TestCooldownCommands_ExpiresByTicker(t *testing.T) {
	ctx := context.Background()
	f := newCooldownFixture()
	_, err := f.uc.Start(ctx, googleKey, 3*time.Second)
	require.NoError(t, err)

	f.ticker.Advance(2 * time.Second)
	view, err := f.uc.Status(ctx, googleKey)
	require.NoError(t, err)
	assert.True(t, view.Running)
	assert.Equal(t, "0:01", view.Display)

	f.ticker.Advance(time.Second)

	_, ok := f.persisted(t)
	assert.False(t, ok, "expired key removed from storage")
	assert.Equal(t, 0, f.ticker.Active(), "ticker cancelled on expiry")
	view, err = f.uc.Status(ctx, googleKey)
	require.NoError(t, err)
	assert.False(t, view.Running)
	assert.Nil(t, view.EndTime)
}

func TestCooldownCommands_Tick(t *testing.T) {
	ctx := context.Background()
	f := newCooldownFixture()
	_, err := f.uc.Start(ctx, googleKey, 15*time.Minute)
	require.NoError(t, err)

	res := f.uc.Tick(ctx, googleKey, t0.Add(time.Millisecond))
	assert.False(t, res.Expired)
	assert.Equal(t, "14:59", res.Display())

	res = f.uc.Tick(ctx, googleKey, t0.Add(15*time.Minute))
	assert.True(t, res.Expired)
	_, ok := f.persisted(t)
	assert.False(t, ok)
	assert.Equal(t, 0, f.ticker.Active())

	res = f.uc.Tick(ctx, googleKey, t0.Add(16*time.Minute))
	assert.True(t, res.Expired, "idle key reports expired")
}

func TestCooldownCommands_Dismiss(t *testing.T) {
	ctx := context.Background()
	f := newCooldownFixture()
	_, err := f.uc.Start(ctx, googleKey, 15*time.Minute)
	require.NoError(t, err)

	require.NoError(t, f.uc.Dismiss(ctx, googleKey))

	_, ok := f.persisted(t)
	assert.False(t, ok)
	assert.Equal(t, 0, f.ticker.Active())
	require.NoError(t, f.uc.Dismiss(ctx, googleKey), "dismissing an idle key is a no-op")
}

// outageStore is a MemoryStore that can be switched off.
type outageStore struct {
	*kvstore.MemoryStore
	down bool
}

var errOutage = errors.New("connection refused")

func (s *outageStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.down {
		return "", false, errOutage
	}
	return s.MemoryStore.Get(ctx, key)
}

func (s *outageStore) Set(ctx context.Context, key, value string) error {
	if s.down {
		return errOutage
	}
	return s.MemoryStore.Set(ctx, key, value)
}

func (s *outageStore) Delete(ctx context.Context, key string) error {
	if s.down {
		return errOutage
	}
	return s.MemoryStore.Delete(ctx, key)
}

func TestCooldownCommands_DismissDuringOutage(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewMockClock(t0)
	tk := ticker.NewManualTicker(clk)
	primary := &outageStore{MemoryStore: kvstore.NewMemoryStore()}
	store := kvstore.NewBestEffortStore(primary, discardLogger())
	uc := commands.NewCooldownCommands(store, clk, tk, config.NewTestConfig(), discardLogger())

	_, err := uc.Start(ctx, googleKey, 15*time.Minute)
	require.NoError(t, err)

	primary.down = true
	require.NoError(t, uc.Dismiss(ctx, googleKey))
	primary.down = false

	view, err := uc.Status(ctx, googleKey)
	require.NoError(t, err)
	assert.False(t, view.Running, "dismissed cooldown must not come back")

	_, ok, err := primary.MemoryStore.Get(ctx, googleKey.String())
	require.NoError(t, err)
	assert.False(t, ok, "delete reaches storage once it recovers")

	_, started, err := uc.TryStart(ctx, googleKey, 15*time.Minute)
	require.NoError(t, err)
	assert.True(t, started)
}

func TestCooldownCommands_Shutdown(t *testing.T) {
	ctx := context.Background()
	f := newCooldownFixture()
	_, err := f.uc.Start(ctx, cooldown.KeyGoogleScraping, 15*time.Minute)
	require.NoError(t, err)
	_, err = f.uc.Start(ctx, cooldown.KeyBingScraping, 10*time.Minute)
	require.NoError(t, err)
	require.Equal(t, 2, f.ticker.Active())

	f.uc.Shutdown()

	assert.Equal(t, 0, f.ticker.Active())
	_, ok := f.persisted(t)
	assert.True(t, ok, "running cooldowns survive a restart")

	// a fresh instance over the same storage resumes where we left off
	f.clock.Add(5 * time.Minute)
	resumed := commands.NewCooldownCommands(f.store, f.clock, f.ticker, config.NewTestConfig(), discardLogger())
	st, err := resumed.LoadOnInit(ctx, googleKey)
	require.NoError(t, err)
	require.NotNil(t, st)
	assert.Equal(t, 10*time.Minute, st.Remaining(f.clock.Now()))
}

func ptr[T any](v T) *T { return &v }
