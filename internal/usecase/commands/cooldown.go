package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"creator-market/internal/domain/cooldown"
	"creator-market/internal/pkg/clock"
	"creator-market/internal/pkg/config"
	"creator-market/internal/pkg/ticker"
)

type CooldownView struct {
	Key       cooldown.Key
	Running   bool
	EndTime   *time.Time
	Remaining time.Duration
	Display   string
}

type CooldownCommands interface {
	// Start always (re)arms the cooldown, replacing any running one for key.
	Start(ctx context.Context, key cooldown.Key, d time.Duration) (*cooldown.State, error)
	// TryStart arms the cooldown only when key is idle. ok is false and the
	// running state is returned otherwise.
	TryStart(ctx context.Context, key cooldown.Key, d time.Duration) (st *cooldown.State, ok bool, err error)
	LoadOnInit(ctx context.Context, key cooldown.Key) (*cooldown.State, error)
	Tick(ctx context.Context, key cooldown.Key, now time.Time) cooldown.TickResult
	Dismiss(ctx context.Context, key cooldown.Key) error
	Status(ctx context.Context, key cooldown.Key) (*CooldownView, error)
	Shutdown()
}

type cooldownEntry struct {
	state  *cooldown.State
	handle ticker.CancelHandle
	gen    uint64
}

// Storage calls run under mu so that an expiry delete can never clobber a
// newer start for the same key.
type cooldownUseCaseImpl struct {
	mu       sync.Mutex
	store    KeyValueStore
	clock    clock.Clock
	ticker   ticker.Ticker
	interval time.Duration
	logger   *slog.Logger
	entries  map[cooldown.Key]*cooldownEntry
	gen      uint64
}

func NewCooldownCommands(store KeyValueStore, clk clock.Clock, tk ticker.Ticker, cfg config.Config, logger *slog.Logger) CooldownCommands {
	return &cooldownUseCaseImpl{
		store:    store,
		clock:    clk,
		ticker:   tk,
		interval: cfg.Lifecycle.TickInterval,
		logger:   logger,
		entries:  make(map[cooldown.Key]*cooldownEntry),
	}
}

func (uc *cooldownUseCaseImpl) Start(ctx context.Context, key cooldown.Key, d time.Duration) (*cooldown.State, error) {
	st, err := cooldown.NewState(key, uc.clock.Now(), d)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.startLocked(ctx, st)
	return st, nil
}

func (uc *cooldownUseCaseImpl) TryStart(ctx context.Context, key cooldown.Key, d time.Duration) (*cooldown.State, bool, error) {
	now := uc.clock.Now()
	st, err := cooldown.NewState(key, now, d)
	if err != nil {
		return nil, false, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if running := uc.liveLocked(ctx, key, now); running != nil {
		return running, false, nil
	}
	uc.startLocked(ctx, st)
	return st, true, nil
}

func (uc *cooldownUseCaseImpl) LoadOnInit(ctx context.Context, key cooldown.Key) (*cooldown.State, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.liveLocked(ctx, key, uc.clock.Now()), nil
}

func (uc *cooldownUseCaseImpl) Tick(ctx context.Context, key cooldown.Key, now time.Time) cooldown.TickResult {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	e, ok := uc.entries[key]
	if !ok {
		return cooldown.TickResult{Expired: true}
	}
	res := e.state.Tick(now)
	if res.Expired {
		uc.clearLocked(ctx, key)
		uc.logger.Info("cooldown expired", "key", key.String())
	}
	return res
}

func (uc *cooldownUseCaseImpl) Dismiss(ctx context.Context, key cooldown.Key) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.clearLocked(ctx, key)
	uc.logger.Info("cooldown dismissed", "key", key.String())
	return nil
}

func (uc *cooldownUseCaseImpl) Status(ctx context.Context, key cooldown.Key) (*CooldownView, error) {
	now := uc.clock.Now()

	uc.mu.Lock()
	defer uc.mu.Unlock()

	st := uc.liveLocked(ctx, key, now)
	if st == nil {
		return &CooldownView{Key: key, Display: "0:00"}, nil
	}
	res := st.Tick(now)
	end := st.EndTime()
	return &CooldownView{
		Key:       key,
		Running:   true,
		EndTime:   &end,
		Remaining: res.Remaining,
		Display:   res.Display(),
	}, nil
}

// Shutdown releases every ticker. Persisted end times are kept so running
// cooldowns resume on the next LoadOnInit.
func (uc *cooldownUseCaseImpl) Shutdown() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for key, e := range uc.entries {
		e.handle.Cancel()
		delete(uc.entries, key)
	}
}

// liveLocked returns the running state for key, loading it from the store when
// it is not held in memory. Expired states are cleared on the way.
func (uc *cooldownUseCaseImpl) liveLocked(ctx context.Context, key cooldown.Key, now time.Time) *cooldown.State {
	if e, ok := uc.entries[key]; ok {
		if e.state.ExpiredAt(now) {
			uc.clearLocked(ctx, key)
			return nil
		}
		return e.state
	}

	raw, ok, err := uc.store.Get(ctx, key.String())
	if err != nil {
		uc.logger.Warn("cooldown load failed, treating as idle", "key", key.String(), "error", err.Error())
		return nil
	}
	if !ok {
		return nil
	}

	end, err := cooldown.DecodeEndTime(raw)
	if err != nil {
		uc.logger.Warn("discarding malformed cooldown", "key", key.String(), "error", err.Error())
		uc.deleteLocked(ctx, key)
		return nil
	}

	st := cooldown.ReconstructState(key, end, now)
	if st.ExpiredAt(now) {
		uc.deleteLocked(ctx, key)
		return nil
	}

	uc.armLocked(st)
	return st
}

func (uc *cooldownUseCaseImpl) startLocked(ctx context.Context, st *cooldown.State) {
	if err := uc.store.Set(ctx, st.Key().String(), cooldown.EncodeEndTime(st.EndTime())); err != nil {
		uc.logger.Warn("cooldown persist failed, keeping in memory only", "key", st.Key().String(), "error", err.Error())
	}
	uc.armLocked(st)
	uc.logger.Info("cooldown started",
		"key", st.Key().String(),
		"end_time", st.EndTime(),
		"duration", st.Duration())
}

// armLocked replaces any ticker for the key so only one is ever live.
func (uc *cooldownUseCaseImpl) armLocked(st *cooldown.State) {
	key := st.Key()
	if prev, ok := uc.entries[key]; ok {
		prev.handle.Cancel()
	}

	uc.gen++
	gen := uc.gen
	e := &cooldownEntry{state: st, gen: gen}
	uc.entries[key] = e
	e.handle = uc.ticker.Start(func(now time.Time) {
		uc.onTick(key, gen, now)
	}, uc.interval)
}

func (uc *cooldownUseCaseImpl) onTick(key cooldown.Key, gen uint64, now time.Time) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	e, ok := uc.entries[key]
	if !ok || e.gen != gen {
		return
	}
	if e.state.Tick(now).Expired {
		uc.clearLocked(context.Background(), key)
		uc.logger.Info("cooldown expired", "key", key.String())
	}
}

func (uc *cooldownUseCaseImpl) clearLocked(ctx context.Context, key cooldown.Key) {
	if e, ok := uc.entries[key]; ok {
		e.handle.Cancel()
		delete(uc.entries, key)
	}
	uc.deleteLocked(ctx, key)
}

func (uc *cooldownUseCaseImpl) deleteLocked(ctx context.Context, key cooldown.Key) {
	if err := uc.store.Delete(ctx, key.String()); err != nil {
		uc.logger.Warn("cooldown delete failed", "key", key.String(), "error", err.Error())
	}
}
