package kvstore

import (
	"context"
	"log/slog"
	"sync"
)

// BestEffortStore never surfaces storage failures. Every write also lands in an
// in-memory shadow. A write or delete the primary rejected stays pending and is
// replayed before the primary is trusted for that key again, so a recovered
// primary cannot resurrect a value the caller already replaced or removed.
// Pending state is lost on restart.
type BestEffortStore struct {
	primary Store
	shadow  *MemoryStore
	logger  *slog.Logger

	mu      sync.Mutex
	pending map[string]pendingOp
}

type pendingOp struct {
	value   string
	deleted bool
}

func NewBestEffortStore(primary Store, logger *slog.Logger) *BestEffortStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &BestEffortStore{
		primary: primary,
		shadow:  NewMemoryStore(),
		logger:  logger,
		pending: make(map[string]pendingOp),
	}
}

func (s *BestEffortStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.replayLocked(ctx, key) {
		return s.shadow.Get(ctx, key)
	}
	v, ok, err := s.primary.Get(ctx, key)
	if err != nil {
		s.logger.Warn("kv read degraded to memory", "key", key, "error", err.Error())
		return s.shadow.Get(ctx, key)
	}
	return v, ok, nil
}

func (s *BestEffortStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = s.shadow.Set(ctx, key, value)
	if err := s.primary.Set(ctx, key, value); err != nil {
		s.logger.Warn("kv write degraded to memory", "key", key, "error", err.Error())
		s.pending[key] = pendingOp{value: value}
		return nil
	}
	delete(s.pending, key)
	return nil
}

func (s *BestEffortStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_ = s.shadow.Delete(ctx, key)
	if err := s.primary.Delete(ctx, key); err != nil {
		s.logger.Warn("kv delete degraded to memory", "key", key, "error", err.Error())
		s.pending[key] = pendingOp{deleted: true}
		return nil
	}
	delete(s.pending, key)
	return nil
}

// replayLocked pushes a pending op for key to the primary. It reports whether
// the primary is in sync for key.
func (s *BestEffortStore) replayLocked(ctx context.Context, key string) bool {
	op, ok := s.pending[key]
	if !ok {
		return true
	}
	var err error
	if op.deleted {
		err = s.primary.Delete(ctx, key)
	} else {
		err = s.primary.Set(ctx, key, op.value)
	}
	if err != nil {
		s.logger.Debug("kv replay still failing", "key", key, "error", err.Error())
		return false
	}
	delete(s.pending, key)
	s.logger.Info("kv replayed pending write", "key", key, "deleted", op.deleted)
	return true
}
