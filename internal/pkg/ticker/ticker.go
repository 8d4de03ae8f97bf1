// Package ticker models repeating timers as owned, cancellable registrations.
// Whoever starts a ticker holds its CancelHandle and must release it on teardown.
package ticker

import (
	"sync"
	"time"

	"creator-market/internal/pkg/clock"
)

const DefaultInterval = time.Second

type Func func(now time.Time)

type CancelHandle interface {
	// Cancel stops future invocations. It is idempotent and may be called from
	// inside the callback. Once it returns no new invocation begins; one that
	// had already begun runs to completion, so Cancel never waits on fn.
	Cancel()
}

type Ticker interface {
	Start(fn Func, interval time.Duration) CancelHandle
}

type RealTicker struct {
	clock clock.Clock
}

func NewRealTicker(clk clock.Clock) Ticker {
	return &RealTicker{clock: clk}
}

func (r *RealTicker) Start(fn Func, interval time.Duration) CancelHandle {
	if interval <= 0 {
		interval = DefaultInterval
	}
	h := &realHandle{done: make(chan struct{})}
	t := time.NewTicker(interval)

	go func() {
		defer t.Stop()
		for {
			select {
			case <-h.done:
				return
			case <-t.C:
				if !h.begin() {
					return
				}
				fn(r.clock.Now())
			}
		}
	}()

	return h
}

type realHandle struct {
	mu        sync.Mutex
	cancelled bool
	done      chan struct{}
}

// begin claims the next invocation. It fails once Cancel has run, so the
// check and Cancel are ordered by mu.
func (h *realHandle) begin() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return !h.cancelled
}

func (h *realHandle) Cancel() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.cancelled {
		return
	}
	h.cancelled = true
	close(h.done)
}
