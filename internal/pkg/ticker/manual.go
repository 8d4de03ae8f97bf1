package ticker

import (
	"sync"
	"time"

	"creator-market/internal/pkg/clock"
)

// ManualTicker fires registrations only when Advance moves its clock forward.
type ManualTicker struct {
	mu    sync.Mutex
	clock *clock.MockClock
	regs  []*manualHandle
}

func NewManualTicker(clk *clock.MockClock) *ManualTicker {
	return &ManualTicker{clock: clk}
}

func (m *ManualTicker) Start(fn Func, interval time.Duration) CancelHandle {
	if interval <= 0 {
		interval = DefaultInterval
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	h := &manualHandle{
		fn:       fn,
		interval: interval,
		next:     m.clock.Now().Add(interval),
	}
	m.regs = append(m.regs, h)
	return h
}

// Advance moves the clock by d, firing every due registration in time order.
func (m *ManualTicker) Advance(d time.Duration) {
	target := m.clock.Now().Add(d)
	for {
		h := m.nextDue(target)
		if h == nil {
			break
		}
		m.clock.Set(h.next)
		h.next = h.next.Add(h.interval)
		h.fn(m.clock.Now())
	}
	m.clock.Set(target)
}

// Active reports the number of registrations that have not been cancelled.
func (m *ManualTicker) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, h := range m.regs {
		if !h.isCancelled() {
			n++
		}
	}
	return n
}

func (m *ManualTicker) nextDue(target time.Time) *manualHandle {
	m.mu.Lock()
	defer m.mu.Unlock()

	var due *manualHandle
	live := m.regs[:0]
	for _, h := range m.regs {
		if h.isCancelled() {
			continue
		}
		live = append(live, h)
		if h.next.After(target) {
			continue
		}
		if due == nil || h.next.Before(due.next) {
			due = h
		}
	}
	m.regs = live
	return due
}

type manualHandle struct {
	mu        sync.Mutex
	fn        Func
	interval  time.Duration
	next      time.Time
	cancelled bool
}

func (h *manualHandle) Cancel() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cancelled = true
}

func (h *manualHandle) isCancelled() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cancelled
}
