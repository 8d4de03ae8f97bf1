package campaign

import (
	"sync"
	"time"
)

// Tracker drives the Pending -> Started transition of one campaign countdown.
// Started is terminal: the tracker never goes back to Pending.
type Tracker struct {
	mu      sync.Mutex
	start   time.Time
	started bool
}

func NewTracker(start time.Time) *Tracker {
	return &Tracker{start: start}
}

type TrackerTick struct {
	Started   bool
	Countdown *Countdown
	// JustStarted is set on the single tick that observed the transition.
	JustStarted bool
}

func (t *Tracker) Tick(now time.Time) TrackerTick {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return TrackerTick{Started: true}
	}

	cd := ComputeCountdown(t.start, now)
	if cd != nil {
		return TrackerTick{Countdown: cd}
	}

	t.started = true
	return TrackerTick{Started: true, JustStarted: true}
}

func (t *Tracker) Started() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.started
}
