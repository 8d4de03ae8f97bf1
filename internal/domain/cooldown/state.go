// Package cooldown tracks the rearm delay of rate-limited remote actions.
package cooldown

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidDuration = errors.New("cooldown duration must be positive")
	ErrInvalidKey      = errors.New("cooldown key must not be empty")
	ErrMalformedValue  = errors.New("malformed persisted cooldown value")
)

// Persisted end times use ISO-8601 with millisecond precision in UTC.
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// State is a running cooldown. Absence of a cooldown is a nil *State.
type State struct {
	key      Key
	endTime  time.Time
	duration time.Duration
}

func NewState(key Key, now time.Time, d time.Duration) (*State, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}
	if d <= 0 {
		return nil, ErrInvalidDuration
	}
	return &State{
		key:      key,
		endTime:  now.Add(d),
		duration: d,
	}, nil
}

// ReconstructState rebuilds a state from a persisted end time. The original
// duration is not stored, so it is left as the time remaining at load.
func ReconstructState(key Key, endTime, now time.Time) *State {
	return &State{
		key:      key,
		endTime:  endTime,
		duration: endTime.Sub(now),
	}
}

func (s *State) Key() Key                { return s.key }
func (s *State) EndTime() time.Time      { return s.endTime }
func (s *State) Duration() time.Duration { return s.duration }

// Remaining is never negative.
func (s *State) Remaining(now time.Time) time.Duration {
	rem := s.endTime.Sub(now)
	if rem < 0 {
		return 0
	}
	return rem
}

func (s *State) ExpiredAt(now time.Time) bool {
	return !s.endTime.After(now)
}

// Tick classifies the state at now.
func (s *State) Tick(now time.Time) TickResult {
	rem := s.endTime.Sub(now)
	if rem <= 0 {
		return TickResult{Expired: true}
	}
	return TickResult{Remaining: rem}
}

type TickResult struct {
	Expired   bool
	Remaining time.Duration
}

// Display renders the remaining time as minutes:seconds, seconds zero-padded.
// Minutes are not wrapped into hours.
func (r TickResult) Display() string {
	if r.Expired {
		return "0:00"
	}
	return FormatRemaining(r.Remaining)
}

func FormatRemaining(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	minutes := ms / 60000
	seconds := (ms % 60000) / 1000
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

func EncodeEndTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func DecodeEndTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedValue, v)
	}
	return t, nil
}
