package campaign

import "time"

const (
	msPerDay    = 86_400_000
	msPerHour   = 3_600_000
	msPerMinute = 60_000
	msPerSecond = 1_000
)

type Countdown struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// ComputeCountdown returns nil once now has reached start. Each unit is taken
// from the remainder of the larger one.
func ComputeCountdown(start, now time.Time) *Countdown {
	if !start.After(now) {
		return nil
	}
	diff := start.Sub(now).Milliseconds()

	days := diff / msPerDay
	diff %= msPerDay
	hours := diff / msPerHour
	diff %= msPerHour
	minutes := diff / msPerMinute
	diff %= msPerMinute

	return &Countdown{
		Days:    int(days),
		Hours:   int(hours),
		Minutes: int(minutes),
		Seconds: int(diff / msPerSecond),
	}
}
