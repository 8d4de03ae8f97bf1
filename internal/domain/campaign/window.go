package campaign

import "time"

// Window is the read-only input of the lifecycle derivation.
type Window struct {
	startDate time.Time
	endDate   time.Time
	status    StoredStatus
}

func NewWindow(start, end time.Time, status StoredStatus) (Window, error) {
	if !status.IsValid() {
		return Window{}, ErrInvalidStatus
	}
	if start.After(end) {
		return Window{}, ErrInvalidWindow
	}
	return Window{
		startDate: start,
		endDate:   end,
		status:    status,
	}, nil
}

func (w Window) StartDate() time.Time { return w.startDate }
func (w Window) EndDate() time.Time   { return w.endDate }
func (w Window) Status() StoredStatus { return w.status }

// ComputeDisplayStatus applies, in order: draft, paused, before start,
// after end, otherwise active. Both window bounds count as active.
func ComputeDisplayStatus(w Window, now time.Time) DisplayStatus {
	switch {
	case w.status == StoredDraft:
		return DisplayDraft
	case w.status == StoredPaused:
		return DisplayPaused
	case now.Before(w.startDate):
		return DisplayScheduled
	case now.After(w.endDate):
		return DisplayCompleted
	default:
		return DisplayActive
	}
}
