package campaign

import "errors"

var (
	ErrInvalidStatus = errors.New("invalid campaign status")
	ErrInvalidWindow = errors.New("campaign start date must not be after end date")
)

// StoredStatus is the status persisted on the campaign record.
type StoredStatus string

const (
	StoredDraft     StoredStatus = "draft"
	StoredActive    StoredStatus = "active"
	StoredPaused    StoredStatus = "paused"
	StoredCompleted StoredStatus = "completed"
)

func (s StoredStatus) String() string {
	return string(s)
}

func (s StoredStatus) IsValid() bool {
	switch s {
	case StoredDraft, StoredActive, StoredPaused, StoredCompleted:
		return true
	default:
		return false
	}
}

func NewStoredStatus(s string) (StoredStatus, error) {
	status := StoredStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// DisplayStatus is derived at read time and never persisted.
type DisplayStatus string

const (
	DisplayDraft     DisplayStatus = "draft"
	DisplayPaused    DisplayStatus = "paused"
	DisplayScheduled DisplayStatus = "scheduled"
	DisplayActive    DisplayStatus = "active"
	DisplayCompleted DisplayStatus = "completed"
)

func (s DisplayStatus) String() string {
	return string(s)
}
