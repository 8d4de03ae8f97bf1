package queries

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"creator-market/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// Cursor is the opaque keyset position handed to storefront clients.
type Cursor struct {
	After string `json:"after,omitempty"`
}

// afterKey is the last row of a page in (created_at DESC, id DESC) order.
// Micros match the timestamptz precision so the keyset comparison is exact.
type afterKey struct {
	Micros int64     `json:"t"`
	ID     uuid.UUID `json:"id"`
}

func EncodeAfterCursor(createdAt time.Time, id uuid.UUID) string {
	b, _ := json.Marshal(afterKey{Micros: createdAt.UnixMicro(), ID: id})
	return base64.RawURLEncoding.EncodeToString(b)
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "cursor encoding")
	}
	var k afterKey
	if err := json.Unmarshal(raw, &k); err != nil {
		return time.Time{}, uuid.Nil, errs.Wrap(err, "cursor payload")
	}
	if k.ID == uuid.Nil || k.Micros <= 0 {
		return time.Time{}, uuid.Nil, errs.New("cursor is missing its position")
	}
	return time.UnixMicro(k.Micros).UTC(), k.ID, nil
}

// ClampLimit maps non-positive limits to the default and caps the rest.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	return min(limit, MaxListLimit)
}
