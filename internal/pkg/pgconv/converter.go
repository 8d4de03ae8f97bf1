// Package pgconv converts between pgtype values and the plain Go types the
// usecase layer works with. Timestamps always come back in UTC.
package pgconv

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func UUIDFromPgtype(pu pgtype.UUID) uuid.UUID {
	if !pu.Valid {
		return uuid.Nil
	}
	return uuid.UUID(pu.Bytes)
}

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: id != uuid.Nil}
}

// TextOr returns fallback for NULL.
func TextOr(pt pgtype.Text, fallback string) string {
	if !pt.Valid {
		return fallback
	}
	return pt.String
}

// TimeFromPgtype returns the zero time for NULL and infinity values.
func TimeFromPgtype(pt pgtype.Timestamptz) time.Time {
	if !pt.Valid || pt.InfinityModifier != pgtype.Finite {
		return time.Time{}
	}
	return pt.Time.UTC()
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t.UTC(), Valid: !t.IsZero()}
}

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
