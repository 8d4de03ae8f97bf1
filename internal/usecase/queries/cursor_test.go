//go:build unit

package queries_test

import (
	"encoding/base64"
	"testing"
	"time"

	"creator-market/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterCursor(t *testing.T) {
	t.Run("keeps microsecond position", func(t *testing.T) {
		at := time.Date(2026, 3, 1, 12, 0, 0, 123456789, time.UTC)
		id := uuid.New()

		gotAt, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(at, id))

		require.NoError(t, err)
		assert.Equal(t, id, gotID)
		assert.True(t, gotAt.Equal(at.Truncate(time.Microsecond)))
	})

	for name, in := range map[string]string{
		"empty":          "",
		"not base64":     "!!",
		"not json":       base64.RawURLEncoding.EncodeToString([]byte("v1:123-abc")),
		"missing fields": base64.RawURLEncoding.EncodeToString([]byte(`{"t":0}`)),
	} {
		t.Run("rejects "+name, func(t *testing.T) {
			_, _, err := queries.DecodeAfterCursor(in)
			assert.Error(t, err)
		})
	}
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ClampLimit(0))
	assert.Equal(t, queries.DefaultListLimit, queries.ClampLimit(-3))
	assert.Equal(t, 7, queries.ClampLimit(7))
	assert.Equal(t, queries.MaxListLimit, queries.ClampLimit(1000))
}
