//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"creator-market/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	t.Run("marked error matches the sentinel", func(t *testing.T) {
		base := errors.New("connection refused")
		err := errs.Mark(errs.Wrap(base, "dispatch"), errs.ErrDispatchFailed)

		assert.True(t, errs.Is(err, errs.ErrDispatchFailed))
		assert.True(t, errors.Is(err, base))
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("nil error returns the mark itself", func(t *testing.T) {
		assert.Equal(t, errs.ErrCooldownActive, errs.Mark(nil, errs.ErrCooldownActive))
	})

	t.Run("wrap of nil stays nil", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "ignored"))
		assert.NoError(t, errs.Wrapf(nil, "ignored %d", 1))
	})
}

func TestExtractStackLines(t *testing.T) {
	err := errs.Wrap(errs.New("boom"), "outer")

	lines := errs.ExtractStackLines(err, 3)

	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "outer")
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
}

func TestNewf(t *testing.T) {
	err := errs.Newf("panic: %v", "ticker exploded")

	assert.EqualError(t, err, "panic: ticker exploded")
	assert.Greater(t, len(errs.ExtractStackLines(err, 0)), 1, "stack is recorded")
}
