package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	t.Run("wraps error with context", func(t *testing.T) {
		err := Wrap(ErrNotFound, "user not found")
		assert.EqualError(t, err, "user not found: not found")
		assert.True(t, Is(err, ErrNotFound))
	})

	t.Run("nil error returns nil", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, "context"))
	})

	t.Run("chain survives multiple wraps", func(t *testing.T) {
		err := Wrap(ErrConflict, "email taken")
		err = fmt.Errorf("create user: %w", err)
		assert.True(t, Is(err, ErrConflict))
		assert.False(t, Is(err, ErrNotFound))
	})
}

func TestSentinelsAreDistinct(t *testing.T) {
	sentinels := []error{ErrNotFound, ErrConflict, ErrInvalidInput, ErrUnauthorized, ErrForbidden}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, Is(a, b), "%v should not match %v", a, b)
		}
	}
}
