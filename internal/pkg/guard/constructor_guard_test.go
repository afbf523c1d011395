package guard_test

import (
	"errors"
	"testing"

	"picking/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly constructed guard returns nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero value guard returns custom error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expectedError := errors.New("picking list not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero value guard returns default error when nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type sample struct {
		guard guard.ConstructorGuard
	}

	t.Run("copied guard keeps its constructed state", func(t *testing.T) {
		s := sample{guard: guard.NewConstructorGuard()}
		copied := s

		require.NoError(t, copied.guard.Validate(errors.New("not constructed")))
	})

	t.Run("zero value struct fails validation", func(t *testing.T) {
		var s sample

		require.Error(t, s.guard.Validate(nil))
	})
}
