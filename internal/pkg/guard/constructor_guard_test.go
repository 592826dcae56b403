package guard_test

import (
	"errors"
	"testing"

	"canteen/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("slip not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardEmbedded shows the guard embedded in a value type the
// way commands and queries use it.
func TestConstructorGuardEmbedded(t *testing.T) {
	type slip struct {
		token int
		guard guard.ConstructorGuard
	}

	errSlipNotConstructed := errors.New("slip must be created via newSlip")

	newSlip := func(token int) (slip, error) {
		if token <= 0 {
			return slip{}, errors.New("token must be positive")
		}
		return slip{token: token, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_passes", func(t *testing.T) {
		s, err := newSlip(3)

		require.NoError(t, err)
		require.NoError(t, s.guard.Validate(errSlipNotConstructed))
		assert.Equal(t, 3, s.token)
	})

	t.Run("rejected_constructor_returns_zero_value", func(t *testing.T) {
		s, err := newSlip(0)

		require.Error(t, err)
		assert.Equal(t, errSlipNotConstructed, s.guard.Validate(errSlipNotConstructed))
	})

	t.Run("copy_keeps_guard_state", func(t *testing.T) {
		s, _ := newSlip(5)
		cp := s

		require.NoError(t, cp.guard.Validate(errSlipNotConstructed))
	})
}
