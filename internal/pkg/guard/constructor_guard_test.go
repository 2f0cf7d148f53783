package guard_test

import (
	"errors"
	"testing"

	"gigdelivery/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When / Then
		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("delivery step not constructed")

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

// TestConstructorGuardEmbedded checks the guard the way the domain packages embed it.
func TestConstructorGuardEmbedded(t *testing.T) {
	type odometer struct {
		reading int
		guard   guard.ConstructorGuard
	}

	errOdometerNotConstructed := errors.New("odometer must be created via newOdometer")

	newOdometer := func(reading int) (odometer, error) {
		if reading < 0 {
			return odometer{}, errors.New("reading cannot be negative")
		}
		return odometer{reading: reading, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_passes", func(t *testing.T) {
		o, err := newOdometer(1200)

		require.NoError(t, err)
		require.NoError(t, o.guard.Validate(errOdometerNotConstructed))
		assert.Equal(t, 1200, o.reading)
	})

	t.Run("failed_constructor_returns_zero_value", func(t *testing.T) {
		o, err := newOdometer(-1)

		require.Error(t, err)
		assert.Equal(t, errOdometerNotConstructed, o.guard.Validate(errOdometerNotConstructed))
	})
}
