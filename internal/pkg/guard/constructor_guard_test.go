package guard_test

import (
	"errors"
	"testing"

	"ristorante/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("command not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsage shows the intended embedding in a command struct.
func TestConstructorGuardUsage(t *testing.T) {
	type shipment struct {
		destination string
		guard       guard.ConstructorGuard
	}

	errShipmentNotConstructed := errors.New("shipment must be created via newShipment")

	newShipment := func(destination string) (shipment, error) {
		if destination == "" {
			return shipment{}, errors.New("destination is required")
		}
		return shipment{destination: destination, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_passes_validation", func(t *testing.T) {
		s, err := newShipment("Via Roma 1")

		require.NoError(t, err)
		require.NoError(t, s.guard.Validate(errShipmentNotConstructed))
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var s shipment

		err := s.guard.Validate(errShipmentNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errShipmentNotConstructed, err)
	})
}
