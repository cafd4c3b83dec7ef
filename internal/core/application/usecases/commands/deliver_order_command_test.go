package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ristorante/internal/core/application/usecases/commands"
)

func TestNewDeliverOrderCommand_ValidInput(t *testing.T) {
	dt := time.Date(2024, 3, 15, 20, 10, 0, 0, time.UTC)
	cmd, err := commands.NewDeliverOrderCommand(7, dt)
	require.NoError(t, err)
	assert.Equal(t, 7, cmd.OrderID())
	assert.Equal(t, dt, cmd.DeliveryTime())
}

func TestNewDeliverOrderCommand_NonPositiveOrderID(t *testing.T) {
	_, err := commands.NewDeliverOrderCommand(0, time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "orderID")
}

func TestNewDeliverOrderCommand_ZeroDeliveryTime(t *testing.T) {
	_, err := commands.NewDeliverOrderCommand(7, time.Time{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliveryTime")
}

func TestDeliverOrderCommand_NotConstructed(t *testing.T) {
	var cmd commands.DeliverOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrDeliverOrderCommandIsNotConstructed)
}
