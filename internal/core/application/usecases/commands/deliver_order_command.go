package commands

import (
	"errors"
	"time"

	"ristorante/internal/pkg/errs"
	"ristorante/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand represents the completion of a delivery. Besides the
// state change it triggers the payout: the deliveryman's balance grows by
// the order's shipping rate in the same transaction.
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      int
	deliveryTime time.Time

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand creates a command to complete a delivery.
// Validates that the order id is positive and the delivery time is set.
func NewDeliverOrderCommand(orderID int, deliveryTime time.Time) (DeliverOrderCommand, error) {
	cmd := DeliverOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDeliveryTime(deliveryTime),
	); err != nil {
		return DeliverOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeliverOrderCommandIsNotConstructed if validation fails.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being delivered.
func (c DeliverOrderCommand) OrderID() int { return c.orderID }

// DeliveryTime returns the moment the order reached the client.
func (c DeliverOrderCommand) DeliveryTime() time.Time { return c.deliveryTime }

func (c *DeliverOrderCommand) setOrderID(orderID int) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderID")
	}
	c.orderID = orderID
	return nil
}

func (c *DeliverOrderCommand) setDeliveryTime(deliveryTime time.Time) error {
	if deliveryTime.IsZero() {
		return errs.NewValueIsRequiredError("deliveryTime")
	}
	c.deliveryTime = deliveryTime
	return nil
}
