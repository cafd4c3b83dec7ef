package commands

import (
	"errors"
	"time"

	"ristorante/internal/pkg/errs"
	"ristorante/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents a deliveryman taking charge of a ready order.
// When two deliverymen race for the same order, exactly one accept succeeds;
// the loser receives an ordinary failure and can pick another order.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID             int
	deliverymanUsername string
	acceptanceTime      time.Time

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command to accept a ready order.
// Validates that the order id is positive, the deliveryman is named and the
// acceptance time is set.
func NewAcceptOrderCommand(
	orderID int,
	deliverymanUsername string,
	acceptanceTime time.Time,
) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDeliverymanUsername(deliverymanUsername),
		cmd.setAcceptanceTime(acceptanceTime),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcceptOrderCommandIsNotConstructed if validation fails.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to accept.
func (c AcceptOrderCommand) OrderID() int { return c.orderID }

// DeliverymanUsername returns the username of the accepting deliveryman.
func (c AcceptOrderCommand) DeliverymanUsername() string { return c.deliverymanUsername }

// AcceptanceTime returns the moment the order is taken in charge.
func (c AcceptOrderCommand) AcceptanceTime() time.Time { return c.acceptanceTime }

func (c *AcceptOrderCommand) setOrderID(orderID int) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderID")
	}
	c.orderID = orderID
	return nil
}

func (c *AcceptOrderCommand) setDeliverymanUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("deliverymanUsername")
	}
	c.deliverymanUsername = username
	return nil
}

func (c *AcceptOrderCommand) setAcceptanceTime(acceptanceTime time.Time) error {
	if acceptanceTime.IsZero() {
		return errs.NewValueIsRequiredError("acceptanceTime")
	}
	c.acceptanceTime = acceptanceTime
	return nil
}
