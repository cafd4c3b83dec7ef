package commands

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"ristorante/internal/pkg/errs"
	"ristorante/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a request to place a new order.
// Food lines arrive as a food id to quantity mapping; the handler resolves
// the ids against the catalog before anything is written.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(
//	    "mario.rossi", "Da Luigi", time.Now(),
//	    decimal.NewFromFloat(2.50), map[int]int{3: 2, 8: 1})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	clientUsername string
	restaurantName string
	createdAt      time.Time
	shippingRate   decimal.Decimal
	foodQuantities map[int]int

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// Validates that the client and restaurant are named, the creation time is
// set, the shipping rate is not negative and every requested line carries a
// positive food id and quantity. Returns an error if any validation fails.
func NewPlaceOrderCommand(
	clientUsername, restaurantName string,
	createdAt time.Time,
	shippingRate decimal.Decimal,
	foodQuantities map[int]int,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClientUsername(clientUsername),
		cmd.setRestaurantName(restaurantName),
		cmd.setCreatedAt(createdAt),
		cmd.setShippingRate(shippingRate),
		cmd.setFoodQuantities(foodQuantities),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// ClientUsername returns the username of the ordering client.
func (c PlaceOrderCommand) ClientUsername() string { return c.clientUsername }

// RestaurantName returns the name of the restaurant the order targets.
func (c PlaceOrderCommand) RestaurantName() string { return c.restaurantName }

// CreatedAt returns the moment the order was placed.
func (c PlaceOrderCommand) CreatedAt() time.Time { return c.createdAt }

// ShippingRate returns the delivery fee the order carries.
func (c PlaceOrderCommand) ShippingRate() decimal.Decimal { return c.shippingRate }

// FoodQuantities returns a copy of the requested food id to quantity mapping.
func (c PlaceOrderCommand) FoodQuantities() map[int]int {
	quantities := make(map[int]int, len(c.foodQuantities))
	for id, qty := range c.foodQuantities {
		quantities[id] = qty
	}
	return quantities
}

func (c *PlaceOrderCommand) setClientUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("clientUsername")
	}
	c.clientUsername = username
	return nil
}

func (c *PlaceOrderCommand) setRestaurantName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("restaurantName")
	}
	c.restaurantName = name
	return nil
}

func (c *PlaceOrderCommand) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	c.createdAt = createdAt
	return nil
}

func (c *PlaceOrderCommand) setShippingRate(shippingRate decimal.Decimal) error {
	if shippingRate.IsNegative() {
		return errs.NewValueIsInvalidError("shippingRate")
	}
	c.shippingRate = shippingRate
	return nil
}

func (c *PlaceOrderCommand) setFoodQuantities(foodQuantities map[int]int) error {
	if len(foodQuantities) == 0 {
		return errs.NewValueIsRequiredError("foodQuantities")
	}

	quantities := make(map[int]int, len(foodQuantities))
	for id, qty := range foodQuantities {
		if id <= 0 {
			return errs.NewValueIsInvalidError("foodID")
		}
		if qty <= 0 {
			return errs.NewValueIsInvalidError("quantity")
		}
		quantities[id] = qty
	}

	c.foodQuantities = quantities
	return nil
}
