// Package food models the read-only menu entry shape the order core needs
// from the catalog. Creating and editing menu entries is a catalog concern
// outside this core; foods are only ever rehydrated by id to build order
// lines.
package food

import (
	"errors"

	"ristorante/internal/pkg/errs"
	"ristorante/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrFoodIsNotConstructed is returned when a Food was not created through
// the NewFood constructor.
var ErrFoodIsNotConstructed = errors.New("Food must be created via NewFood constructor")

// Food is one row of the foods table. Identity is the storage-generated id.
type Food struct {
	id             int
	name           string
	restaurantName string
	price          decimal.Decimal
	foodType       string

	guard guard.ConstructorGuard
}

// NewFood builds a Food from its row fields.
func NewFood(id int, name, restaurantName string, price decimal.Decimal, foodType string) (Food, error) {
	f := Food{
		foodType: foodType,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		f.setID(id),
		f.setName(name),
		f.setRestaurantName(restaurantName),
		f.setPrice(price),
	); err != nil {
		return Food{}, err
	}

	return f, nil
}

// Validate ensures the Food was created through NewFood.
func (f Food) Validate() error {
	return f.guard.Validate(ErrFoodIsNotConstructed)
}

// IsEqual compares two foods by id.
func (f Food) IsEqual(other Food) bool {
	return f.id == other.id
}

// ID returns the storage-generated identifier.
func (f Food) ID() int { return f.id }

// Name returns the menu entry name.
func (f Food) Name() string { return f.name }

// RestaurantName returns the name of the restaurant serving this food.
func (f Food) RestaurantName() string { return f.restaurantName }

// Price returns the unit price.
func (f Food) Price() decimal.Decimal { return f.price }

// FoodType returns the catalog category name.
func (f Food) FoodType() string { return f.foodType }

func (f *Food) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("food id")
	}
	f.id = id
	return nil
}

func (f *Food) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("food name")
	}
	f.name = name
	return nil
}

func (f *Food) setRestaurantName(restaurantName string) error {
	if restaurantName == "" {
		return errs.NewValueIsRequiredError("restaurant name")
	}
	f.restaurantName = restaurantName
	return nil
}

func (f *Food) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidError("food price")
	}
	f.price = price
	return nil
}
