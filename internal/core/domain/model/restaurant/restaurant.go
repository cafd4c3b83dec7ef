// Package restaurant models the read-only restaurant shape the order core
// needs: enough to resolve the restaurant an order references and the owner
// account behind it. Restaurant management is outside this core.
package restaurant

import (
	"errors"
	"fmt"
	"time"

	"ristorante/internal/core/domain/model/user"
	"ristorante/internal/pkg/errs"
	"ristorante/internal/pkg/guard"
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant was not created
// through the NewRestaurant constructor.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant is one row of the restaurants table. The business name is the
// primary key; the owner is the RestaurantOwner account the row references.
type Restaurant struct {
	owner       user.User
	name        string
	vatNumber   string
	openingTime time.Time
	closingTime time.Time

	guard guard.ConstructorGuard
}

// NewRestaurant builds a Restaurant from its row fields and the resolved
// owner account. The owner must carry the RestaurantOwner role.
func NewRestaurant(owner user.User, name, vatNumber string, openingTime, closingTime time.Time) (Restaurant, error) {
	r := Restaurant{
		vatNumber:   vatNumber,
		openingTime: openingTime,
		closingTime: closingTime,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setOwner(owner),
		r.setName(name),
	); err != nil {
		return Restaurant{}, err
	}

	return r, nil
}

// Validate ensures the Restaurant was created through NewRestaurant.
func (r Restaurant) Validate() error {
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// IsEqual compares two restaurants by business name.
func (r Restaurant) IsEqual(other Restaurant) bool {
	return r.name == other.name
}

// Owner returns the RestaurantOwner account behind the restaurant.
func (r Restaurant) Owner() user.User { return r.owner }

// Name returns the business name, the restaurant's identity.
func (r Restaurant) Name() string { return r.name }

// VatNumber returns the VAT registration number.
func (r Restaurant) VatNumber() string { return r.vatNumber }

// OpeningTime returns the daily opening time.
func (r Restaurant) OpeningTime() time.Time { return r.openingTime }

// ClosingTime returns the daily closing time.
func (r Restaurant) ClosingTime() time.Time { return r.closingTime }

func (r *Restaurant) setOwner(owner user.User) error {
	if err := owner.Validate(); err != nil {
		return err
	}
	if owner.Role() != user.RestaurantOwner {
		return errs.NewValueIsInvalidErrorWithCause(
			"restaurant owner",
			fmt.Errorf("role %s cannot own a restaurant", owner.Role()),
		)
	}
	r.owner = owner
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("restaurant name")
	}
	r.name = name
	return nil
}
