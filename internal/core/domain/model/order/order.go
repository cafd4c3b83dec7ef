package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"ristorante/internal/core/domain/model/food"
	"ristorante/internal/core/domain/model/restaurant"
	"ristorante/internal/core/domain/model/user"
	"ristorante/internal/pkg/errs"
	"ristorante/internal/pkg/optional"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through a package constructor. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewWaitingOrder or RestoreOrder constructor")
)

// Line is one requested food with its positive quantity.
type Line struct {
	Food     food.Food
	Quantity int
}

// Order represents a food order in the system. It is the aggregate root that
// manages the order lifecycle from placement through preparation and delivery.
//
// An Order is one immutable snapshot of what is known about the order in its
// current status. Each status adds knowledge:
//   - Waiting, Ready: base fields only
//   - Accepted: acceptance time and deliveryman
//   - Delivered: additionally the delivery time
//   - Cancelled: whatever was known when the order was cancelled
//
// Order follows these invariants:
//   - Identity is the storage-generated id; equality is id-based
//   - An Accepted or Delivered order always carries its acceptance time and
//     deliveryman, a Delivered order also its delivery time
//   - The food lines map is copied on construction and on every accessor call,
//     so callers never hold a mutable alias into stored state
//   - Status transitions follow defined business rules and return a new
//     snapshot instead of mutating the receiver
type Order struct {
	// id is the storage-generated unique identifier for the order
	id int

	// restaurant prepares the order
	restaurant restaurant.Restaurant

	// createdAt is the moment the order was placed
	createdAt time.Time

	// shippingRate is the delivery fee credited to the deliveryman
	shippingRate decimal.Decimal

	// client placed the order
	client user.User

	// foodRequested maps food id to its requested line
	foodRequested map[int]Line

	// status is the current state in the order lifecycle
	status Status

	// acceptanceTime is set once a deliveryman accepts the order
	acceptanceTime optional.Optional[time.Time]

	// deliveryman is set once a deliveryman accepts the order
	deliveryman optional.Optional[user.User]

	// deliveryTime is set once the order is delivered
	deliveryTime optional.Optional[time.Time]

	// isConstructed ensures the order was created via a package constructor
	isConstructed bool
}

// NewWaitingOrder creates an Order in the initial Waiting status.
//
// This is the constructor the insert path uses: the id must already be the
// storage-generated one, the client must carry the Client role and every food
// line must have a positive quantity keyed by its food id.
//
// Returns:
//   - *Order: the created order if all validations pass
//   - error: validation error if any parameter is invalid
func NewWaitingOrder(
	id int,
	rest restaurant.Restaurant,
	createdAt time.Time,
	shippingRate decimal.Decimal,
	client user.User,
	foodRequested map[int]Line,
) (*Order, error) {
	order := &Order{
		status:        Waiting,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setRestaurant(rest),
		order.setCreatedAt(createdAt),
		order.setShippingRate(shippingRate),
		order.setClient(client),
		order.setFoodRequested(foodRequested),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state.
//
// The status must be a valid Status value; an invalid one is a recoverable
// error because the caller is expected to have parsed the stored token first.
// The optional fields must match the status: an Accepted or Delivered order
// with an absent acceptance time or deliveryman, or a Delivered order with an
// absent delivery time, proves the stored row is corrupt and causes a panic
// with an InvariantViolationError rather than an ordinary error.
func RestoreOrder(
	id int,
	rest restaurant.Restaurant,
	createdAt time.Time,
	shippingRate decimal.Decimal,
	client user.User,
	foodRequested map[int]Line,
	status Status,
	acceptanceTime optional.Optional[time.Time],
	deliveryman optional.Optional[user.User],
	deliveryTime optional.Optional[time.Time],
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	order, err := NewWaitingOrder(id, rest, createdAt, shippingRate, client, foodRequested)
	if err != nil {
		return nil, err
	}

	validateCompanionFields(id, status, acceptanceTime, deliveryman, deliveryTime)

	order.status = status
	order.acceptanceTime = acceptanceTime
	order.deliveryman = deliveryman
	order.deliveryTime = deliveryTime

	return order, nil
}

// validateCompanionFields enforces the cross-field shape of each status.
// A valid status with an impossible field combination is persisted corruption,
// not a runtime condition, so violations panic.
func validateCompanionFields(
	id int,
	status Status,
	acceptanceTime optional.Optional[time.Time],
	deliveryman optional.Optional[user.User],
	deliveryTime optional.Optional[time.Time],
) {
	fatal := func(details string) {
		panic(errs.NewInvariantViolationError(
			"order",
			fmt.Sprintf("order %d in state %s %s", id, status, details),
		))
	}

	if dm, ok := deliveryman.Get(); ok && dm.Role() != user.Deliveryman {
		fatal(fmt.Sprintf("references %q who is not a deliveryman", dm.Username()))
	}

	switch status {
	case Waiting, Ready:
		if acceptanceTime.IsPresent() || deliveryman.IsPresent() || deliveryTime.IsPresent() {
			fatal("must not have an acceptance time, deliveryman or delivery time")
		}
	case Accepted:
		if !acceptanceTime.IsPresent() || !deliveryman.IsPresent() {
			fatal("must have an acceptance time and a deliveryman")
		}
		if deliveryTime.IsPresent() {
			fatal("must not have a delivery time")
		}
	case Delivered:
		if !acceptanceTime.IsPresent() || !deliveryman.IsPresent() || !deliveryTime.IsPresent() {
			fatal("must have an acceptance time, a deliveryman and a delivery time")
		}
	case Cancelled:
		// Cancellation captures whatever was known at the time: nothing,
		// acceptance data, or acceptance data plus a delivery time.
		if acceptanceTime.IsPresent() != deliveryman.IsPresent() {
			fatal("must have the acceptance time and the deliveryman together or not at all")
		}
		if deliveryTime.IsPresent() && !acceptanceTime.IsPresent() {
			fatal("must not have a delivery time without an acceptance time")
		}
	default:
		fatal("is not a valid state")
	}
}

// Validate ensures the Order instance was properly constructed through a
// package constructor. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same id, regardless of status.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's storage-generated identifier.
func (o *Order) ID() int {
	return o.id
}

// Restaurant returns the restaurant preparing the order.
func (o *Order) Restaurant() restaurant.Restaurant {
	return o.restaurant
}

// CreatedAt returns the moment the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ShippingRate returns the delivery fee for the order.
func (o *Order) ShippingRate() decimal.Decimal {
	return o.shippingRate
}

// Client returns the client who placed the order.
func (o *Order) Client() user.User {
	return o.client
}

// FoodRequested returns a copy of the order's food lines keyed by food id.
// Mutating the returned map does not affect the order.
func (o *Order) FoodRequested() map[int]Line {
	return copyLines(o.foodRequested)
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// AcceptanceTime returns the moment a deliveryman accepted the order.
// Absent while the order is Waiting or Ready.
func (o *Order) AcceptanceTime() optional.Optional[time.Time] {
	return o.acceptanceTime
}

// Deliveryman returns the deliveryman in charge of the order.
// Absent while the order is Waiting or Ready.
func (o *Order) Deliveryman() optional.Optional[user.User] {
	return o.deliveryman
}

// DeliveryTime returns the moment the order was delivered.
// Present only for Delivered orders and for orders cancelled after delivery
// data was recorded.
func (o *Order) DeliveryTime() optional.Optional[time.Time] {
	return o.deliveryTime
}

// MarkReady returns a Ready snapshot of the order.
//
// Valid only from Waiting status; an illegal transition is a recoverable
// error. The receiver is not mutated.
func (o *Order) MarkReady() (*Order, error) {
	newStatus, err := o.status.MarkReady()
	if err != nil {
		return nil, err
	}

	ready := o.snapshot()
	ready.status = newStatus
	return ready, nil
}

// Accept returns an Accepted snapshot carrying the acceptance time and the
// deliveryman taking charge.
//
// The deliveryman must be a constructed user with the Deliveryman role and
// the acceptance time must be set. Valid only from Ready status. The receiver
// is not mutated.
func (o *Order) Accept(acceptanceTime time.Time, deliveryman user.User) (*Order, error) {
	if acceptanceTime.IsZero() {
		return nil, errs.NewValueIsRequiredError("acceptanceTime")
	}
	if err := deliveryman.Validate(); err != nil {
		return nil, err
	}
	if deliveryman.Role() != user.Deliveryman {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"deliveryman is invalid",
			fmt.Errorf("%q has role %s", deliveryman.Username(), deliveryman.Role()),
		)
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return nil, err
	}

	accepted := o.snapshot()
	accepted.status = newStatus
	accepted.acceptanceTime = optional.Some(acceptanceTime)
	accepted.deliveryman = optional.Some(deliveryman)
	return accepted, nil
}

// Deliver returns a Delivered snapshot carrying the delivery time.
//
// The delivery time must be set. Valid only from Accepted status, so the
// acceptance data is already present. The receiver is not mutated.
func (o *Order) Deliver(deliveryTime time.Time) (*Order, error) {
	if deliveryTime.IsZero() {
		return nil, errs.NewValueIsRequiredError("deliveryTime")
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return nil, err
	}

	delivered := o.snapshot()
	delivered.status = newStatus
	delivered.deliveryTime = optional.Some(deliveryTime)
	return delivered, nil
}

// Cancel returns a Cancelled snapshot keeping whatever acceptance and
// delivery data the order already carried.
//
// Valid from any non-terminal status. The receiver is not mutated.
func (o *Order) Cancel() (*Order, error) {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return nil, err
	}

	cancelled := o.snapshot()
	cancelled.status = newStatus
	return cancelled, nil
}

// snapshot returns a deep enough copy of the order for a status transition:
// scalar fields are copied by value and the food lines map is duplicated.
func (o *Order) snapshot() *Order {
	copied := *o
	copied.foodRequested = copyLines(o.foodRequested)
	return &copied
}

func copyLines(lines map[int]Line) map[int]Line {
	copied := make(map[int]Line, len(lines))
	for id, line := range lines {
		copied[id] = line
	}
	return copied
}

// setID validates and sets the order's identifier.
// This is a private method used only during construction.
func (o *Order) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

// setRestaurant validates and sets the preparing restaurant.
// This is a private method used only during construction.
func (o *Order) setRestaurant(rest restaurant.Restaurant) error {
	if err := rest.Validate(); err != nil {
		return err
	}
	o.restaurant = rest
	return nil
}

// setCreatedAt validates and sets the placement timestamp.
// This is a private method used only during construction.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

// setShippingRate validates and sets the delivery fee.
// The fee may be zero but never negative.
// This is a private method used only during construction.
func (o *Order) setShippingRate(shippingRate decimal.Decimal) error {
	if shippingRate.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"shippingRate is invalid",
			fmt.Errorf("%s is negative", shippingRate),
		)
	}
	o.shippingRate = shippingRate
	return nil
}

// setClient validates and sets the ordering client.
// This is a private method used only during construction.
func (o *Order) setClient(client user.User) error {
	if err := client.Validate(); err != nil {
		return err
	}
	if client.Role() != user.Client {
		return errs.NewValueIsInvalidErrorWithCause(
			"client is invalid",
			fmt.Errorf("%q has role %s", client.Username(), client.Role()),
		)
	}
	o.client = client
	return nil
}

// setFoodRequested validates and sets the food lines, storing a copy.
// Each line must be keyed by its food id and carry a positive quantity.
// This is a private method used only during construction.
func (o *Order) setFoodRequested(foodRequested map[int]Line) error {
	if len(foodRequested) == 0 {
		return errs.NewValueIsRequiredError("foodRequested")
	}
	for id, line := range foodRequested {
		if err := line.Food.Validate(); err != nil {
			return err
		}
		if id != line.Food.ID() {
			return errs.NewValueIsInvalidErrorWithCause(
				"foodRequested is invalid",
				fmt.Errorf("line keyed by %d holds food %d", id, line.Food.ID()),
			)
		}
		if line.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"quantity is invalid",
				fmt.Errorf("%d is not greater than 0 for food %d", line.Quantity, id),
			)
		}
	}
	o.foodRequested = copyLines(foodRequested)
	return nil
}
