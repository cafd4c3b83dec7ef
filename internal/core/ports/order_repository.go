package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"ristorante/internal/core/domain/model/order"
	"ristorante/internal/core/domain/model/restaurant"
	"ristorante/internal/core/domain/model/user"
	"ristorante/internal/pkg/optional"
	"ristorante/internal/pkg/result"
)

// OrderRepository defines the persistence contract for order aggregates.
// Every read path fully reconstructs the order: the stored restaurant name,
// client username and optional deliveryman username are resolved through the
// companion repositories and the food lines are loaded alongside.
type OrderRepository interface {
	// Find retrieves the order with the given id, fully reconstructed.
	// An absent row is Success wrapping an empty Optional. A row referencing
	// a restaurant or client that no longer exists, or carrying a field
	// combination impossible for its state, is corrupted data and panics
	// with an InvariantViolationError; an unparseable state token is an
	// ordinary failure.
	Find(ctx context.Context, id int) result.Result[optional.Optional[*order.Order]]

	// Insert writes a new order header in the Waiting state and returns the
	// aggregate carrying the storage-generated id. Food lines are persisted
	// separately via InsertFoodRequested. A successful write that yields no
	// generated id panics, the write is ambiguous.
	Insert(
		ctx context.Context,
		rest restaurant.Restaurant,
		createdAt time.Time,
		shippingRate decimal.Decimal,
		client user.User,
		foodRequested map[int]order.Line,
	) result.Result[*order.Order]

	// ListByState retrieves every order currently in the given state, each
	// reconstructed via the same path as Find.
	ListByState(ctx context.Context, status order.Status) result.Result[[]*order.Order]

	// MarkReady transitions a Waiting order to Ready.
	// A write affecting zero rows, because the order is gone or a concurrent
	// writer already moved it on, is a failure.
	MarkReady(ctx context.Context, o *order.Order) result.Result[*order.Order]

	// Accept transitions a Ready order to Accepted, recording the acceptance
	// time and the deliveryman taking charge. Zero rows affected is a
	// failure; of two concurrent accepts exactly one wins.
	Accept(
		ctx context.Context,
		o *order.Order,
		acceptanceTime time.Time,
		deliveryman user.User,
	) result.Result[*order.Order]

	// Deliver transitions an Accepted order to Delivered, recording the
	// delivery time. Zero rows affected is a failure.
	Deliver(ctx context.Context, o *order.Order, deliveryTime time.Time) result.Result[*order.Order]

	// Cancel transitions any non-terminal order to Cancelled, keeping
	// whatever acceptance and delivery data the order already holds.
	// Zero rows affected is a failure.
	Cancel(ctx context.Context, o *order.Order) result.Result[*order.Order]

	// InsertFoodRequested persists the order's food lines all-or-nothing:
	// either every (food, quantity) pair is written or none are.
	InsertFoodRequested(
		ctx context.Context,
		orderID int,
		foodRequested map[int]order.Line,
	) result.Result[map[int]order.Line]
}
