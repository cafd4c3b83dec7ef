package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ristorante/internal/adapters/out/postgres/foodrepo"
	"ristorante/internal/adapters/out/postgres/restaurantrepo"
	"ristorante/internal/adapters/out/postgres/userrepo"
	"ristorante/internal/core/domain/model/order"
	"ristorante/internal/core/domain/model/restaurant"
	"ristorante/internal/core/domain/model/user"
	"ristorante/internal/pkg/errs"
	"ristorante/internal/pkg/optional"
	"ristorante/internal/pkg/result"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
// The companion repositories share the same database handle, so inside a
// unit of work every dependent lookup runs on the active transaction.
type GormOrderRepository struct {
	db          *gorm.DB
	users       *userrepo.GormUserRepository
	restaurants *restaurantrepo.GormRestaurantRepository
	foods       *foodrepo.GormFoodRepository
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{
		db:          db,
		users:       userrepo.NewGormUserRepository(db),
		restaurants: restaurantrepo.NewGormRestaurantRepository(db),
		foods:       foodrepo.NewGormFoodRepository(db),
	}
}

// Find retrieves the order with the given id, fully reconstructed.
// An absent row is Success wrapping an empty Optional.
func (r *GormOrderRepository) Find(
	ctx context.Context, id int,
) result.Result[optional.Optional[*order.Order]] {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return result.Success(optional.None[*order.Order]())
		}
		slog.Error("order lookup failed", "id", id, "err", err)
		return result.Failure[optional.Optional[*order.Order]](
			fmt.Sprintf("could not read order %d", id))
	}

	reconstructed := r.toDomain(ctx, dto)
	if !reconstructed.IsSuccess() {
		return result.PropagateFailure[optional.Optional[*order.Order]](reconstructed)
	}

	return result.Success(optional.Some(reconstructed.Value()))
}

// Insert writes a new Waiting order header and returns the aggregate carrying
// the storage-generated id. Food lines are persisted separately via
// InsertFoodRequested so header and lines stay composable steps.
func (r *GormOrderRepository) Insert(
	ctx context.Context,
	rest restaurant.Restaurant,
	createdAt time.Time,
	shippingRate decimal.Decimal,
	client user.User,
	foodRequested map[int]order.Line,
) result.Result[*order.Order] {
	// Build a throwaway aggregate first so invalid input is rejected before
	// anything reaches the database. The id is not known yet; a placeholder
	// satisfies the constructor.
	if _, err := order.NewWaitingOrder(1, rest, createdAt, shippingRate, client, foodRequested); err != nil {
		return result.Failure[*order.Order](err.Error())
	}

	dto := OrderDTO{
		RestaurantName: rest.Name(),
		Datetime:       createdAt,
		State:          order.Waiting.SQLToken(),
		ShippingRate:   shippingRate,
		ClientUsername: client.Username(),
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		slog.Error("order insert failed", "restaurant", rest.Name(), "err", err)
		return result.Failure[*order.Order]("could not insert order")
	}

	if dto.ID == 0 {
		// The row was written but the generated id did not come back. The
		// write is ambiguous and must not be reported as a plain failure.
		panic(errs.NewInvariantViolationError(
			"order",
			fmt.Sprintf("insert for client %q reported success but yielded no id", client.Username()),
		))
	}

	o, err := order.NewWaitingOrder(dto.ID, rest, createdAt, shippingRate, client, foodRequested)
	if err != nil {
		return result.Failure[*order.Order](err.Error())
	}

	return result.Success(o)
}

// ListByState retrieves every order currently in the given state, each
// reconstructed via the same path as Find.
func (r *GormOrderRepository) ListByState(
	ctx context.Context, status order.Status,
) result.Result[[]*order.Order] {
	if err := status.Validate(); err != nil {
		return result.Failure[[]*order.Order](err.Error())
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "state = ?", status.SQLToken()).Error; err != nil {
		slog.Error("order list failed", "state", status.SQLToken(), "err", err)
		return result.Failure[[]*order.Order](
			fmt.Sprintf("could not list orders in state %s", status))
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		reconstructed := r.toDomain(ctx, dto)
		if !reconstructed.IsSuccess() {
			return result.PropagateFailure[[]*order.Order](reconstructed)
		}
		orders = append(orders, reconstructed.Value())
	}

	return result.Success(orders)
}

// MarkReady transitions a Waiting order to Ready.
func (r *GormOrderRepository) MarkReady(
	ctx context.Context, o *order.Order,
) result.Result[*order.Order] {
	target, err := o.MarkReady()
	if err != nil {
		return result.Failure[*order.Order](err.Error())
	}

	return r.updateState(ctx, o.ID(), o.Status(), target, nil)
}

// Accept transitions a Ready order to Accepted, recording the acceptance time
// and the deliveryman. Of two concurrent accepts exactly one matches the
// Ready row; the loser's write affects zero rows and fails.
func (r *GormOrderRepository) Accept(
	ctx context.Context, o *order.Order, acceptanceTime time.Time, deliveryman user.User,
) result.Result[*order.Order] {
	target, err := o.Accept(acceptanceTime, deliveryman)
	if err != nil {
		return result.Failure[*order.Order](err.Error())
	}

	return r.updateState(ctx, o.ID(), o.Status(), target, map[string]any{
		"acceptance_time":      acceptanceTime,
		"deliveryman_username": deliveryman.Username(),
	})
}

// Deliver transitions an Accepted order to Delivered, recording the delivery
// time.
func (r *GormOrderRepository) Deliver(
	ctx context.Context, o *order.Order, deliveryTime time.Time,
) result.Result[*order.Order] {
	target, err := o.Deliver(deliveryTime)
	if err != nil {
		return result.Failure[*order.Order](err.Error())
	}

	return r.updateState(ctx, o.ID(), o.Status(), target, map[string]any{
		"delivery_time": deliveryTime,
	})
}

// Cancel transitions any non-terminal order to Cancelled. The nullable
// columns are left untouched so the row keeps whatever acceptance and
// delivery data it already holds.
func (r *GormOrderRepository) Cancel(
	ctx context.Context, o *order.Order,
) result.Result[*order.Order] {
	target, err := o.Cancel()
	if err != nil {
		return result.Failure[*order.Order](err.Error())
	}

	return r.updateState(ctx, o.ID(), o.Status(), target, nil)
}

// updateState is the single write path for every state transition. The WHERE
// clause pins both the id and the expected current state, so a concurrent
// writer that already moved the order on makes this write affect zero rows.
// Zero rows is always a failure, never a silent success. The in-memory
// snapshot is returned only after the write succeeds.
func (r *GormOrderRepository) updateState(
	ctx context.Context, id int, from order.Status, target *order.Order, columns map[string]any,
) result.Result[*order.Order] {
	updates := map[string]any{"state": target.Status().SQLToken()}
	for column, value := range columns {
		updates[column] = value
	}

	write := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND state = ?", id, from.SQLToken()).
		Updates(updates)
	if write.Error != nil {
		slog.Error("order state update failed",
			"id", id, "from", from.SQLToken(), "to", target.Status().SQLToken(), "err", write.Error)
		return result.Failure[*order.Order](
			fmt.Sprintf("could not move order %d to state %s", id, target.Status()))
	}
	if write.RowsAffected == 0 {
		return result.Failure[*order.Order](
			fmt.Sprintf("order %d is no longer in state %s", id, from))
	}

	return result.Success(target)
}

// InsertFoodRequested persists the order's food lines all-or-nothing. The
// transaction closure guarantees rollback on every failing exit path,
// including a panic; a rollback failure is logged by the driver while the
// original error is still what the caller sees.
func (r *GormOrderRepository) InsertFoodRequested(
	ctx context.Context, orderID int, foodRequested map[int]order.Line,
) result.Result[map[int]order.Line] {
	if len(foodRequested) == 0 {
		return result.Failure[map[int]order.Line]("order has no food lines to insert")
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for foodID, line := range foodRequested {
			dto := OrderDetailDTO{
				FoodID:   foodID,
				OrderID:  orderID,
				Quantity: line.Quantity,
			}
			if err := tx.Create(&dto).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		slog.Error("food line batch insert failed", "orderId", orderID, "err", err)
		return result.Failure[map[int]order.Line](
			fmt.Sprintf("could not insert food lines of order %d", orderID))
	}

	inserted := make(map[int]order.Line, len(foodRequested))
	for id, line := range foodRequested {
		inserted[id] = line
	}
	return result.Success(inserted)
}

// toDomain fully reconstructs an order from its header row: parse the state
// token, resolve the referenced entities, load the food lines and dispatch on
// the state. An unparseable state token is a recoverable failure; a valid
// row referencing a missing restaurant, client, deliveryman or food proves
// referential corruption and panics.
func (r *GormOrderRepository) toDomain(
	ctx context.Context, dto OrderDTO,
) result.Result[*order.Order] {
	status, err := order.ParseStatus(dto.State)
	if err != nil {
		slog.Error("order row carries unknown state token", "id", dto.ID, "state", dto.State)
		return result.Failure[*order.Order](err.Error())
	}

	restRes := r.restaurants.FindByName(ctx, dto.RestaurantName)
	if !restRes.IsSuccess() {
		return result.PropagateFailure[*order.Order](restRes)
	}
	rest, ok := restRes.Value().Get()
	if !ok {
		panic(errs.NewInvariantViolationError(
			"order",
			fmt.Sprintf("order %d references missing restaurant %q", dto.ID, dto.RestaurantName),
		))
	}

	clientRes := r.users.Find(ctx, dto.ClientUsername)
	if !clientRes.IsSuccess() {
		return result.PropagateFailure[*order.Order](clientRes)
	}
	client, ok := clientRes.Value().Get()
	if !ok {
		panic(errs.NewInvariantViolationError(
			"order",
			fmt.Sprintf("order %d references missing client %q", dto.ID, dto.ClientUsername),
		))
	}

	deliveryman := optional.None[user.User]()
	if dto.DeliverymanUsername != nil {
		dmRes := r.users.Find(ctx, *dto.DeliverymanUsername)
		if !dmRes.IsSuccess() {
			return result.PropagateFailure[*order.Order](dmRes)
		}
		dm, present := dmRes.Value().Get()
		if !present {
			panic(errs.NewInvariantViolationError(
				"order",
				fmt.Sprintf("order %d references missing deliveryman %q", dto.ID, *dto.DeliverymanUsername),
			))
		}
		deliveryman = optional.Some(dm)
	}

	linesRes := r.loadFoodRequested(ctx, dto.ID)
	if !linesRes.IsSuccess() {
		return result.PropagateFailure[*order.Order](linesRes)
	}

	o, err := order.RestoreOrder(
		dto.ID, rest, dto.Datetime, dto.ShippingRate, client, linesRes.Value(),
		status,
		optional.FromPtr(dto.AcceptanceTime),
		deliveryman,
		optional.FromPtr(dto.DeliveryTime),
	)
	if err != nil {
		slog.Error("order row cannot be reconstructed", "id", dto.ID, "err", err)
		return result.Failure[*order.Order](err.Error())
	}

	return result.Success(o)
}

// loadFoodRequested reads the order's line rows and resolves each food.
func (r *GormOrderRepository) loadFoodRequested(
	ctx context.Context, orderID int,
) result.Result[map[int]order.Line] {
	var dtos []OrderDetailDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "order_id = ?", orderID).Error; err != nil {
		slog.Error("food line lookup failed", "orderId", orderID, "err", err)
		return result.Failure[map[int]order.Line](
			fmt.Sprintf("could not read food lines of order %d", orderID))
	}

	lines := make(map[int]order.Line, len(dtos))
	for _, dto := range dtos {
		foodRes := r.foods.FindByID(ctx, dto.FoodID)
		if !foodRes.IsSuccess() {
			return result.PropagateFailure[map[int]order.Line](foodRes)
		}
		f, ok := foodRes.Value().Get()
		if !ok {
			panic(errs.NewInvariantViolationError(
				"order",
				fmt.Sprintf("order %d references missing food %d", orderID, dto.FoodID),
			))
		}
		lines[dto.FoodID] = order.Line{Food: f, Quantity: dto.Quantity}
	}

	return result.Success(lines)
}
