package commands

import (
	"context"
	"fmt"

	"ristorante/internal/core/domain/model/order"
	"ristorante/internal/core/ports"
	"ristorante/internal/pkg/result"
)

// PlaceOrderCommandHandler handles the business logic for placing an order.
// Resolves the restaurant and every requested food against the catalog, then
// writes the order header and its food lines in one transaction so a failed
// line insert leaves no half-written order behind.
type PlaceOrderCommandHandler struct {
	uowFactory  UoWFactory
	restaurants ports.RestaurantRepository
	foods       ports.FoodRepository
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory for transactional persistence plus the catalog
// repositories used to resolve the restaurant and the requested foods.
func NewPlaceOrderCommandHandler(
	uowFactory UoWFactory,
	restaurants ports.RestaurantRepository,
	foods ports.FoodRepository,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:  uowFactory,
		restaurants: restaurants,
		foods:       foods,
	}
}

// Handle processes the order placement command.
// Returns a failed Result when the command is invalid, the client, the
// restaurant or a requested food does not exist, a food belongs to a
// different restaurant, or a write fails.
func (h *PlaceOrderCommandHandler) Handle(
	ctx context.Context,
	cmd PlaceOrderCommand,
) result.Result[*order.Order] {
	if err := cmd.Validate(); err != nil {
		return result.Failure[*order.Order](err.Error())
	}

	restRes := h.restaurants.FindByName(ctx, cmd.RestaurantName())
	if !restRes.IsSuccess() {
		return result.PropagateFailure[*order.Order](restRes)
	}
	rest, found := restRes.Value().Get()
	if !found {
		return result.Failure[*order.Order](
			fmt.Sprintf("restaurant %q does not exist", cmd.RestaurantName()))
	}

	lines := make(map[int]order.Line, len(cmd.FoodQuantities()))
	for id, qty := range cmd.FoodQuantities() {
		foodRes := h.foods.FindByID(ctx, id)
		if !foodRes.IsSuccess() {
			return result.PropagateFailure[*order.Order](foodRes)
		}
		f, found := foodRes.Value().Get()
		if !found {
			return result.Failure[*order.Order](fmt.Sprintf("food %d does not exist", id))
		}
		if f.RestaurantName() != rest.Name() {
			return result.Failure[*order.Order](fmt.Sprintf(
				"food %d does not belong to restaurant %q", id, rest.Name()))
		}
		lines[id] = order.Line{Food: f, Quantity: qty}
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return result.Failure[*order.Order]("could not begin transaction: " + err.Error())
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	clientRes := uow.UserRepository().Find(ctx, cmd.ClientUsername())
	if !clientRes.IsSuccess() {
		return result.PropagateFailure[*order.Order](clientRes)
	}
	client, found := clientRes.Value().Get()
	if !found {
		return result.Failure[*order.Order](
			fmt.Sprintf("user %q does not exist", cmd.ClientUsername()))
	}

	inserted := uow.OrderRepository().Insert(ctx,
		rest, cmd.CreatedAt(), cmd.ShippingRate(), client, lines)
	if !inserted.IsSuccess() {
		return inserted
	}

	detailRes := uow.OrderRepository().InsertFoodRequested(ctx, inserted.Value().ID(), lines)
	if !detailRes.IsSuccess() {
		return result.PropagateFailure[*order.Order](detailRes)
	}

	if err := uow.Commit(ctx); err != nil {
		return result.Failure[*order.Order]("could not commit transaction: " + err.Error())
	}

	return inserted
}
