package commands

import (
	"context"
	"fmt"

	"ristorante/internal/core/domain/model/order"
	"ristorante/internal/pkg/result"
)

// DeliverOrderCommandHandler handles the completion of a delivery.
// The state change and the shipping fee credited to the deliveryman run in
// one transaction; a failure on either side rolls back both.
type DeliverOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewDeliverOrderCommandHandler creates a handler for the deliver transition.
// Requires a UoWFactory because the order write and the balance update share
// one transaction.
func NewDeliverOrderCommandHandler(uowFactory UoWFactory) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deliver command.
// Returns a failed Result when the command is invalid, the order does not
// exist, the order is not accepted, or a write fails. On success the
// returned order is delivered and the deliveryman has been credited the
// shipping rate.
func (h *DeliverOrderCommandHandler) Handle(
	ctx context.Context,
	cmd DeliverOrderCommand,
) result.Result[*order.Order] {
	if err := cmd.Validate(); err != nil {
		return result.Failure[*order.Order](err.Error())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return result.Failure[*order.Order]("could not begin transaction: " + err.Error())
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders := uow.OrderRepository()

	found := orders.Find(ctx, cmd.OrderID())
	if !found.IsSuccess() {
		return result.PropagateFailure[*order.Order](found)
	}
	o, present := found.Value().Get()
	if !present {
		return result.Failure[*order.Order](
			fmt.Sprintf("order %d does not exist", cmd.OrderID()))
	}

	delivered := orders.Deliver(ctx, o, cmd.DeliveryTime())
	if !delivered.IsSuccess() {
		return delivered
	}

	// Re-read the deliveryman inside the transaction so the payout is
	// applied to the current balance, not the one captured at load time.
	deliveryman := delivered.Value().Deliveryman().MustGet()
	users := uow.UserRepository()

	dmRes := users.Find(ctx, deliveryman.Username())
	if !dmRes.IsSuccess() {
		return result.PropagateFailure[*order.Order](dmRes)
	}
	current, present := dmRes.Value().Get()
	if !present {
		return result.Failure[*order.Order](
			fmt.Sprintf("user %q does not exist", deliveryman.Username()))
	}

	newBalance := current.Credit().MustGet().Add(o.ShippingRate())
	credited := users.UpdateCredit(ctx, current, newBalance)
	if !credited.IsSuccess() {
		return result.PropagateFailure[*order.Order](credited)
	}

	if err := uow.Commit(ctx); err != nil {
		return result.Failure[*order.Order]("could not commit transaction: " + err.Error())
	}

	return delivered
}
