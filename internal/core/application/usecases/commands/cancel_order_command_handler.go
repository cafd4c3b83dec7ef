package commands

import (
	"context"
	"fmt"

	"ristorante/internal/core/domain/model/order"
	"ristorante/internal/pkg/result"
)

// CancelOrderCommandHandler handles order cancellation.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
// Requires an OrderUoWFactory for transactional persistence.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancel command.
// Returns a failed Result when the command is invalid, the order does not
// exist, or the order already reached a terminal state.
func (h *CancelOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CancelOrderCommand,
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

	cancelled := orders.Cancel(ctx, o)
	if !cancelled.IsSuccess() {
		return cancelled
	}

	if err := uow.Commit(ctx); err != nil {
		return result.Failure[*order.Order]("could not commit transaction: " + err.Error())
	}

	return cancelled
}
