package commands

import (
	"context"
	"fmt"

	"ristorante/internal/core/domain/model/order"
	"ristorante/internal/pkg/result"
)

// MarkOrderReadyCommandHandler handles the transition of an order from
// waiting to ready. The conditional write in the repository guarantees that
// an order moved on by a concurrent writer is reported as a failure rather
// than silently overwritten.
type MarkOrderReadyCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrderReadyCommandHandler creates a handler for the ready transition.
// Requires an OrderUoWFactory for transactional persistence.
func NewMarkOrderReadyCommandHandler(uowFactory OrderUoWFactory) MarkOrderReadyCommandHandler {
	return MarkOrderReadyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the mark ready command.
// Returns a failed Result when the command is invalid, the order does not
// exist, or the order is not in a state that can become ready.
func (h *MarkOrderReadyCommandHandler) Handle(
	ctx context.Context,
	cmd MarkOrderReadyCommand,
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

	ready := orders.MarkReady(ctx, o)
	if !ready.IsSuccess() {
		return ready
	}

	if err := uow.Commit(ctx); err != nil {
		return result.Failure[*order.Order]("could not commit transaction: " + err.Error())
	}

	return ready
}
