package commands

import (
	"context"
	"fmt"

	"ristorante/internal/core/domain/model/order"
	"ristorante/internal/pkg/result"
)

// AcceptOrderCommandHandler handles a deliveryman accepting a ready order.
// The repository performs the state change as a conditional write keyed on
// the ready state, so of two concurrent accepts exactly one wins.
type AcceptOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewAcceptOrderCommandHandler creates a handler for the accept transition.
// Requires a UoWFactory because the deliveryman lookup and the order write
// share one transaction.
func NewAcceptOrderCommandHandler(uowFactory UoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the accept command.
// Returns a failed Result when the command is invalid, the order or the
// deliveryman does not exist, the user is not a deliveryman, or another
// deliveryman already accepted the order.
func (h *AcceptOrderCommandHandler) Handle(
	ctx context.Context,
	cmd AcceptOrderCommand,
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

	dmRes := uow.UserRepository().Find(ctx, cmd.DeliverymanUsername())
	if !dmRes.IsSuccess() {
		return result.PropagateFailure[*order.Order](dmRes)
	}
	deliveryman, present := dmRes.Value().Get()
	if !present {
		return result.Failure[*order.Order](
			fmt.Sprintf("user %q does not exist", cmd.DeliverymanUsername()))
	}

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

	accepted := orders.Accept(ctx, o, cmd.AcceptanceTime(), deliveryman)
	if !accepted.IsSuccess() {
		return accepted
	}

	if err := uow.Commit(ctx); err != nil {
		return result.Failure[*order.Order]("could not commit transaction: " + err.Error())
	}

	return accepted
}
