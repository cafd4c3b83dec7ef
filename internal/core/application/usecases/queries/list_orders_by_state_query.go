package queries

import (
	"errors"

	"ristorante/internal/core/domain/model/order"
	"ristorante/internal/pkg/guard"
)

var ErrListOrdersByStateQueryIsNotConstructed = errors.New(
	"ListOrdersByStateQuery must be created via NewListOrdersByStateQuery constructor",
)

// ListOrdersByStateQuery retrieves every order currently in one lifecycle
// state. Deliverymen poll the ready state with it to find work.
//
// Example:
//
//	query, err := NewListOrdersByStateQuery(order.Ready)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewListOrdersByStateQueryHandler(orderRepo)
//	res := handler.Handle(ctx, query)
type ListOrdersByStateQuery struct { //nolint:recvcheck //using for validation
	status order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersByStateQuery creates a query for orders in the given state.
// Validates that the state is one of the known lifecycle states.
func NewListOrdersByStateQuery(status order.Status) (ListOrdersByStateQuery, error) {
	q := ListOrdersByStateQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setStatus(status); err != nil {
		return ListOrdersByStateQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersByStateQueryIsNotConstructed if validation fails.
func (q ListOrdersByStateQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersByStateQueryIsNotConstructed)
}

// Status returns the lifecycle state the query filters on.
func (q ListOrdersByStateQuery) Status() order.Status { return q.status }

func (q *ListOrdersByStateQuery) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	q.status = status
	return nil
}
