package queries

import (
	"context"

	"ristorante/internal/core/domain/model/order"
	"ristorante/internal/core/ports"
	"ristorante/internal/pkg/result"
)

// ListOrdersByStateQueryHandler retrieves every order in one lifecycle state
// through the repository read path.
type ListOrdersByStateQueryHandler struct {
	orders ports.OrderRepository
}

// NewListOrdersByStateQueryHandler creates a handler for state-filtered
// order listings.
func NewListOrdersByStateQueryHandler(orders ports.OrderRepository) ListOrdersByStateQueryHandler {
	return ListOrdersByStateQueryHandler{orders: orders}
}

// Handle executes the listing. No matching orders is a successful Result
// wrapping an empty slice.
func (h ListOrdersByStateQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersByStateQuery,
) result.Result[[]*order.Order] {
	if err := query.Validate(); err != nil {
		return result.Failure[[]*order.Order](err.Error())
	}

	return h.orders.ListByState(ctx, query.Status())
}
