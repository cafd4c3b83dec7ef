package queries

import (
	"context"

	"ristorante/internal/core/domain/model/order"
	"ristorante/internal/core/ports"
	"ristorante/internal/pkg/optional"
	"ristorante/internal/pkg/result"
)

// GetOrderQueryHandler retrieves a single order through the repository read
// path, so the result carries the resolved restaurant, client, deliveryman
// and food lines.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
func NewGetOrderQueryHandler(orders ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle executes the lookup. An absent order is a successful Result wrapping
// an empty Optional, not a failure; the caller decides how absence maps to
// its own protocol.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) result.Result[optional.Optional[*order.Order]] {
	if err := query.Validate(); err != nil {
		return result.Failure[optional.Optional[*order.Order]](err.Error())
	}

	return h.orders.Find(ctx, query.OrderID())
}
