package ports

import (
	"context"

	"ristorante/internal/core/domain/model/restaurant"
	"ristorante/internal/pkg/optional"
	"ristorante/internal/pkg/result"
)

// RestaurantRepository defines the read-only lookup contract for restaurants.
// The catalog is managed elsewhere; this core only needs to resolve the
// restaurant a food or an order references.
type RestaurantRepository interface {
	// FindByName retrieves the restaurant with the given name.
	// An absent row is Success wrapping an empty Optional.
	FindByName(ctx context.Context, name string) result.Result[optional.Optional[restaurant.Restaurant]]

	// FindByUsername retrieves the restaurant owned by the given user.
	// An absent row is Success wrapping an empty Optional.
	FindByUsername(ctx context.Context, username string) result.Result[optional.Optional[restaurant.Restaurant]]
}
