package ports

import (
	"context"

	"ristorante/internal/core/domain/model/food"
	"ristorante/internal/pkg/optional"
	"ristorante/internal/pkg/result"
)

// FoodRepository defines the read-only lookup contract for catalog foods.
type FoodRepository interface {
	// FindByID retrieves the food with the given id.
	// An absent row is Success wrapping an empty Optional.
	FindByID(ctx context.Context, id int) result.Result[optional.Optional[food.Food]]
}
