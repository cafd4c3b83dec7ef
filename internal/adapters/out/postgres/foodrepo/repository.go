package foodrepo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"ristorante/internal/core/domain/model/food"
	"ristorante/internal/pkg/optional"
	"ristorante/internal/pkg/result"
)

// GormFoodRepository implements ports.FoodRepository using GORM.
type GormFoodRepository struct {
	db *gorm.DB
}

// NewGormFoodRepository creates a new GORM food repository.
func NewGormFoodRepository(db *gorm.DB) *GormFoodRepository {
	return &GormFoodRepository{db: db}
}

// FindByID retrieves the food with the given id.
// An absent row is Success wrapping an empty Optional.
func (r *GormFoodRepository) FindByID(
	ctx context.Context, id int,
) result.Result[optional.Optional[food.Food]] {
	var dto FoodDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return result.Success(optional.None[food.Food]())
		}
		slog.Error("food lookup failed", "id", id, "err", err)
		return result.Failure[optional.Optional[food.Food]](
			fmt.Sprintf("could not read food %d", id))
	}

	f, err := toDomain(dto)
	if err != nil {
		slog.Error("food row cannot be reconstructed", "id", id, "err", err)
		return result.Failure[optional.Optional[food.Food]](err.Error())
	}

	return result.Success(optional.Some(f))
}
