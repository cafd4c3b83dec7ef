package restaurantrepo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"ristorante/internal/adapters/out/postgres/userrepo"
	"ristorante/internal/core/domain/model/restaurant"
	"ristorante/internal/core/domain/model/user"
	"ristorante/internal/pkg/errs"
	"ristorante/internal/pkg/optional"
	"ristorante/internal/pkg/result"
)

// GormRestaurantRepository implements ports.RestaurantRepository using GORM.
// Reconstruction resolves the owning user through the user repository bound
// to the same database handle.
type GormRestaurantRepository struct {
	db    *gorm.DB
	users *userrepo.GormUserRepository
}

// NewGormRestaurantRepository creates a new GORM restaurant repository.
func NewGormRestaurantRepository(db *gorm.DB) *GormRestaurantRepository {
	return &GormRestaurantRepository{
		db:    db,
		users: userrepo.NewGormUserRepository(db),
	}
}

// FindByName retrieves the restaurant with the given name.
// An absent row is Success wrapping an empty Optional.
func (r *GormRestaurantRepository) FindByName(
	ctx context.Context, name string,
) result.Result[optional.Optional[restaurant.Restaurant]] {
	return r.find(ctx, "name = ?", name)
}

// FindByUsername retrieves the restaurant owned by the given user.
// An absent row is Success wrapping an empty Optional.
func (r *GormRestaurantRepository) FindByUsername(
	ctx context.Context, username string,
) result.Result[optional.Optional[restaurant.Restaurant]] {
	return r.find(ctx, "username = ?", username)
}

func (r *GormRestaurantRepository) find(
	ctx context.Context, query string, arg string,
) result.Result[optional.Optional[restaurant.Restaurant]] {
	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, query, arg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return result.Success(optional.None[restaurant.Restaurant]())
		}
		slog.Error("restaurant lookup failed", "query", query, "arg", arg, "err", err)
		return result.Failure[optional.Optional[restaurant.Restaurant]](
			fmt.Sprintf("could not read restaurant %q", arg))
	}

	return r.toDomain(ctx, dto)
}

// toDomain resolves the owner and builds the domain entity. A restaurant row
// whose owner username has no matching user proves referential corruption
// and panics; an owner lookup that fails for an ordinary reason propagates
// the failure verbatim.
func (r *GormRestaurantRepository) toDomain(
	ctx context.Context, dto RestaurantDTO,
) result.Result[optional.Optional[restaurant.Restaurant]] {
	ownerRes := r.users.Find(ctx, dto.Username)
	if !ownerRes.IsSuccess() {
		return result.PropagateFailure[optional.Optional[restaurant.Restaurant]](ownerRes)
	}

	owner, ok := ownerRes.Value().Get()
	if !ok {
		panic(errs.NewInvariantViolationError(
			"restaurant",
			fmt.Sprintf("restaurant %q references missing user %q", dto.Name, dto.Username),
		))
	}
	if owner.Role() != user.RestaurantOwner {
		panic(errs.NewInvariantViolationError(
			"restaurant",
			fmt.Sprintf("restaurant %q is owned by %q whose role is %s",
				dto.Name, owner.Username(), owner.Role()),
		))
	}

	rest, err := toDomain(dto, owner)
	if err != nil {
		slog.Error("restaurant row cannot be reconstructed", "name", dto.Name, "err", err)
		return result.Failure[optional.Optional[restaurant.Restaurant]](err.Error())
	}

	return result.Success(optional.Some(rest))
}
