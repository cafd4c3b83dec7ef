package userrepo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ristorante/internal/core/domain/model/user"
	"ristorante/internal/pkg/optional"
	"ristorante/internal/pkg/result"
)

// defaultClientCredit is the welcome balance a new client starts with.
var defaultClientCredit = decimal.NewFromInt(20)

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Find retrieves the user with the given username, reconstructing the variant
// the stored role token discriminates. An absent row is Success wrapping an
// empty Optional.
func (r *GormUserRepository) Find(
	ctx context.Context, username string,
) result.Result[optional.Optional[user.User]] {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return result.Success(optional.None[user.User]())
		}
		slog.Error("user lookup failed", "username", username, "err", err)
		return result.Failure[optional.Optional[user.User]](
			fmt.Sprintf("could not read user %q", username))
	}

	u, err := toDomain(dto)
	if err != nil {
		slog.Error("user row cannot be reconstructed", "username", username, "err", err)
		return result.Failure[optional.Optional[user.User]](err.Error())
	}

	return result.Success(optional.Some(u))
}

// Insert registers a new account. The username is checked for collision
// first; an existing account is an expected failure. The starting credit
// depends on the role: clients receive the welcome balance, deliverymen
// start at zero, other roles carry none.
func (r *GormUserRepository) Insert(
	ctx context.Context,
	name, surname, username, password, phone, email, city, street, houseNumber string,
	role user.Role,
) result.Result[user.User] {
	existing := r.Find(ctx, username)
	if !existing.IsSuccess() {
		return result.PropagateFailure[user.User](existing)
	}
	if existing.Value().IsPresent() {
		return result.Failure[user.User](fmt.Sprintf("username %q already exists", username))
	}

	credit := optional.None[decimal.Decimal]()
	switch role {
	case user.Client:
		credit = optional.Some(defaultClientCredit)
	case user.Deliveryman:
		credit = optional.Some(decimal.Zero)
	}

	u, err := user.NewUser(
		name, surname, username, password, phone, email, city, street, houseNumber,
		role, credit,
	)
	if err != nil {
		return result.Failure[user.User](err.Error())
	}

	dto := fromDomain(u)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		slog.Error("user insert failed", "username", username, "err", err)
		return result.Failure[user.User](fmt.Sprintf("could not insert user %q", username))
	}

	return result.Success(u)
}

// UpdateCredit persists a new balance for a client or deliveryman and returns
// the updated snapshot. This is the only code path that changes a balance.
// A write affecting zero rows means the account is gone and is a failure.
func (r *GormUserRepository) UpdateCredit(
	ctx context.Context, u user.User, credit decimal.Decimal,
) result.Result[user.User] {
	if err := u.Validate(); err != nil {
		return result.Failure[user.User](err.Error())
	}

	// WithCredit panics for roles without a balance; do it before the write
	// so a contract breach cannot leave a stray row update behind.
	updated := u.WithCredit(credit)

	write := r.db.WithContext(ctx).
		Model(&UserDTO{}).
		Where("username = ?", u.Username()).
		Update("credit", credit)
	if write.Error != nil {
		slog.Error("credit update failed", "username", u.Username(), "err", write.Error)
		return result.Failure[user.User](
			fmt.Sprintf("could not update credit of user %q", u.Username()))
	}
	if write.RowsAffected == 0 {
		return result.Failure[user.User](fmt.Sprintf("user %q does not exist", u.Username()))
	}

	return result.Success(updated)
}
