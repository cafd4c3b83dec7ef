package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"ristorante/internal/core/domain/model/user"
	"ristorante/internal/pkg/optional"
	"ristorante/internal/pkg/result"
)

// UserRepository defines the persistence contract for user accounts.
// All four roles share one logical table; the role column discriminates
// which variant a row reconstructs into.
type UserRepository interface {
	// Find retrieves the user with the given username.
	// An absent row is Success wrapping an empty Optional, not a failure.
	// A row whose valid role requires a credit balance that is missing is
	// corrupted data and panics with an InvariantViolationError.
	Find(ctx context.Context, username string) result.Result[optional.Optional[user.User]]

	// Insert registers a new account after checking for a username collision.
	// The starting credit depends on the role: clients receive the default
	// welcome balance, deliverymen start at zero, other roles carry none.
	Insert(
		ctx context.Context,
		name, surname, username, password, phone, email, city, street, houseNumber string,
		role user.Role,
	) result.Result[user.User]

	// UpdateCredit persists a new credit balance for a client or deliveryman
	// and returns the updated snapshot. It is the only path that changes a
	// balance; a write affecting zero rows is a failure.
	UpdateCredit(ctx context.Context, u user.User, credit decimal.Decimal) result.Result[user.User]
}
