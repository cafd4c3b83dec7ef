package queries

import (
	"context"

	"ristorante/internal/core/domain/model/user"
	"ristorante/internal/core/ports"
	"ristorante/internal/pkg/optional"
	"ristorante/internal/pkg/result"
)

// GetUserQueryHandler retrieves a single account through the repository.
type GetUserQueryHandler struct {
	users ports.UserRepository
}

// NewGetUserQueryHandler creates a handler for account lookups.
func NewGetUserQueryHandler(users ports.UserRepository) GetUserQueryHandler {
	return GetUserQueryHandler{users: users}
}

// Handle executes the lookup. An absent account is a successful Result
// wrapping an empty Optional.
func (h GetUserQueryHandler) Handle(
	ctx context.Context,
	query GetUserQuery,
) result.Result[optional.Optional[user.User]] {
	if err := query.Validate(); err != nil {
		return result.Failure[optional.Optional[user.User]](err.Error())
	}

	return h.users.Find(ctx, query.Username())
}
