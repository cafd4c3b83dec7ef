package queries

import (
	"errors"

	"ristorante/internal/pkg/errs"
	"ristorante/internal/pkg/guard"
)

var ErrGetUserQueryIsNotConstructed = errors.New(
	"GetUserQuery must be created via NewGetUserQuery constructor",
)

// GetUserQuery retrieves a single account by username.
type GetUserQuery struct { //nolint:recvcheck //using for validation
	username string

	guard guard.ConstructorGuard
}

// NewGetUserQuery creates a query for a single account.
// Validates that the username is present.
func NewGetUserQuery(username string) (GetUserQuery, error) {
	q := GetUserQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := q.setUsername(username); err != nil {
		return GetUserQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUserQueryIsNotConstructed if validation fails.
func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

// Username returns the username the query looks up.
func (q GetUserQuery) Username() string { return q.username }

func (q *GetUserQuery) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	q.username = username
	return nil
}
