package user_test

import (
	"testing"

	"ristorante/internal/core/domain/model/user"
	"ristorante/internal/pkg/optional"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, username string, credit decimal.Decimal) user.User {
	t.Helper()
	u, err := user.NewUser(
		"Mario", "Rossi", username, "hashed-pw", "3331234567",
		"mario@example.it", "Bologna", "Via Indipendenza", "12",
		user.Client, optional.Some(credit),
	)
	require.NoError(t, err)
	return u
}

func TestNewUser(t *testing.T) {
	t.Run("creates a client with a balance", func(t *testing.T) {
		u := newTestClient(t, "mario.rossi", decimal.NewFromInt(20))

		require.NoError(t, u.Validate())
		assert.Equal(t, "mario.rossi", u.Username())
		assert.Equal(t, user.Client, u.Role())
		credit, ok := u.Credit().Get()
		require.True(t, ok)
		assert.True(t, credit.Equal(decimal.NewFromInt(20)))
	})

	t.Run("creates an admin without a balance", func(t *testing.T) {
		u, err := user.NewUser(
			"Anna", "Bianchi", "anna.b", "hash", "333", "anna@example.it",
			"Milano", "Via Torino", "3",
			user.Admin, optional.None[decimal.Decimal](),
		)

		require.NoError(t, err)
		assert.False(t, u.Credit().IsPresent())
	})

	t.Run("fails with empty username", func(t *testing.T) {
		_, err := user.NewUser(
			"Mario", "Rossi", "", "hash", "333", "m@example.it",
			"Bologna", "Via Indipendenza", "12",
			user.Client, optional.Some(decimal.Zero),
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "username")
	})

	t.Run("fails with invalid role", func(t *testing.T) {
		_, err := user.NewUser(
			"Mario", "Rossi", "mario", "hash", "333", "m@example.it",
			"Bologna", "Via Indipendenza", "12",
			user.UnknownRole, optional.None[decimal.Decimal](),
		)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "role")
	})

	t.Run("client without credit is an invariant violation", func(t *testing.T) {
		assert.Panics(t, func() {
			_, _ = user.NewUser(
				"Mario", "Rossi", "mario", "hash", "333", "m@example.it",
				"Bologna", "Via Indipendenza", "12",
				user.Client, optional.None[decimal.Decimal](),
			)
		})
	})

	t.Run("admin with credit is an invariant violation", func(t *testing.T) {
		assert.Panics(t, func() {
			_, _ = user.NewUser(
				"Anna", "Bianchi", "anna", "hash", "333", "a@example.it",
				"Milano", "Via Torino", "3",
				user.Admin, optional.Some(decimal.NewFromInt(5)),
			)
		})
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var u user.User
		require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
	})
}

func TestUser_WithCredit(t *testing.T) {
	t.Run("returns a fresh snapshot, original untouched", func(t *testing.T) {
		u := newTestClient(t, "mario.rossi", decimal.NewFromInt(20))

		updated := u.WithCredit(decimal.NewFromInt(35))

		original, _ := u.Credit().Get()
		changed, _ := updated.Credit().Get()
		assert.True(t, original.Equal(decimal.NewFromInt(20)))
		assert.True(t, changed.Equal(decimal.NewFromInt(35)))
		assert.True(t, u.IsEqual(updated))
	})

	t.Run("panics for roles without a balance", func(t *testing.T) {
		u, err := user.NewUser(
			"Anna", "Bianchi", "anna.b", "hash", "333", "anna@example.it",
			"Milano", "Via Torino", "3",
			user.RestaurantOwner, optional.None[decimal.Decimal](),
		)
		require.NoError(t, err)

		assert.Panics(t, func() { _ = u.WithCredit(decimal.NewFromInt(1)) })
	})
}

func TestUser_IsEqual(t *testing.T) {
	a := newTestClient(t, "same.user", decimal.NewFromInt(10))
	b := newTestClient(t, "same.user", decimal.NewFromInt(99))
	c := newTestClient(t, "other.user", decimal.NewFromInt(10))

	assert.True(t, a.IsEqual(b), "equality is username-based regardless of balance")
	assert.False(t, a.IsEqual(c))
}
