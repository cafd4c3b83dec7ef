package user_test

import (
	"testing"

	"ristorante/internal/core/domain/model/user"
	"ristorante/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		token string
		want  user.Role
	}{
		{"admin", user.Admin},
		{"amministratore", user.Admin},
		{"ristorante", user.RestaurantOwner},
		{"restaurant", user.RestaurantOwner},
		{"cliente", user.Client},
		{"client", user.Client},
		{"fattorino", user.Deliveryman},
		{"deliveryman", user.Deliveryman},
		{"  Cliente  ", user.Client},
		{"FATTORINO", user.Deliveryman},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := user.ParseRole(tt.token)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("invalid token is a recoverable error", func(t *testing.T) {
		got, err := user.ParseRole("capitano")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, user.UnknownRole, got)
	})
}

func TestRole_SQLToken(t *testing.T) {
	t.Run("valid roles map to storage tokens", func(t *testing.T) {
		assert.Equal(t, "admin", user.Admin.SQLToken())
		assert.Equal(t, "ristorante", user.RestaurantOwner.SQLToken())
		assert.Equal(t, "cliente", user.Client.SQLToken())
		assert.Equal(t, "fattorino", user.Deliveryman.SQLToken())
	})

	t.Run("unknown role panics", func(t *testing.T) {
		assert.Panics(t, func() { _ = user.UnknownRole.SQLToken() })
	})
}

func TestRole_Validate(t *testing.T) {
	for _, r := range []user.Role{user.Admin, user.RestaurantOwner, user.Client, user.Deliveryman} {
		require.NoError(t, r.Validate())
	}
	require.Error(t, user.UnknownRole.Validate())
	require.Error(t, user.Role(42).Validate())
}

func TestRole_HasCredit(t *testing.T) {
	assert.True(t, user.Client.HasCredit())
	assert.True(t, user.Deliveryman.HasCredit())
	assert.False(t, user.Admin.HasCredit())
	assert.False(t, user.RestaurantOwner.HasCredit())
}
