package user

import (
	"fmt"
	"strings"

	"ristorante/internal/pkg/errs"
)

// Role discriminates the four kinds of account stored in the users table.
type Role int

const (
	// UnknownRole represents an invalid or undefined role.
	UnknownRole Role = iota

	// Admin administrates the platform.
	Admin

	// RestaurantOwner manages a restaurant and its menu.
	RestaurantOwner

	// Client places orders and pays from a credit balance.
	Client

	// Deliveryman accepts ready orders and is credited for deliveries.
	Deliveryman
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole:     "Unknown",
		Admin:           "Admin",
		RestaurantOwner: "RestaurantOwner",
		Client:          "Client",
		Deliveryman:     "Deliveryman",
	}
}

// getRoleTokens maps valid roles to the tokens the users.role column stores.
// The storage tokens are the domain language of the original schema.
func getRoleTokens() map[Role]string {
	//nolint:exhaustive // UnknownRole is intentionally excluded as it's invalid
	return map[Role]string{
		Admin:           "admin",
		RestaurantOwner: "ristorante",
		Client:          "cliente",
		Deliveryman:     "fattorino",
	}
}

// ParseRole converts a stored or user-supplied role token to a Role. Both the
// storage tokens and their English forms are accepted. An unrecognised token
// is an expected, recoverable condition.
func ParseRole(token string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "admin", "amministratore":
		return Admin, nil
	case "ristorante", "restaurant":
		return RestaurantOwner, nil
	case "cliente", "client":
		return Client, nil
	case "fattorino", "deliveryman":
		return Deliveryman, nil
	default:
		return UnknownRole, errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%q is not a valid role token", token),
		)
	}
}

// Validate checks that the Role is one of the four valid variants.
func (r Role) Validate() error {
	if _, ok := getRoleTokens()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// String implements fmt.Stringer. Safe on any Role value.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

// SQLToken returns the token persisted in the users.role column. Calling it
// on an invalid Role is a contract breach between components.
func (r Role) SQLToken() string {
	token, ok := getRoleTokens()[r]
	if !ok {
		panic(errs.NewInvariantViolationError("role", fmt.Sprintf("%d has no storage token", r)))
	}
	return token
}

// HasCredit reports whether accounts with this role carry a monetary balance.
// Credit is present iff the role is Client or Deliveryman.
func (r Role) HasCredit() bool {
	return r == Client || r == Deliveryman
}
