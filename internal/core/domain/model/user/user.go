// Package user models the role-tagged account hierarchy stored in the users
// table. A single User value covers all four roles; the role field is the
// discriminant, and the credit balance exists only for the roles that own
// one. Users are immutable snapshots: the repository produces a fresh value
// through WithCredit when a balance changes.
package user

import (
	"errors"
	"fmt"

	"ristorante/internal/pkg/errs"
	"ristorante/internal/pkg/guard"
	"ristorante/internal/pkg/optional"

	"github.com/shopspring/decimal"
)

// ErrUserIsNotConstructed is returned when a User was not created through
// the NewUser constructor.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is one account row, reconstructed as the variant its role dictates.
//
// Invariants:
//   - username is never empty; it is the identity (equality is username-based)
//   - credit is present iff the role is Client or Deliveryman
//   - the credit balance changes only through the user repository, which is
//     the sole caller of WithCredit
type User struct {
	name        string
	surname     string
	username    string
	password    string
	phone       string
	email       string
	city        string
	street      string
	houseNumber string
	role        Role
	credit      optional.Optional[decimal.Decimal]

	guard guard.ConstructorGuard
}

// NewUser builds a User, validating the identity fields and the role.
//
// The role/credit combination is checked last: a valid role whose credit
// shape is impossible (a client without a balance, an admin with one) does
// not come from user input, it proves corrupted persisted data or a broken
// caller, so it panics rather than returning an ordinary error.
func NewUser(
	name, surname, username, password, phone, email, city, street, houseNumber string,
	role Role,
	credit optional.Optional[decimal.Decimal],
) (User, error) {
	u := User{
		name:        name,
		surname:     surname,
		password:    password,
		phone:       phone,
		email:       email,
		city:        city,
		street:      street,
		houseNumber: houseNumber,
		credit:      credit,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setUsername(username),
		u.setRole(role),
	); err != nil {
		return User{}, err
	}

	if role.HasCredit() && !credit.IsPresent() {
		panic(errs.NewInvariantViolationError(
			"user",
			fmt.Sprintf("role %s requires a credit balance but none is present (username %q)", role, username),
		))
	}
	if !role.HasCredit() && credit.IsPresent() {
		panic(errs.NewInvariantViolationError(
			"user",
			fmt.Sprintf("role %s must not carry a credit balance (username %q)", role, username),
		))
	}

	return u, nil
}

// Validate ensures the User was created through NewUser.
func (u User) Validate() error {
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// IsEqual compares two users by username.
func (u User) IsEqual(other User) bool {
	return u.username == other.username
}

// Name returns the first name.
func (u User) Name() string { return u.name }

// Surname returns the last name.
func (u User) Surname() string { return u.surname }

// Username returns the account identity.
func (u User) Username() string { return u.username }

// Password returns the stored password hash. Hashing is the caller's
// concern; this core never sees a cleartext password.
func (u User) Password() string { return u.password }

// Phone returns the phone number.
func (u User) Phone() string { return u.phone }

// Email returns the email address.
func (u User) Email() string { return u.email }

// City returns the address city.
func (u User) City() string { return u.city }

// Street returns the address street.
func (u User) Street() string { return u.street }

// HouseNumber returns the address house number.
func (u User) HouseNumber() string { return u.houseNumber }

// Role returns the account's role discriminant.
func (u User) Role() Role { return u.role }

// Credit returns the monetary balance. Present iff the role owns one.
func (u User) Credit() optional.Optional[decimal.Decimal] { return u.credit }

// WithCredit returns a copy of the user carrying the new balance. It is the
// only way a balance changes, and the user repository is its only caller:
// mutating the balance of a role that owns none is a contract breach, so it
// panics instead of failing softly.
func (u User) WithCredit(credit decimal.Decimal) User {
	if !u.role.HasCredit() {
		panic(errs.NewInvariantViolationError(
			"user",
			fmt.Sprintf("credit update on role %s (username %q)", u.role, u.username),
		))
	}
	updated := u
	updated.credit = optional.Some(credit)
	return updated
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = username
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
