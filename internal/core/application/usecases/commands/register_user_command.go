package commands

import (
	"errors"

	"ristorante/internal/core/domain/model/user"
	"ristorante/internal/pkg/errs"
	"ristorante/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a request to register a new account.
// Carries the full personal record plus the role the account signs up as;
// the starting credit is decided by the persistence layer from the role.
//
// Example:
//
//	cmd, err := NewRegisterUserCommand(
//	    "Mario", "Rossi", "mario.rossi", "hash", "3331234567",
//	    "mario.rossi@example.com", "Pisa", "Via Roma", "12", user.Client)
//	if err != nil {
//	    return fmt.Errorf("invalid registration data: %w", err)
//	}
//
//	handler := NewRegisterUserCommandHandler(uowFactory)
//	res := handler.Handle(ctx, cmd)
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	name        string
	surname     string
	username    string
	password    string
	phone       string
	email       string
	city        string
	street      string
	houseNumber string
	role        user.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new account.
// Validates that the identifying fields are present and the role is one of
// the known role values. Returns an error if any validation fails.
func NewRegisterUserCommand(
	name, surname, username, password, phone, email, city, street, houseNumber string,
	role user.Role,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		phone:       phone,
		email:       email,
		city:        city,
		street:      street,
		houseNumber: houseNumber,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setSurname(surname),
		cmd.setUsername(username),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterUserCommandIsNotConstructed if validation fails.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Name returns the first name of the account holder.
func (c RegisterUserCommand) Name() string { return c.name }

// Surname returns the family name of the account holder.
func (c RegisterUserCommand) Surname() string { return c.surname }

// Username returns the unique account identifier.
func (c RegisterUserCommand) Username() string { return c.username }

// Password returns the stored password value.
func (c RegisterUserCommand) Password() string { return c.password }

// Phone returns the contact phone number.
func (c RegisterUserCommand) Phone() string { return c.phone }

// Email returns the contact email address.
func (c RegisterUserCommand) Email() string { return c.email }

// City returns the address city.
func (c RegisterUserCommand) City() string { return c.city }

// Street returns the address street.
func (c RegisterUserCommand) Street() string { return c.street }

// HouseNumber returns the address house number.
func (c RegisterUserCommand) HouseNumber() string { return c.houseNumber }

// Role returns the role the account registers as.
func (c RegisterUserCommand) Role() user.Role { return c.role }

func (c *RegisterUserCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterUserCommand) setSurname(surname string) error {
	if surname == "" {
		return errs.NewValueIsRequiredError("surname")
	}
	c.surname = surname
	return nil
}

func (c *RegisterUserCommand) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	c.username = username
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
