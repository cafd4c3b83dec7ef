package commands

import (
	"context"

	"ristorante/internal/core/domain/model/user"
	"ristorante/internal/pkg/result"
)

// RegisterUserCommandHandler handles the business logic for account
// registration. The repository decides the starting credit from the role and
// rejects username collisions.
//
// Example:
//
//	handler := NewRegisterUserCommandHandler(uowFactory)
//	cmd, _ := NewRegisterUserCommand(
//	    "Luca", "Bianchi", "luca.bianchi", "hash", "3477654321",
//	    "luca.bianchi@example.com", "Pisa", "Via Garibaldi", "3", user.Deliveryman)
//
//	res := handler.Handle(ctx, cmd)
//	if res.IsSuccess() {
//	    fmt.Printf("registered %s", res.Value().Username())
//	}
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for account registration.
// Requires a UserUoWFactory for transactional persistence.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
// Returns a failed Result when the command is invalid, the username is
// already taken or the write fails; infrastructure details travel as the
// failure message.
func (h *RegisterUserCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterUserCommand,
) result.Result[user.User] {
	if err := cmd.Validate(); err != nil {
		return result.Failure[user.User](err.Error())
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return result.Failure[user.User]("could not begin transaction: " + err.Error())
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inserted := uow.UserRepository().Insert(ctx,
		cmd.Name(), cmd.Surname(), cmd.Username(), cmd.Password(), cmd.Phone(),
		cmd.Email(), cmd.City(), cmd.Street(), cmd.HouseNumber(), cmd.Role())
	if !inserted.IsSuccess() {
		return inserted
	}

	if err := uow.Commit(ctx); err != nil {
		return result.Failure[user.User]("could not commit transaction: " + err.Error())
	}

	return inserted
}
