package commands

import (
	"context"
	"errors"

	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/pkg/guard"
)

var ErrRemoveStaffCommandIsNotConstructed = errors.New(
	"RemoveStaffCommand must be created via NewRemoveStaffCommand constructor",
)

// RemoveStaffCommand represents a request to delete a staff account.
type RemoveStaffCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveStaffCommand creates a command to delete a staff account.
func NewRemoveStaffCommand(userID kernel.UUID) (RemoveStaffCommand, error) {
	removeCommand := RemoveStaffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := removeCommand.setUserID(userID); err != nil {
		return RemoveStaffCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveStaffCommand) Validate() error {
	return c.guard.Validate(ErrRemoveStaffCommandIsNotConstructed)
}

// UserID returns the account to delete.
func (c RemoveStaffCommand) UserID() kernel.UUID { return c.userID }

func (c *RemoveStaffCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

// RemoveStaffCommandHandler deletes staff accounts.
type RemoveStaffCommandHandler struct {
	uowFactory StaffUoWFactory
}

// NewRemoveStaffCommandHandler creates a handler for account removal.
func NewRemoveStaffCommandHandler(uowFactory StaffUoWFactory) RemoveStaffCommandHandler {
	return RemoveStaffCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the account. Returns errs.ObjectNotFoundError when the
// account does not exist.
func (h *RemoveStaffCommandHandler) Handle(ctx context.Context, cmd RemoveStaffCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.StaffRepository().Remove(ctx, cmd.UserID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
