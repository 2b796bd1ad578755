package commands

import (
	"context"
	"errors"

	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/core/domain/model/staff"
	"barpos/internal/pkg/guard"
)

var ErrChangeStaffRoleCommandIsNotConstructed = errors.New(
	"ChangeStaffRoleCommand must be created via NewChangeStaffRoleCommand constructor",
)

// ChangeStaffRoleCommand represents a request to change a staff account's
// role.
type ChangeStaffRoleCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	role   staff.Role

	guard guard.ConstructorGuard
}

// NewChangeStaffRoleCommand creates a command to change an account's role.
func NewChangeStaffRoleCommand(userID kernel.UUID, role staff.Role) (ChangeStaffRoleCommand, error) {
	roleCommand := ChangeStaffRoleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		roleCommand.setUserID(userID),
		roleCommand.setRole(role),
	); err != nil {
		return ChangeStaffRoleCommand{}, err
	}

	return roleCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeStaffRoleCommand) Validate() error {
	return c.guard.Validate(ErrChangeStaffRoleCommandIsNotConstructed)
}

// UserID returns the account to change.
func (c ChangeStaffRoleCommand) UserID() kernel.UUID { return c.userID }

// Role returns the new role.
func (c ChangeStaffRoleCommand) Role() staff.Role { return c.role }

func (c *ChangeStaffRoleCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *ChangeStaffRoleCommand) setRole(role staff.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}

// ChangeStaffRoleCommandHandler applies role changes to staff accounts.
type ChangeStaffRoleCommandHandler struct {
	uowFactory StaffUoWFactory
}

// NewChangeStaffRoleCommandHandler creates a handler for role changes.
func NewChangeStaffRoleCommandHandler(uowFactory StaffUoWFactory) ChangeStaffRoleCommandHandler {
	return ChangeStaffRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle changes the account's role and returns the updated user.
// Returns errs.ObjectNotFoundError when the account does not exist.
func (h *ChangeStaffRoleCommandHandler) Handle(ctx context.Context, cmd ChangeStaffRoleCommand) (*staff.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	staffRepo := uow.StaffRepository()
	user, err := staffRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	if err = user.ChangeRole(cmd.Role()); err != nil {
		return nil, err
	}

	if err = staffRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return user, nil
}
