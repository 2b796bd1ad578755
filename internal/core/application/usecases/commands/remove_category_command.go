package commands

import (
	"context"
	"errors"

	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/pkg/guard"
)

var ErrRemoveCategoryCommandIsNotConstructed = errors.New(
	"RemoveCategoryCommand must be created via NewRemoveCategoryCommand constructor",
)

// RemoveCategoryCommand represents a request to delete a menu category.
type RemoveCategoryCommand struct { //nolint:recvcheck //using for validation
	categoryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveCategoryCommand creates a command to delete a menu category.
func NewRemoveCategoryCommand(categoryID kernel.UUID) (RemoveCategoryCommand, error) {
	removeCommand := RemoveCategoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := removeCommand.setCategoryID(categoryID); err != nil {
		return RemoveCategoryCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCategoryCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCategoryCommandIsNotConstructed)
}

// CategoryID returns the category to delete.
func (c RemoveCategoryCommand) CategoryID() kernel.UUID { return c.categoryID }

func (c *RemoveCategoryCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}
	c.categoryID = categoryID
	return nil
}

// RemoveCategoryCommandHandler deletes menu categories. A category that
// still has products cannot be deleted; the repository reports that as
// errs.ConflictError.
type RemoveCategoryCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewRemoveCategoryCommandHandler creates a handler for category removal.
func NewRemoveCategoryCommandHandler(uowFactory MenuUoWFactory) RemoveCategoryCommandHandler {
	return RemoveCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the category.
func (h *RemoveCategoryCommandHandler) Handle(ctx context.Context, cmd RemoveCategoryCommand) error {
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

	if err := uow.MenuRepository().RemoveCategory(ctx, cmd.CategoryID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
