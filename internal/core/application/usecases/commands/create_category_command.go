package commands

import (
	"context"
	"errors"

	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/core/domain/model/menu"
	"barpos/internal/pkg/guard"
)

var (
	ErrCreateCategoryCommandIsNotConstructed = errors.New(
		"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
	)
	ErrCategoryNameIsRequired = errors.New("category name is required")
)

// CreateCategoryCommand represents a request to add a menu category.
type CreateCategoryCommand struct { //nolint:recvcheck //using for validation
	categoryID kernel.UUID
	name       string

	guard guard.ConstructorGuard
}

// NewCreateCategoryCommand creates a command to add a menu category.
func NewCreateCategoryCommand(categoryID kernel.UUID, name string) (CreateCategoryCommand, error) {
	categoryCommand := CreateCategoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		categoryCommand.setCategoryID(categoryID),
		categoryCommand.setName(name),
	); err != nil {
		return CreateCategoryCommand{}, err
	}

	return categoryCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

// CategoryID returns the identifier for the new category.
func (c CreateCategoryCommand) CategoryID() kernel.UUID { return c.categoryID }

// Name returns the category name.
func (c CreateCategoryCommand) Name() string { return c.name }

func (c *CreateCategoryCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}
	c.categoryID = categoryID
	return nil
}

func (c *CreateCategoryCommand) setName(name string) error {
	if name == "" {
		return ErrCategoryNameIsRequired
	}
	c.name = name
	return nil
}

// CreateCategoryCommandHandler adds menu categories.
type CreateCategoryCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewCreateCategoryCommandHandler creates a handler for category creation.
func NewCreateCategoryCommandHandler(uowFactory MenuUoWFactory) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle adds the category and returns it. A duplicate name surfaces as
// errs.ConflictError from the repository.
func (h *CreateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) (*menu.Category, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	category, err := menu.NewCategory(cmd.CategoryID(), cmd.Name())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.MenuRepository().AddCategory(ctx, category); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return category, nil
}
