package commands

import (
	"context"
	"errors"

	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/pkg/guard"
)

var ErrRemoveProductCommandIsNotConstructed = errors.New(
	"RemoveProductCommand must be created via NewRemoveProductCommand constructor",
)

// RemoveProductCommand represents a request to delete a product from the
// menu.
type RemoveProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveProductCommand creates a command to delete a product.
func NewRemoveProductCommand(productID kernel.UUID) (RemoveProductCommand, error) {
	removeCommand := RemoveProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := removeCommand.setProductID(productID); err != nil {
		return RemoveProductCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveProductCommand) Validate() error {
	return c.guard.Validate(ErrRemoveProductCommandIsNotConstructed)
}

// ProductID returns the product to delete.
func (c RemoveProductCommand) ProductID() kernel.UUID { return c.productID }

func (c *RemoveProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

// RemoveProductCommandHandler deletes products from the menu.
type RemoveProductCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewRemoveProductCommandHandler creates a handler for product removal.
func NewRemoveProductCommandHandler(uowFactory MenuUoWFactory) RemoveProductCommandHandler {
	return RemoveProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the product.
func (h *RemoveProductCommandHandler) Handle(ctx context.Context, cmd RemoveProductCommand) error {
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

	if err := uow.MenuRepository().RemoveProduct(ctx, cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
