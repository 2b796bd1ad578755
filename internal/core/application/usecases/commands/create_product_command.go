package commands

import (
	"context"
	"errors"

	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/core/domain/model/menu"
	"barpos/internal/pkg/guard"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrProductNameIsRequired = errors.New("product name is required")
	ErrPriceIsInvalid        = errors.New("price must not be negative")
)

// CreateProductCommand represents a request to add a product to the menu.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID  kernel.UUID
	name       string
	priceCents int64
	categoryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a product. Prices are
// whole cents to avoid float rounding.
func NewCreateProductCommand(
	productID kernel.UUID,
	name string,
	priceCents int64,
	categoryID kernel.UUID,
) (CreateProductCommand, error) {
	productCommand := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productCommand.setProductID(productID),
		productCommand.setName(name),
		productCommand.setPriceCents(priceCents),
		productCommand.setCategoryID(categoryID),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the identifier for the new product.
func (c CreateProductCommand) ProductID() kernel.UUID { return c.productID }

// Name returns the product name.
func (c CreateProductCommand) Name() string { return c.name }

// PriceCents returns the price in whole cents.
func (c CreateProductCommand) PriceCents() int64 { return c.priceCents }

// CategoryID returns the category the product belongs to.
func (c CreateProductCommand) CategoryID() kernel.UUID { return c.categoryID }

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}
	c.name = name
	return nil
}

func (c *CreateProductCommand) setPriceCents(priceCents int64) error {
	if priceCents < 0 {
		return ErrPriceIsInvalid
	}
	c.priceCents = priceCents
	return nil
}

func (c *CreateProductCommand) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}
	c.categoryID = categoryID
	return nil
}

// CreateProductCommandHandler adds products to the menu.
type CreateProductCommandHandler struct {
	uowFactory MenuUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product creation.
func NewCreateProductCommandHandler(uowFactory MenuUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle adds the product and returns it. A missing category surfaces as
// errs.ConflictError from the repository.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*menu.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	product, err := menu.NewProduct(cmd.ProductID(), cmd.Name(), cmd.PriceCents(), cmd.CategoryID())
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

	if err = uow.MenuRepository().AddProduct(ctx, product); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return product, nil
}
