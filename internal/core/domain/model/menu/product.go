package menu

import (
	"errors"
	"fmt"

	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product was not created
// through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

// Product is a single orderable menu entry belonging to a category.
// Price is stored in cents to avoid floating point drift.
type Product struct {
	id         kernel.UUID
	name       string
	priceCents int64
	categoryID kernel.UUID

	isConstructed bool
}

// NewProduct creates a validated product in the given category.
func NewProduct(id kernel.UUID, name string, priceCents int64, categoryID kernel.UUID) (*Product, error) {
	p := &Product{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPriceCents(priceCents),
		p.setCategoryID(categoryID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persisted state.
func RestoreProduct(id kernel.UUID, name string, priceCents int64, categoryID kernel.UUID) (*Product, error) {
	return NewProduct(id, name, priceCents, categoryID)
}

// Validate ensures the Product was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// PriceCents returns the product price in cents.
func (p *Product) PriceCents() int64 {
	return p.priceCents
}

// CategoryID returns the identifier of the category this product belongs to.
func (p *Product) CategoryID() kernel.UUID {
	return p.categoryID
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPriceCents(priceCents int64) error {
	if priceCents < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"priceCents",
			fmt.Errorf("%d is negative", priceCents),
		)
	}
	p.priceCents = priceCents
	return nil
}

func (p *Product) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}
	p.categoryID = categoryID
	return nil
}
