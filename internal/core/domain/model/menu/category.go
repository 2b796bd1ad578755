package menu

import (
	"errors"

	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/pkg/errs"
)

// ErrCategoryIsNotConstructed is returned when a Category was not created
// through NewCategory or RestoreCategory.
var ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory or RestoreCategory")

// Category groups menu products ("beers", "starters"). Category names are
// unique; uniqueness is enforced by the store.
type Category struct {
	id   kernel.UUID
	name string

	isConstructed bool
}

// NewCategory creates a validated menu category.
func NewCategory(id kernel.UUID, name string) (*Category, error) {
	c := &Category{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCategory reconstructs a Category from persisted state.
func RestoreCategory(id kernel.UUID, name string) (*Category, error) {
	return NewCategory(id, name)
}

// Validate ensures the Category was properly constructed.
func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

// ID returns the category's unique identifier.
func (c *Category) ID() kernel.UUID {
	return c.id
}

// Name returns the category name.
func (c *Category) Name() string {
	return c.name
}

// Rename changes the category name.
func (c *Category) Rename(name string) error {
	return c.setName(name)
}

func (c *Category) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Category) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
