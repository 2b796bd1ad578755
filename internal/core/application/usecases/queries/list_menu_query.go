package queries

import (
	"errors"

	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/pkg/guard"
)

var ErrListMenuQueryIsNotConstructed = errors.New(
	"ListMenuQuery must be created via NewListMenuQuery constructor",
)

// ListMenuQuery retrieves the full menu: every category with its products.
type ListMenuQuery struct {
	guard guard.ConstructorGuard
}

// NewListMenuQuery creates a parameterless query for the whole menu.
func NewListMenuQuery() ListMenuQuery {
	return ListMenuQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListMenuQuery) Validate() error {
	return q.guard.Validate(ErrListMenuQueryIsNotConstructed)
}

// ProductResponse represents one product in menu responses.
type ProductResponse struct {
	ID         kernel.UUID
	Name       string
	PriceCents int64
}

// CategoryResponse represents one category with its products.
type CategoryResponse struct {
	ID       kernel.UUID
	Name     string
	Products []ProductResponse
}
