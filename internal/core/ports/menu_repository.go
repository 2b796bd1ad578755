package ports

import (
	"context"

	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for menu categories and
// products. Products reference categories; removing a category that still
// has products returns errs.ConflictError.
type MenuRepository interface {
	// AddCategory persists a new category. Category names are unique.
	AddCategory(ctx context.Context, category *menu.Category) error

	// GetCategory retrieves a category by its unique identifier.
	GetCategory(ctx context.Context, id kernel.UUID) (*menu.Category, error)

	// RemoveCategory deletes a category from storage.
	RemoveCategory(ctx context.Context, id kernel.UUID) error

	// AddProduct persists a new product. The referenced category must
	// exist.
	AddProduct(ctx context.Context, product *menu.Product) error

	// GetProduct retrieves a product by its unique identifier.
	GetProduct(ctx context.Context, id kernel.UUID) (*menu.Product, error)

	// RemoveProduct deletes a product from storage.
	RemoveProduct(ctx context.Context, id kernel.UUID) error
}
