package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"barpos/internal/core/domain/model/kernel"
)

// ListMenuQueryHandler retrieves the menu from the database as categories
// with their products nested, using a single joined query.
type ListMenuQueryHandler struct {
	db *gorm.DB
}

// NewListMenuQueryHandler creates a handler for menu queries.
func NewListMenuQueryHandler(db *gorm.DB) ListMenuQueryHandler {
	return ListMenuQueryHandler{db: db}
}

// Handle executes the query, returning categories ordered by name with
// products ordered by name inside each. Empty categories are included.
func (h ListMenuQueryHandler) Handle(ctx context.Context, query ListMenuQuery) ([]CategoryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			c.id,
			c.name,
			p.id,
			p.name,
			p.price_cents
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		ORDER BY c.name, p.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]CategoryResponse, 0)
	indexByID := make(map[string]int)

	for rows.Next() {
		var (
			categoryID   uuid.UUID
			categoryName string
			productID    *uuid.UUID
			productName  *string
			priceCents   *int64
		)

		if err = rows.Scan(&categoryID, &categoryName, &productID, &productName, &priceCents); err != nil {
			return nil, err
		}

		cID, idErr := kernel.UUIDFromBytes(categoryID[:])
		if idErr != nil {
			return nil, idErr
		}

		idx, seen := indexByID[cID.String()]
		if !seen {
			categories = append(categories, CategoryResponse{
				ID:       cID,
				Name:     categoryName,
				Products: make([]ProductResponse, 0),
			})
			idx = len(categories) - 1
			indexByID[cID.String()] = idx
		}

		if productID == nil {
			continue
		}

		pID, idErr := kernel.UUIDFromBytes((*productID)[:])
		if idErr != nil {
			return nil, idErr
		}

		categories[idx].Products = append(categories[idx].Products, ProductResponse{
			ID:         pID,
			Name:       *productName,
			PriceCents: *priceCents,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}
