package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListTableOrdersQueryHandler retrieves one table's orders from the
// database, most recently created first.
type ListTableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListTableOrdersQueryHandler creates a handler for per-table queries.
func NewListTableOrdersQueryHandler(db *gorm.DB) ListTableOrdersQueryHandler {
	return ListTableOrdersQueryHandler{db: db}
}

// Handle executes the query. An existing table with no orders yields an
// empty slice, not an error.
func (h ListTableOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListTableOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			table_number,
			items,
			status,
			created_at
		FROM orders
		WHERE table_number = ?
		ORDER BY created_at DESC
	`, query.TableNumber().Value()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}
