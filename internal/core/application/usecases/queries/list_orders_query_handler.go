package queries

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/core/domain/model/order"
)

// ListOrdersQueryHandler retrieves all orders from the database,
// most recently created first.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for whole-floor order queries.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the query and returns every order ordered by creation
// time descending.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
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
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderRows(rows)
}

// orderRowScanner abstracts *sql.Rows so the scan loop is shared between
// the order query handlers.
type orderRowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanOrderRows(rows orderRowScanner) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	for rows.Next() {
		var (
			id          uuid.UUID
			tableNumber int
			items       []byte
			status      int
			createdAt   time.Time
		)

		if err := rows.Scan(&id, &tableNumber, &items, &status, &createdAt); err != nil {
			return nil, err
		}

		orderID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		var itemResponses []OrderItemResponse
		if err = json.Unmarshal(items, &itemResponses); err != nil {
			return nil, err
		}

		orders = append(orders, OrderResponse{
			ID:          orderID,
			TableNumber: tableNumber,
			Items:       itemResponses,
			Status:      order.Status(status).String(),
			CreatedAt:   createdAt,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
