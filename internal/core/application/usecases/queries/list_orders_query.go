package queries

import (
	"errors"
	"time"

	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery retrieves every order, newest first. Backs the board
// screens that show the whole floor.
type ListOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a parameterless query for all orders.
func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// OrderItemResponse is a single line of an order in query responses.
type OrderItemResponse struct {
	Product  string `json:"product"`
	Quantity int    `json:"qty"`
}

// OrderResponse represents one order in query responses.
type OrderResponse struct {
	ID          kernel.UUID
	TableNumber int
	Items       []OrderItemResponse
	Status      string
	CreatedAt   time.Time
}
