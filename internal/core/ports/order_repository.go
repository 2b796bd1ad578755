// Package ports defines the contracts between the application core and the
// infrastructure adapters: repositories, the unit of work, and the event
// publisher. These interfaces enable dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Remove deletes an order aggregate from storage.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Remove(ctx context.Context, id kernel.UUID) error

	// RemoveClosedBefore deletes delivered and cancelled orders created
	// before cutoff and returns how many were removed. Used by the
	// retention job.
	RemoveClosedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
