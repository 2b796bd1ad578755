package ports

import (
	"context"

	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/core/domain/model/staff"
)

// StaffRepository defines the persistence contract for staff accounts.
type StaffRepository interface {
	// Add persists a new staff account. Usernames are unique; adding a
	// duplicate returns errs.ConflictError.
	Add(ctx context.Context, user *staff.User) error

	// Update persists changes to an existing staff account.
	Update(ctx context.Context, user *staff.User) error

	// Get retrieves a staff account by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*staff.User, error)

	// GetByUsername retrieves a staff account by its login name.
	// Returns errs.ObjectNotFoundError when no such account exists.
	GetByUsername(ctx context.Context, username string) (*staff.User, error)

	// Remove deletes a staff account from storage.
	Remove(ctx context.Context, id kernel.UUID) error
}
