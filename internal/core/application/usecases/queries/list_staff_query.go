package queries

import (
	"errors"
	"time"

	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/pkg/guard"
)

var ErrListStaffQueryIsNotConstructed = errors.New(
	"ListStaffQuery must be created via NewListStaffQuery constructor",
)

// ListStaffQuery retrieves every staff account. Credential hashes never
// appear in the response.
type ListStaffQuery struct {
	guard guard.ConstructorGuard
}

// NewListStaffQuery creates a parameterless query for all staff accounts.
func NewListStaffQuery() ListStaffQuery {
	return ListStaffQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListStaffQuery) Validate() error {
	return q.guard.Validate(ErrListStaffQueryIsNotConstructed)
}

// StaffResponse represents one staff account in query responses.
type StaffResponse struct {
	ID        kernel.UUID
	Username  string
	Name      string
	Role      string
	CreatedAt time.Time
}
