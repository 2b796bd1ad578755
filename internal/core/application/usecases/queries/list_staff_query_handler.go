package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/core/domain/model/staff"
)

// ListStaffQueryHandler retrieves all staff accounts from the database.
// The credential hash column is deliberately not selected.
type ListStaffQueryHandler struct {
	db *gorm.DB
}

// NewListStaffQueryHandler creates a handler for staff listing.
func NewListStaffQueryHandler(db *gorm.DB) ListStaffQueryHandler {
	return ListStaffQueryHandler{db: db}
}

// Handle executes the query, returning accounts ordered by username.
func (h ListStaffQueryHandler) Handle(ctx context.Context, query ListStaffQuery) ([]StaffResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	accounts := make([]StaffResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			username,
			name,
			role,
			created_at
		FROM staff
		ORDER BY username
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id        uuid.UUID
			username  string
			name      string
			role      int
			createdAt time.Time
		)

		if err = rows.Scan(&id, &username, &name, &role, &createdAt); err != nil {
			return nil, err
		}

		userID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		accounts = append(accounts, StaffResponse{
			ID:        userID,
			Username:  username,
			Name:      name,
			Role:      staff.Role(role).String(),
			CreatedAt: createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return accounts, nil
}
