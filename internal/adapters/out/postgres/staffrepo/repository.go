package staffrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/core/domain/model/staff"
	"barpos/internal/pkg/errs"
)

// GormStaffRepository implements StaffRepository using GORM.
type GormStaffRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormStaffRepository creates a new GORM staff repository.
func NewGormStaffRepository(db *gorm.DB, tracker aggregateTracker) *GormStaffRepository {
	return &GormStaffRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new staff account to the database.
// A username collision surfaces as errs.ConflictError.
func (r *GormStaffRepository) Add(ctx context.Context, user *staff.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	dto := fromDomain(user)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("username", err)
		}
		return errs.NewStoreUnavailableError("add staff", err)
	}

	r.tracker.TrackAggregate(user.ID(), user)
	return nil
}

// Update saves an existing staff account to the database.
func (r *GormStaffRepository) Update(ctx context.Context, user *staff.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	dto := fromDomain(user)
	result := r.db.WithContext(ctx).Model(&UserDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("username", result.Error)
		}
		return errs.NewStoreUnavailableError("update staff", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("userID", user.ID())
	}

	r.tracker.TrackAggregate(user.ID(), user)
	return nil
}

// Get retrieves a staff account by ID.
func (r *GormStaffRepository) Get(ctx context.Context, id kernel.UUID) (*staff.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("userID", id.String())
		}
		return nil, errs.NewStoreUnavailableError("get staff", err)
	}

	return toDomain(dto)
}

// GetByUsername retrieves a staff account by login name.
func (r *GormStaffRepository) GetByUsername(ctx context.Context, username string) (*staff.User, error) {
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("username", username)
		}
		return nil, errs.NewStoreUnavailableError("get staff by username", err)
	}

	return toDomain(dto)
}

// Remove deletes a staff account by ID.
func (r *GormStaffRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&UserDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return errs.NewStoreUnavailableError("remove staff", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("userID", id.String())
	}

	return nil
}
