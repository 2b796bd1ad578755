package menurepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/core/domain/model/menu"
	"barpos/internal/pkg/errs"
)

// GormMenuRepository implements MenuRepository using GORM.
type GormMenuRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMenuRepository creates a new GORM menu repository.
func NewGormMenuRepository(db *gorm.DB, tracker aggregateTracker) *GormMenuRepository {
	return &GormMenuRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddCategory saves a new category. A duplicate name surfaces as
// errs.ConflictError.
func (r *GormMenuRepository) AddCategory(ctx context.Context, category *menu.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	dto := categoryFromDomain(category)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("categoryName", err)
		}
		return errs.NewStoreUnavailableError("add category", err)
	}

	r.tracker.TrackAggregate(category.ID(), category)
	return nil
}

// GetCategory retrieves a category by ID.
func (r *GormMenuRepository) GetCategory(ctx context.Context, id kernel.UUID) (*menu.Category, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CategoryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("categoryID", id.String())
		}
		return nil, errs.NewStoreUnavailableError("get category", err)
	}

	return categoryToDomain(dto)
}

// RemoveCategory deletes a category by ID. A category that still has
// products trips the foreign key and surfaces as errs.ConflictError.
func (r *GormMenuRepository) RemoveCategory(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CategoryDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return errs.NewConflictErrorWithCause("categoryID", result.Error)
		}
		return errs.NewStoreUnavailableError("remove category", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("categoryID", id.String())
	}

	return nil
}

// AddProduct saves a new product. A missing category trips the foreign key
// and surfaces as errs.ConflictError.
func (r *GormMenuRepository) AddProduct(ctx context.Context, product *menu.Product) error {
	if err := product.Validate(); err != nil {
		return err
	}

	dto := productFromDomain(product)
	if err := r.db.WithContext(ctx).Omit("Category").Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return errs.NewConflictErrorWithCause("categoryID", err)
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("productID", err)
		}
		return errs.NewStoreUnavailableError("add product", err)
	}

	r.tracker.TrackAggregate(product.ID(), product)
	return nil
}

// GetProduct retrieves a product by ID.
func (r *GormMenuRepository) GetProduct(ctx context.Context, id kernel.UUID) (*menu.Product, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ProductDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("productID", id.String())
		}
		return nil, errs.NewStoreUnavailableError("get product", err)
	}

	return productToDomain(dto)
}

// RemoveProduct deletes a product by ID.
func (r *GormMenuRepository) RemoveProduct(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ProductDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return errs.NewStoreUnavailableError("remove product", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("productID", id.String())
	}

	return nil
}
