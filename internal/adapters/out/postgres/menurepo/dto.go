// Package menurepo provides data transfer objects and mapping functions
// for menu category and product persistence.
package menurepo

import (
	"github.com/google/uuid"

	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/core/domain/model/menu"
)

// CategoryDTO represents the database structure for menu categories.
type CategoryDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"uniqueIndex"`
}

// TableName specifies the database table name for categories.
func (CategoryDTO) TableName() string {
	return "categories"
}

// ProductDTO represents the database structure for menu products.
// CategoryID is a foreign key with RESTRICT semantics so a category with
// products cannot be deleted out from under them.
type ProductDTO struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name       string      `gorm:"index"`
	PriceCents int64
	CategoryID uuid.UUID   `gorm:"type:uuid;index"`
	Category   CategoryDTO `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

func categoryFromDomain(category *menu.Category) CategoryDTO {
	return CategoryDTO{
		ID:   category.ID().Bytes(),
		Name: category.Name(),
	}
}

func categoryToDomain(dto CategoryDTO) (*menu.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return menu.RestoreCategory(id, dto.Name)
}

func productFromDomain(product *menu.Product) ProductDTO {
	return ProductDTO{
		ID:         product.ID().Bytes(),
		Name:       product.Name(),
		PriceCents: product.PriceCents(),
		CategoryID: product.CategoryID().Bytes(),
	}
}

func productToDomain(dto ProductDTO) (*menu.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}

	return menu.RestoreProduct(id, dto.Name, dto.PriceCents, categoryID)
}
