// Package productrepo provides data transfer objects and mapping functions
// for product persistence.
package productrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting product
// aggregates. Price is stored in minor currency units as bigint.
type ProductDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	VendorID    uuid.UUID `gorm:"type:uuid;index"`
	Name        string
	Description string
	Price       int64
	Stock       int
	Category    string
	CreatedAt   time.Time
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID().Bytes(),
		VendorID:    aggregate.VendorID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price().Amount(),
		Stock:       aggregate.Stock(),
		Category:    aggregate.Category(),
		CreatedAt:   aggregate.CreatedAt(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id, vendorID,
		dto.Name, dto.Description, price, dto.Stock, dto.Category,
		dto.CreatedAt,
	)
}
