package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	// The product must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	// Returns errs.ErrObjectNotFound if no such product exists.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// ReserveStock atomically decrements the product's stock by qty, only
	// where at least qty units are available. Returns the number of rows
	// affected (0 or 1); zero rows means insufficient stock or no such
	// product.
	ReserveStock(ctx context.Context, productID kernel.UUID, qty int) (int64, error)

	// GetAllByVendor retrieves all products listed by the given vendor.
	GetAllByVendor(ctx context.Context, vendorID kernel.UUID) ([]*product.Product, error)
}
