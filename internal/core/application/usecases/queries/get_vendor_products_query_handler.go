package queries

import (
	"context"

	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/core/ports"
)

// GetVendorProductsQueryHandler retrieves a vendor's catalog of listings.
//
// Unlike the order queries, this one goes through the repository rather than
// a raw projection: listings carry no role-dependent masking, and the vendor
// dashboard wants the same aggregate the write side uses.
type GetVendorProductsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetVendorProductsQueryHandler creates a handler for vendor catalog
// queries.
func NewGetVendorProductsQueryHandler(uowFactory ports.UnitOfWorkFactory) GetVendorProductsQueryHandler {
	return GetVendorProductsQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query to retrieve the vendor's listings, newest first.
func (h GetVendorProductsQueryHandler) Handle(
	ctx context.Context,
	query GetVendorProductsQuery,
) ([]*product.Product, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	// Read outside a transaction: the catalog is a single-statement read.
	return h.uowFactory.Create().ProductRepository().GetAllByVendor(ctx, query.VendorID())
}
