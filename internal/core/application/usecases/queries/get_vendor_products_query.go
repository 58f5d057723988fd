package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetVendorProductsQueryIsNotConstructed = errors.New(
	"GetVendorProductsQuery must be created via NewGetVendorProductsQuery constructor",
)

// GetVendorProductsQuery retrieves every listing published by one vendor,
// including listings whose stock has run out. Vendors manage their own
// catalog, so nothing is masked.
type GetVendorProductsQuery struct { //nolint:recvcheck //using for validation
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetVendorProductsQuery creates a query for a vendor's catalog.
func NewGetVendorProductsQuery(vendorID kernel.UUID) (GetVendorProductsQuery, error) {
	vendorQuery := GetVendorProductsQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := vendorQuery.setVendorID(vendorID); err != nil {
		return GetVendorProductsQuery{}, err
	}

	return vendorQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetVendorProductsQueryIsNotConstructed if validation fails.
func (q GetVendorProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorProductsQueryIsNotConstructed)
}

// VendorID returns the identifier of the catalog owner.
func (q GetVendorProductsQuery) VendorID() kernel.UUID {
	return q.vendorID
}

func (q *GetVendorProductsQuery) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	q.vendorID = vendorID
	return nil
}
