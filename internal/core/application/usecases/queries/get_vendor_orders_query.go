package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetVendorOrdersQueryIsNotConstructed = errors.New(
	"GetVendorOrdersQuery must be created via NewGetVendorOrdersQuery constructor",
)

// GetVendorOrdersQuery retrieves the orders placed against a vendor's
// products. Vendors see sale and fulfillment progress but never the
// customer's delivery address or phone, in any status.
type GetVendorOrdersQuery struct { //nolint:recvcheck //using for validation
	vendorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetVendorOrdersQuery creates a query for a vendor's incoming orders.
func NewGetVendorOrdersQuery(vendorID kernel.UUID) (GetVendorOrdersQuery, error) {
	vendorQuery := GetVendorOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := vendorQuery.setVendorID(vendorID); err != nil {
		return GetVendorOrdersQuery{}, err
	}

	return vendorQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetVendorOrdersQueryIsNotConstructed if validation fails.
func (q GetVendorOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetVendorOrdersQueryIsNotConstructed)
}

// VendorID returns the identifier of the requesting vendor.
func (q GetVendorOrdersQuery) VendorID() kernel.UUID {
	return q.vendorID
}

func (q *GetVendorOrdersQuery) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	q.vendorID = vendorID
	return nil
}
