package queries

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/viewer"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetVendorOrdersQueryHandler retrieves the orders placed against a vendor's
// products. Joins through the products table; vendor identity is not
// denormalized onto orders.
type GetVendorOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetVendorOrdersQueryHandler creates a handler for vendor order queries.
// Requires a GORM database connection for query execution.
func NewGetVendorOrdersQueryHandler(db *gorm.DB) GetVendorOrdersQueryHandler {
	return GetVendorOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve orders for the vendor's products,
// newest first. Every returned view has ContactDisclosed false.
func (h GetVendorOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetVendorOrdersQuery,
) ([]order.View, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vendor, err := viewer.NewContext(viewer.RoleVendor, query.VendorID())
	if err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumnsQualified("o")+`
		FROM orders o
		JOIN products p ON p.id = o.product_id
		WHERE p.vendor_id = ?
		ORDER BY o.created_at DESC
	`, query.VendorID().Bytes()).Rows()
	if err != nil {
		return nil, errs.WrapUnavailable("orders", err)
	}

	return projectRows(rows, vendor)
}
