package queries

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/viewer"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAvailableOrdersQueryHandler retrieves the pending order pool from the
// database, oldest first, projected for a prospective rider.
type GetAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableOrdersQueryHandler creates a handler for pool queries.
// Requires a GORM database connection for query execution.
func NewGetAvailableOrdersQueryHandler(db *gorm.DB) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all pending orders.
// Every returned view has ContactDisclosed false: a rider browsing the pool
// has claimed none of these orders yet.
func (h GetAvailableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableOrdersQuery,
) ([]order.View, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rider, err := viewer.NewContext(viewer.RoleRider, query.RiderID())
	if err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderColumns+`
		FROM orders
		WHERE status = ? AND rider_id IS NULL
		ORDER BY created_at
	`, order.Pending).Rows()
	if err != nil {
		return nil, errs.WrapUnavailable("orders", err)
	}

	return projectRows(rows, rider)
}
