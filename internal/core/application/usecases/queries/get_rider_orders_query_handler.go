package queries

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/viewer"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetRiderOrdersQueryHandler retrieves a rider's assigned active deliveries.
type GetRiderOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetRiderOrdersQueryHandler creates a handler for rider delivery queries.
// Requires a GORM database connection for query execution.
func NewGetRiderOrdersQueryHandler(db *gorm.DB) GetRiderOrdersQueryHandler {
	return GetRiderOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve the rider's accepted and in-transit
// orders, oldest first, with contact details disclosed.
func (h GetRiderOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetRiderOrdersQuery,
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
		WHERE rider_id = ? AND status IN (?, ?)
		ORDER BY created_at
	`, query.RiderID().Bytes(), order.Accepted, order.InTransit).Rows()
	if err != nil {
		return nil, errs.WrapUnavailable("orders", err)
	}

	return projectRows(rows, rider)
}
