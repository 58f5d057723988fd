package orderrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
//
// The lifecycle mutations (ClaimPending, AdvanceStatus, CancelActive) are
// single conditional UPDATE statements: the row-level atomicity of the
// database is the arbitration mechanism, so concurrent writers never need
// explicit locks and at most one of them can match the precondition.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.WrapUnavailable("orders", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, errs.WrapUnavailable("orders", err)
	}

	return toDomain(dto)
}

// ClaimPending assigns riderID to the order and moves it to Accepted, only
// where the order is still Pending and unassigned. Both conditions and both
// column writes are one statement, so racing claims resolve to at most one
// affected row.
func (r *GormOrderRepository) ClaimPending(ctx context.Context, orderID, riderID kernel.UUID) (int64, error) {
	if err := orderID.Validate(); err != nil {
		return 0, err
	}
	if err := riderID.Validate(); err != nil {
		return 0, err
	}

	rider := riderID.Bytes()
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ? AND rider_id IS NULL", orderID.Bytes(), order.Pending).
		Updates(map[string]any{
			"status":   int(order.Accepted),
			"rider_id": rider,
		})

	return result.RowsAffected, errs.WrapUnavailable("orders", result.Error)
}

// AdvanceStatus moves the order from one status to another, only where the
// current status matches from and the order is assigned to riderID.
func (r *GormOrderRepository) AdvanceStatus(
	ctx context.Context,
	orderID, riderID kernel.UUID,
	from, to order.Status,
) (int64, error) {
	if err := orderID.Validate(); err != nil {
		return 0, err
	}
	if err := riderID.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ? AND rider_id = ?", orderID.Bytes(), from, riderID.Bytes()).
		Update("status", int(to))

	return result.RowsAffected, errs.WrapUnavailable("orders", result.Error)
}

// CancelActive cancels the order only where it is still Pending or Accepted.
// An assigned rider stays on the record.
func (r *GormOrderRepository) CancelActive(ctx context.Context, orderID kernel.UUID) (int64, error) {
	if err := orderID.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status IN (?, ?)", orderID.Bytes(), order.Pending, order.Accepted).
		Update("status", int(order.Cancelled))

	return result.RowsAffected, errs.WrapUnavailable("orders", result.Error)
}

// GetAllPending retrieves all unclaimed pending orders, oldest first.
func (r *GormOrderRepository) GetAllPending(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND rider_id IS NULL", order.Pending).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.WrapUnavailable("orders", err)
	}

	return toDomainAll(dtos)
}

// GetAllAssignedTo retrieves the rider's active orders, oldest first.
func (r *GormOrderRepository) GetAllAssignedTo(ctx context.Context, riderID kernel.UUID) ([]*order.Order, error) {
	if err := riderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("rider_id = ? AND status IN (?, ?)", riderID.Bytes(), order.Accepted, order.InTransit).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, errs.WrapUnavailable("orders", err)
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
