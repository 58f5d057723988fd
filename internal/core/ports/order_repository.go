// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, and the change notifier.
// The contracts are intentionally narrow — conditional single-record updates,
// scoped reads and a change feed — so no caller ever needs arbitrary write
// access to the backing store.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// All mutation paths beyond the initial insert are conditional single-record
// updates evaluated atomically by the store: the precondition and the write
// are one operation, never a client-side read-modify-write. The atomic
// conditional update is the concurrency control mechanism; no locks are held
// by callers.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ErrObjectNotFound if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ClaimPending atomically assigns a rider to a pending, unclaimed order:
	// status becomes Accepted and the rider is set, only where the current
	// status is Pending and no rider is assigned. Returns the number of rows
	// affected (0 or 1, never more). Zero rows means the precondition did not
	// hold; callers classify the reason by re-reading the order.
	ClaimPending(ctx context.Context, orderID, riderID kernel.UUID) (int64, error)

	// AdvanceStatus atomically moves an order from one status to another,
	// only where the current status matches from and the assigned rider
	// matches riderID. Returns the number of rows affected (0 or 1).
	AdvanceStatus(ctx context.Context, orderID, riderID kernel.UUID, from, to order.Status) (int64, error)

	// CancelActive atomically cancels an order that is still Pending or
	// Accepted. Returns the number of rows affected (0 or 1).
	CancelActive(ctx context.Context, orderID kernel.UUID) (int64, error)

	// GetAllPending retrieves all orders awaiting a claim, oldest first.
	// Used by the rider pool view and the rebroadcast job.
	GetAllPending(ctx context.Context) ([]*order.Order, error)

	// GetAllAssignedTo retrieves the active orders (Accepted or InTransit)
	// assigned to the given rider.
	GetAllAssignedTo(ctx context.Context, riderID kernel.UUID) ([]*order.Order, error)
}
