package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderNotification is the payload of a change-feed message. It is a liveness
// cue only: subscribers must re-fetch authoritative state through a role-scoped
// read rather than trusting the payload, because delivery is at-least-once and
// a duplicate or late notification may carry a stale status.
type OrderNotification struct {
	OrderID kernel.UUID
	Status  order.Status

	// RiderID is the assigned rider at publish time, if any. It routes the
	// cue to that rider's personal feed in addition to the shared pool feed.
	RiderID *kernel.UUID
}

// OrderNotifier publishes order change notifications to interested dashboards.
//
// Delivery guarantees are at-least-once and eventually consistent: a
// notification may arrive after the mutation committed and may be duplicated.
// Notifications for the same order are published in commit order; ordering
// across different orders is not guaranteed.
type OrderNotifier interface {
	// PublishOrderChanged announces that the order was created or mutated.
	// Called after the owning transaction commits, never before.
	PublishOrderChanged(ctx context.Context, notification OrderNotification) error
}

// OrderSubscription is a live change-feed subscription. Notifications
// delivers cues until the subscription is closed or its context ends.
type OrderSubscription interface {
	// Notifications returns the channel change cues arrive on.
	// The channel is closed when the subscription terminates.
	Notifications() <-chan OrderNotification

	// Close terminates the subscription and releases its resources.
	Close() error
}

// OrderSubscriber opens change-feed subscriptions for dashboard sessions.
type OrderSubscriber interface {
	// SubscribePool subscribes to changes of interest to the whole rider
	// pool: order creations and any mutation of a pending order.
	SubscribePool(ctx context.Context) (OrderSubscription, error)

	// SubscribeRider subscribes to changes of orders assigned to one rider.
	SubscribeRider(ctx context.Context, riderID kernel.UUID) (OrderSubscription, error)
}
