package commands

import (
	"context"
	"log/slog"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// notifyOrderChanged publishes a change cue for the order after its
// transaction committed. Publish failures never fail the command: the
// mutation is already durable, and the periodic rebroadcast job covers
// subscribers that missed the cue. Failures are logged and dropped.
func notifyOrderChanged(ctx context.Context, notifier ports.OrderNotifier, log *slog.Logger, aggregate *order.Order) {
	if notifier == nil {
		return
	}

	notification := ports.OrderNotification{
		OrderID: aggregate.ID(),
		Status:  aggregate.Status(),
		RiderID: aggregate.Rider(),
	}

	if err := notifier.PublishOrderChanged(ctx, notification); err != nil {
		log.WarnContext(ctx, "failed to publish order change notification",
			slog.String("order_id", aggregate.ID().String()),
			slog.String("status", aggregate.Status().String()),
			slog.Any("error", err),
		)
	}
}
