package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// PendingRebroadcastJob periodically re-announces every pending order on the
// pool channel. Change notifications are fire-and-forget: a rider dashboard
// that was disconnected when an order was created would otherwise never learn
// about it until its next manual refresh. The rebroadcast puts an upper bound
// on that staleness.
//
// Duplicate cues are harmless since subscribers re-fetch state rather than
// applying payloads.
type PendingRebroadcastJob struct {
	uowFactory ports.UnitOfWorkFactory
	notifier   ports.OrderNotifier
	cron       *cron.Cron
	schedule   string
	logger     *slog.Logger
}

// NewPendingRebroadcastJob creates the rebroadcast job. The schedule is a
// cron expression such as "@every 30s".
func NewPendingRebroadcastJob(
	uowFactory ports.UnitOfWorkFactory,
	notifier ports.OrderNotifier,
	schedule string,
	logger *slog.Logger,
) *PendingRebroadcastJob {
	return &PendingRebroadcastJob{
		uowFactory: uowFactory,
		notifier:   notifier,
		cron:       cron.New(),
		schedule:   schedule,
		logger:     logger.With("component", "pending_rebroadcast_job"),
	}
}

// Start schedules the rebroadcast to run at the configured interval.
func (j *PendingRebroadcastJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Pending order rebroadcast failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Pending order rebroadcast started", "schedule", j.schedule)
	return nil
}

// Stop stops the rebroadcast job.
func (j *PendingRebroadcastJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Pending order rebroadcast stopped")
}

func (j *PendingRebroadcastJob) run(ctx context.Context) error {
	// Read outside a transaction: a momentarily stale list only delays a cue
	// until the next tick.
	orders, err := j.uowFactory.Create().OrderRepository().GetAllPending(ctx)
	if err != nil {
		return err
	}

	for _, pending := range orders {
		notification := ports.OrderNotification{
			OrderID: pending.ID(),
			Status:  pending.Status(),
		}
		if err := j.notifier.PublishOrderChanged(ctx, notification); err != nil {
			j.logger.WarnContext(ctx, "Failed to rebroadcast pending order",
				"order_id", pending.ID().String(), "error", err)
		}
	}

	return nil
}
