package jobs

import (
	"fmt"
	"log/slog"

	"marketplace/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	pendingRebroadcastJob *PendingRebroadcastJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	uowFactory ports.UnitOfWorkFactory,
	notifier ports.OrderNotifier,
	rebroadcastSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		pendingRebroadcastJob: NewPendingRebroadcastJob(uowFactory, notifier, rebroadcastSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.pendingRebroadcastJob.Start(); err != nil {
		return fmt.Errorf("failed to start pending rebroadcast job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.pendingRebroadcastJob.Stop()
}
