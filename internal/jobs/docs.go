// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. PendingRebroadcastJob - Periodically re-announces pending orders on the
// pool notification channel so that dashboards reconnecting after a gap learn
// about orders whose original cue they missed.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(uowFactory, notifier, "@every 30s", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed rebroadcast tick is logged and retried at the next tick; per-order
// publish failures are logged and skipped. Subscribers tolerate both missing
// and duplicate cues, so the job never escalates beyond logging.
package jobs
