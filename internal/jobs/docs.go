// Package jobs provides scheduled background tasks for printflow.
//
// Jobs are cron-based (github.com/robfig/cron/v3, seconds field enabled) and
// log through log/slog.
//
// # Available Jobs
//
// 1. OrphanedOrderAuditJob - lists orders still marked AUTOMATED or
// MANUALLY_AUTOMATED whose batch has been deleted. Deleting a batch does not
// move its orders back to APPROVED, so this audit is how staff find them.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(orphanedOrdersHandler, "0 */15 * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed audit pass is logged and retried on the next tick.
package jobs
