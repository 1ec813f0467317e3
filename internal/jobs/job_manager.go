package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates the scheduled jobs of the application.
type JobManager struct {
	auditJob *OrphanedOrderAuditJob
}

func NewJobManager(finder OrphanedOrderFinder, auditSchedule string, logger *slog.Logger) *JobManager {
	return &JobManager{
		auditJob: NewOrphanedOrderAuditJob(finder, auditSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.auditJob.Start(); err != nil {
		return fmt.Errorf("failed to start orphaned order audit job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.auditJob.Stop()
}
