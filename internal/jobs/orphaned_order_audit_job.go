package jobs

import (
	"context"
	"log/slog"

	"printflow/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OrphanedOrderFinder lists automated orders that no batch references.
type OrphanedOrderFinder interface {
	Handle(ctx context.Context, query queries.ListOrphanedOrdersQuery) ([]queries.OrderView, error)
}

// OrphanedOrderAuditJob reports orders left in AUTOMATED or MANUALLY_AUTOMATED
// after their batch was deleted. It only logs; staff decide what to do with them.
type OrphanedOrderAuditJob struct {
	finder   OrphanedOrderFinder
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewOrphanedOrderAuditJob(finder OrphanedOrderFinder, schedule string, logger *slog.Logger) *OrphanedOrderAuditJob {
	return &OrphanedOrderAuditJob{
		finder:   finder,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "orphaned_order_audit_job"),
	}
}

// Start registers the audit on its schedule and starts the cron runner.
func (j *OrphanedOrderAuditJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Orphaned order audit job started", "schedule", j.schedule)
	return nil
}

// Run performs one audit pass and returns the number of orphaned orders found.
func (j *OrphanedOrderAuditJob) Run(ctx context.Context) int {
	orders, err := j.finder.Handle(ctx, queries.NewListOrphanedOrdersQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Orphaned order audit failed", "error", err)
		return 0
	}
	if len(orders) == 0 {
		return 0
	}

	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	j.logger.WarnContext(ctx, "Automated orders without a batch", "count", len(ids), "orderIds", ids)
	return len(ids)
}

// Stop waits for a running audit to finish.
func (j *OrphanedOrderAuditJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Orphaned order audit job stopped")
}
