package queries

import (
	"context"
	"errors"

	"printflow/internal/core/domain/model/order"
	"printflow/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListOrphanedOrdersQueryIsNotConstructed = errors.New(
	"ListOrphanedOrdersQuery must be created via NewListOrphanedOrdersQuery constructor",
)

// ListOrphanedOrdersQuery finds orders marked as automated that no batch of
// either kind references any more, which happens once their batch is deleted.
// It is issued by the audit job, not by a caller.
type ListOrphanedOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewListOrphanedOrdersQuery() ListOrphanedOrdersQuery {
	return ListOrphanedOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListOrphanedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrphanedOrdersQueryIsNotConstructed)
}

type ListOrphanedOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrphanedOrdersQueryHandler(db *gorm.DB) ListOrphanedOrdersQueryHandler {
	return ListOrphanedOrdersQueryHandler{db: db}
}

func (h ListOrphanedOrdersQueryHandler) Handle(ctx context.Context, query ListOrphanedOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`SELECT`+orderColumns+`
		FROM orders o
		WHERE o.status IN (?, ?)
			AND NOT EXISTS (SELECT 1 FROM automation_batches b WHERE o.id::text = ANY(b.order_ids))
			AND NOT EXISTS (SELECT 1 FROM manual_automation_batches m WHERE o.id::text = ANY(m.order_ids))
		ORDER BY o.updated_at, o.id`, int(order.Automated), int(order.ManuallyAutomated)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}
