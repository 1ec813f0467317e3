package queries

import (
	"context"

	"printflow/internal/core/domain/model/access"

	"gorm.io/gorm"
)

// ListOrdersByStatusQueryHandler reads orders newest first.
//
// Example:
//
//	handler := NewListOrdersByStatusQueryHandler(db)
//	query, err := NewListOrdersByStatusQuery(session, "ACTIVE")
//	...
//	orders, err := handler.Handle(ctx, query)
type ListOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersByStatusQueryHandler(db *gorm.DB) ListOrdersByStatusQueryHandler {
	return ListOrdersByStatusQueryHandler{db: db}
}

func (h ListOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersByStatusQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `SELECT` + orderColumns + `
		FROM orders o
		WHERE o.status = ?`
	args := []any{int(query.Status())}

	if session := query.Session(); session.Role() == access.Client {
		stmt += ` AND o.raised_by = ?`
		args = append(args, session.UserID().Bytes())
	}
	stmt += ` ORDER BY o.created_at DESC, o.id`

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrders(rows)
}
