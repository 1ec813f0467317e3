package queries

import (
	"context"

	"printflow/internal/core/domain/model/access"
	"printflow/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle reports another client's order as not found rather than forbidden, so
// order ids cannot be probed.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`SELECT`+orderColumns+`
		FROM orders o
		WHERE o.id = ?`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderView{}, err
	}
	defer rows.Close()

	views, err := scanOrders(rows)
	if err != nil {
		return OrderView{}, err
	}

	notFound := errs.NewObjectNotFoundError("order", query.OrderID().String())
	if len(views) == 0 {
		return OrderView{}, notFound
	}

	session := query.Session()
	if session.Role() == access.Client && views[0].RaisedBy != session.UserID().String() {
		return OrderView{}, notFound
	}
	return views[0], nil
}
