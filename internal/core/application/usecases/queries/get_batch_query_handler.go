package queries

import (
	"context"

	"printflow/internal/core/domain/model/access"
	"printflow/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetBatchQueryHandler struct {
	db *gorm.DB
}

func NewGetBatchQueryHandler(db *gorm.DB) GetBatchQueryHandler {
	return GetBatchQueryHandler{db: db}
}

func (h GetBatchQueryHandler) Handle(ctx context.Context, query GetBatchQuery) (BatchView, error) {
	if err := query.Validate(); err != nil {
		return BatchView{}, err
	}
	if err := query.Session().Require("view batches", access.Staff, access.Admin); err != nil {
		return BatchView{}, err
	}
	return fetchBatch(ctx, h.db, query)
}

func fetchBatch(ctx context.Context, db *gorm.DB, query GetBatchQuery) (BatchView, error) {
	rows, err := db.WithContext(ctx).Raw(`SELECT`+batchColumns+`, b.layout
		FROM automation_batches b
		WHERE b.id = ?`, query.BatchID().Bytes()).Rows()
	if err != nil {
		return BatchView{}, err
	}
	defer rows.Close()

	views, err := scanBatches(rows, true)
	if err != nil {
		return BatchView{}, err
	}
	if len(views) == 0 {
		return BatchView{}, errs.NewObjectNotFoundError("batch", query.BatchID().String())
	}
	return views[0], nil
}
