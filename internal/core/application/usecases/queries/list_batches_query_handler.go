package queries

import (
	"context"

	"printflow/internal/core/domain/model/access"

	"gorm.io/gorm"
)

type ListBatchesQueryHandler struct {
	db *gorm.DB
}

func NewListBatchesQueryHandler(db *gorm.DB) ListBatchesQueryHandler {
	return ListBatchesQueryHandler{db: db}
}

func (h ListBatchesQueryHandler) Handle(ctx context.Context, query ListQuery) ([]BatchView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := query.Session().Require("list batches", access.Staff, access.Admin); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`SELECT` + batchColumns + `
		FROM automation_batches b
		ORDER BY b.created_at DESC, b.id`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBatches(rows, false)
}

type ListManualBatchesQueryHandler struct {
	db *gorm.DB
}

func NewListManualBatchesQueryHandler(db *gorm.DB) ListManualBatchesQueryHandler {
	return ListManualBatchesQueryHandler{db: db}
}

func (h ListManualBatchesQueryHandler) Handle(ctx context.Context, query ListQuery) ([]ManualBatchView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := query.Session().Require("list manual batches", access.Staff, access.Admin); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT b.id, b.name, b.description, b.order_ids, b.file_url, b.created_at
		FROM manual_automation_batches b
		ORDER BY b.created_at DESC, b.id`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanManualBatches(rows)
}
