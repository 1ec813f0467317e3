package batchrepo

import (
	"context"
	"errors"

	"printflow/internal/adapters/out/postgres/pgerr"
	"printflow/internal/core/domain/model/automation"
	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormAutomationRepository implements ports.AutomationRepository.
type GormAutomationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormAutomationRepository(db *gorm.DB, tracker aggregateTracker) *GormAutomationRepository {
	return &GormAutomationRepository{db: db, tracker: tracker}
}

func (r *GormAutomationRepository) Add(ctx context.Context, batch *automation.Batch) error {
	if err := batch.Validate(); err != nil {
		return err
	}

	dto := batchFromDomain(batch)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate("batchId", batch.ID().String(), err)
	}

	r.tracker.TrackAggregate(batch.ID(), batch)
	return nil
}

func (r *GormAutomationRepository) Get(ctx context.Context, id kernel.UUID) (*automation.Batch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BatchDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("batch", id.String())
		}
		return nil, err
	}

	return batchToDomain(dto)
}

func (r *GormAutomationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return deleteRow(ctx, r.db, &BatchDTO{}, "batch", id)
}

// GormManualAutomationRepository implements ports.ManualAutomationRepository.
type GormManualAutomationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormManualAutomationRepository(db *gorm.DB, tracker aggregateTracker) *GormManualAutomationRepository {
	return &GormManualAutomationRepository{db: db, tracker: tracker}
}

func (r *GormManualAutomationRepository) Add(ctx context.Context, batch *automation.ManualBatch) error {
	if err := batch.Validate(); err != nil {
		return err
	}

	dto := manualFromDomain(batch)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate("batchId", batch.ID().String(), err)
	}

	r.tracker.TrackAggregate(batch.ID(), batch)
	return nil
}

func (r *GormManualAutomationRepository) Get(ctx context.Context, id kernel.UUID) (*automation.ManualBatch, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ManualBatchDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("manualBatch", id.String())
		}
		return nil, err
	}

	return manualToDomain(dto)
}

func (r *GormManualAutomationRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return deleteRow(ctx, r.db, &ManualBatchDTO{}, "manualBatch", id)
}

func deleteRow(ctx context.Context, db *gorm.DB, model any, param string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := db.WithContext(ctx).Where("id = ?", id.Bytes()).Delete(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(param, id.String())
	}
	return nil
}
