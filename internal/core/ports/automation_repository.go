package ports

import (
	"context"

	"printflow/internal/core/domain/model/automation"
	"printflow/internal/core/domain/model/kernel"
)

// AutomationRepository stores optimizer batches.
type AutomationRepository interface {
	Add(ctx context.Context, batch *automation.Batch) error
	Get(ctx context.Context, id kernel.UUID) (*automation.Batch, error)

	// Delete removes the batch record only. Orders keep their status.
	Delete(ctx context.Context, id kernel.UUID) error
}

// ManualAutomationRepository stores manual batches.
type ManualAutomationRepository interface {
	Add(ctx context.Context, batch *automation.ManualBatch) error
	Get(ctx context.Context, id kernel.UUID) (*automation.ManualBatch, error)
	Delete(ctx context.Context, id kernel.UUID) error
}
