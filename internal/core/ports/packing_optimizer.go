package ports

import (
	"context"

	"printflow/internal/core/domain/model/automation"
	"printflow/internal/core/domain/model/kernel"
)

// PackingItem is one order to place on the sheet.
type PackingItem struct {
	OrderID  kernel.UUID
	Width    kernel.Millimeters
	Height   kernel.Millimeters
	Quantity int
}

// PackingRequest is everything the optimizer needs for one batch.
type PackingRequest struct {
	Sheet            kernel.Dimensions
	Bleed            kernel.Millimeters
	RotationsAllowed bool
	Algorithm        automation.AlgorithmType
	Margins          automation.Margins
	Items            []PackingItem
}

// PackingOptimizer is the external layout service. Implementations honor the
// context deadline; any failure, timeout included, is returned as is and
// classified by the caller.
type PackingOptimizer interface {
	Optimize(ctx context.Context, request PackingRequest) (automation.Layout, error)
}
