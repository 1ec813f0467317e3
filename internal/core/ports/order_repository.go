// Package ports defines the contracts between the printflow core and its
// adapters: repositories bound to a unit of work, the product catalog, the
// packing optimizer and file storage.
package ports

import (
	"context"

	"printflow/internal/core/domain/model/kernel"
	"printflow/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Returns errs.ObjectNotFoundError when the order does not exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate behaves like Get but locks the row until the surrounding
	// transaction ends. Every read that precedes a write of a single order uses
	// it, so the write cannot overwrite a status changed concurrently.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetMany retrieves the orders that exist among ids, in no particular order.
	// Missing ids are silently skipped; callers compare the result with the request.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error)

	// GetManyForUpdate behaves like GetMany but locks the returned rows until the
	// surrounding transaction ends. It must be called after UnitOfWork.Begin.
	GetManyForUpdate(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error)
}
