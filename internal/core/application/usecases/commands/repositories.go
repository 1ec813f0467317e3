// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: role check, validation, transaction
// management and persistence.
package commands

import (
	"context"

	"printflow/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest set of repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	AutomationRepoFactory interface {
		AutomationRepository() ports.AutomationRepository
	}

	ManualAutomationRepoFactory interface {
		ManualAutomationRepository() ports.ManualAutomationRepository
	}

	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// AssignmentUoW reads users while updating an order.
	AssignmentUoW interface {
		TxManager
		OrderRepoFactory
		UserRepoFactory
	}

	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// BatchUoW locks orders and stores an optimizer batch in one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orders, err := uow.OrderRepository().GetManyForUpdate(ctx, ids)
	//   // ... transition orders
	//   err = uow.AutomationRepository().Add(ctx, batch)
	//
	//   err = uow.Commit(ctx)
	BatchUoW interface {
		TxManager
		OrderRepoFactory
		AutomationRepoFactory
	}

	BatchUoWFactory interface {
		Create() BatchUoW
	}

	// ManualBatchUoW locks orders and stores a manual batch in one transaction.
	ManualBatchUoW interface {
		TxManager
		OrderRepoFactory
		ManualAutomationRepoFactory
	}

	ManualBatchUoWFactory interface {
		Create() ManualBatchUoW
	}

	// BatchRemovalUoW deletes batches of either kind.
	BatchRemovalUoW interface {
		TxManager
		AutomationRepoFactory
		ManualAutomationRepoFactory
	}

	BatchRemovalUoWFactory interface {
		Create() BatchRemovalUoW
	}

	// CatalogUoW manages catalog writes.
	CatalogUoW interface {
		TxManager
		CatalogRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}
)
