package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// The repositories below use the transaction started by Begin, or the plain
	// connection when no transaction is active.
	OrderRepository() OrderRepository
	AutomationRepository() AutomationRepository
	ManualAutomationRepository() ManualAutomationRepository
	CatalogRepository() CatalogRepository
	UserRepository() UserRepository
}
