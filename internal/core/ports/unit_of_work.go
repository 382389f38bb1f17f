package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Repositories obtained after Begin share its transaction; repositories obtained
// without Begin read and write outside of any transaction.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	CartRepository() CartRepository
	CatalogRepository() CatalogRepository
	CourierRepository() CourierRepository
	OrderRepository() OrderRepository
	NotificationRepository() NotificationRepository
	PaymentRepository() PaymentRepository
	ReviewRepository() ReviewRepository
	UserDirectory() UserDirectory
}
