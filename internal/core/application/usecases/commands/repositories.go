// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	ReviewRepoFactory interface {
		ReviewRepository() ports.ReviewRepository
	}

	UserDirectoryFactory interface {
		UserDirectory() ports.UserDirectory
	}

	// CartUoW serves the cart commands. Couriers are read for the ETA.
	CartUoW interface {
		TxManager
		CartRepoFactory
		CatalogRepoFactory
		CourierRepoFactory
	}

	CartUoWFactory interface {
		Create() CartUoW
	}

	// CheckoutUoW converts a cart into an order.
	CheckoutUoW interface {
		TxManager
		CartRepoFactory
		CatalogRepoFactory
		OrderRepoFactory
	}

	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// CourierUoW manages transactions for courier-only operations.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// UoW manages transactions across both order and courier aggregates.
	// Used by status changes and assignment, which bind or release couriers.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, orderID)
	//   c, err := uow.CourierRepository().GetForUpdate(ctx, courierID)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		CourierRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}

	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
		UserDirectoryFactory
	}

	NotificationUoWFactory interface {
		Create() NotificationUoW
	}

	// PaymentUoW updates a payment together with the order it drives.
	PaymentUoW interface {
		TxManager
		PaymentRepoFactory
		OrderRepoFactory
		CourierRepoFactory
	}

	PaymentUoWFactory interface {
		Create() PaymentUoW
	}

	ReviewUoW interface {
		TxManager
		ReviewRepoFactory
		OrderRepoFactory
	}

	ReviewUoWFactory interface {
		Create() ReviewUoW
	}
)
