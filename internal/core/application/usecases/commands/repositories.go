// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"bottleworks/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// BatchRepoFactory provides access to batch repository within a transaction.
	BatchRepoFactory interface {
		BatchRepository() ports.BatchRepository
	}

	// PaymentRepoFactory provides access to payment repository within a transaction.
	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// BatchUoW manages transactions for batch-only operations.
	// Used when commands only modify batch aggregates.
	BatchUoW interface {
		TxManager
		BatchRepoFactory
	}

	// BatchUoWFactory creates new batch unit of work instances.
	BatchUoWFactory interface {
		Create() BatchUoW
	}

	// OrderBatchUoW manages transactions across order and batch aggregates.
	// Used by commands that read the order while writing batches.
	OrderBatchUoW interface {
		TxManager
		OrderRepoFactory
		BatchRepoFactory
	}

	// OrderBatchUoWFactory creates new unit of work instances for
	// order-and-batch operations.
	OrderBatchUoWFactory interface {
		Create() OrderBatchUoW
	}

	// PaymentUoW manages transactions across order and payment aggregates.
	// Capture recording updates the order's deposit state in the same
	// transaction that stores the payment row.
	PaymentUoW interface {
		TxManager
		OrderRepoFactory
		PaymentRepoFactory
	}

	// PaymentUoWFactory creates new unit of work instances for payment
	// capture operations.
	PaymentUoWFactory interface {
		Create() PaymentUoW
	}
)
