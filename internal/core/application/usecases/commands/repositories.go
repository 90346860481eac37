// Package commands contains the business operations that modify system
// state. Every command follows the same pattern: validated construction
// behind a guard, then a handler that manages the transaction and invokes
// the aggregate. Handlers never format user-facing text; they surface the
// typed failures of the core unchanged.
package commands

import (
	"context"

	"bookstore/internal/core/ports"
)

type (
	// TxManager handles the transaction lifecycle for a unit of work.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides the order repository bound to the
	// current transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// OrderUoW manages transactions for order operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates a fresh unit of work per business
	// operation, keeping concurrent operations isolated.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
