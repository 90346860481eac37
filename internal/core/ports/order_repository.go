// Package ports declares the contracts between the application core and
// its adapters. Implementations live under internal/adapters.
package ports

import (
	"context"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
)

// OrderRepository is the authoritative registry of orders, keyed by order
// ID. Orders are never deleted.
//
// Concurrency contract (binding on every implementation):
//   - Add, UpdateStatus and Cancel are mutually exclusive per registry
//     instance; two mutations of the same order serialize, and the later
//     one is judged against the earlier one's result.
//   - Get and GetAll may run concurrently with each other and never
//     observe a partially written record.
//   - Returned aggregates are snapshots; mutating one does not affect the
//     registry.
type OrderRepository interface {
	// Add stores a new order aggregate. The aggregate must be valid and
	// its ID must not already exist in the registry.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier. Returns an
	// errs.ObjectNotFoundError when the ID is unknown.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetAll returns every stored order. The result is a stable snapshot
	// sorted by order ID; an empty registry yields an empty slice.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// UpdateStatus atomically applies a direct status transition and
	// returns the updated order. Fails with errs.ObjectNotFoundError for
	// an unknown ID or order.InvalidTransitionError when the lifecycle
	// table rejects the change.
	UpdateStatus(ctx context.Context, id kernel.OrderID, target order.Status) (*order.Order, error)

	// Cancel atomically cancels an order and returns it. Fails with
	// errs.ObjectNotFoundError for an unknown ID or
	// order.InvalidTransitionError when the order is already delivered.
	Cancel(ctx context.Context, id kernel.OrderID) (*order.Order, error)
}
