// Package inmem wires the in-memory order registry into the unit of work
// contract used by command handlers. Every repository operation on the
// registry is already atomic, so the transaction lifecycle degenerates to
// no-ops; the factory still hands out units of work so handlers stay
// storage-agnostic.
package inmem

import (
	"context"

	"bookstore/internal/adapters/out/inmem/orderrepo"
	"bookstore/internal/core/ports"
)

// UnitOfWorkFactory creates units of work bound to one shared registry.
type UnitOfWorkFactory struct {
	orders *orderrepo.InMemoryOrderRepository
}

// NewUnitOfWorkFactory creates a factory over the given registry.
func NewUnitOfWorkFactory(orders *orderrepo.InMemoryOrderRepository) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{orders: orders}
}

// Create produces a new UnitOfWork sharing the registry.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{orders: f.orders}
}

// UnitOfWork adapts the registry to the transactional contract.
type UnitOfWork struct {
	orders *orderrepo.InMemoryOrderRepository
}

// Begin is a no-op; registry operations are individually atomic.
func (u *UnitOfWork) Begin(_ context.Context) error { return nil }

// Commit is a no-op.
func (u *UnitOfWork) Commit(_ context.Context) error { return nil }

// Rollback is a no-op; nothing is buffered.
func (u *UnitOfWork) Rollback(_ context.Context) error { return nil }

// OrderRepository returns the shared registry.
func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return u.orders
}
