// Package orderrepo provides the in-memory implementation of the order
// registry. It is the default storage adapter: process-lifetime state,
// created empty at startup and discarded at shutdown, with explicit
// synchronization replacing the implicit request-handling discipline the
// system previously relied on.
package orderrepo

import (
	"context"
	"sort"
	"sync"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"
)

// InMemoryOrderRepository is a mutex-guarded map keyed by order id.
//
// Mutations take the write lock, so updates of the same order serialize
// and the later one is judged against the earlier one's result. Reads
// take the read lock and hand back copies, so no caller ever holds a
// mutable reference into the registry and no torn record can be observed.
// One order's mutation blocks others only for the duration of an
// in-memory map operation; nothing here performs I/O under the lock.
type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*order.Order
}

// NewInMemoryOrderRepository creates an empty registry.
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{
		orders: make(map[string]*order.Order),
	}
}

// Add stores a snapshot of a new order. The id must not already exist.
func (r *InMemoryOrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	stored, err := snapshot(aggregate)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := aggregate.ID().String()
	if _, exists := r.orders[key]; exists {
		return errs.NewValueIsInvalidError("order id already exists: " + key)
	}

	r.orders[key] = stored
	return nil
}

// Get returns a snapshot of the order with the given id.
func (r *InMemoryOrderRepository) Get(_ context.Context, id kernel.OrderID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.orders[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	return snapshot(stored)
}

// GetAll returns snapshots of every stored order, sorted by id.
func (r *InMemoryOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]*order.Order, 0, len(r.orders))
	for _, stored := range r.orders {
		copied, err := snapshot(stored)
		if err != nil {
			return nil, err
		}
		orders = append(orders, copied)
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].ID().String() < orders[j].ID().String()
	})

	return orders, nil
}

// UpdateStatus applies a direct transition under the write lock. The
// legality check runs against the stored record's current state, so
// concurrent updates cannot act on stale status.
func (r *InMemoryOrderRepository) UpdateStatus(
	_ context.Context,
	id kernel.OrderID,
	target order.Status,
) (*order.Order, error) {
	return r.mutate(id, func(stored *order.Order) error {
		return stored.ChangeStatus(target)
	})
}

// Cancel cancels the stored order under the write lock.
func (r *InMemoryOrderRepository) Cancel(_ context.Context, id kernel.OrderID) (*order.Order, error) {
	return r.mutate(id, func(stored *order.Order) error {
		return stored.Cancel()
	})
}

// mutate runs fn against the stored record while holding the write lock
// and returns a snapshot of the result. When fn fails the record is left
// untouched (aggregate methods reject without partial writes).
func (r *InMemoryOrderRepository) mutate(
	id kernel.OrderID,
	fn func(stored *order.Order) error,
) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.orders[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	if err := fn(stored); err != nil {
		return nil, err
	}

	return snapshot(stored)
}

// snapshot deep-copies an order via RestoreOrder. Publications are value
// types, so copying the item slice is sufficient.
func snapshot(o *order.Order) (*order.Order, error) {
	return order.RestoreOrder(o.ID(), o.CustomerID(), o.Items(), o.TotalPrice(), o.Status())
}
