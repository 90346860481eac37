package queries

import (
	"context"

	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/core/ports"
)

// GetOrderQueryHandler serves point lookups against the order registry.
// Lookups have no side effects; an unknown id surfaces as the
// repository's ObjectNotFoundError.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler reading from the given
// repository.
func NewGetOrderQueryHandler(orders ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle executes the lookup and returns the order snapshot.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orders.Get(ctx, query.OrderID())
}
