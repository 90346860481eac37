package queries

import (
	"context"

	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/core/ports"
)

// ListOrdersQueryHandler lists the whole registry. The repository returns
// a stable snapshot sorted by order id, so repeated listings of an
// unmodified registry agree.
type ListOrdersQueryHandler struct {
	orders ports.OrderRepository
}

// NewListOrdersQueryHandler creates a handler reading from the given
// repository.
func NewListOrdersQueryHandler(orders ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

// Handle executes the listing. An empty registry yields an empty slice,
// never nil.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if orders == nil {
		orders = make([]*order.Order, 0)
	}
	return orders, nil
}
