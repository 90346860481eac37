package commands

import (
	"context"

	"bookstore/internal/core/domain/model/order"
)

// ChangeOrderStatusCommandHandler applies direct status transitions. The
// check-and-set happens inside the repository so that two concurrent
// updates of the same order serialize and the later one is judged against
// the earlier one's result, never against stale state.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status updates.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command and returns the updated
// order. Typed failures (unknown id, illegal transition) pass through
// untouched for the boundary to classify.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	updated, err := uow.OrderRepository().UpdateStatus(ctx, cmd.OrderID(), cmd.Status())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return updated, nil
}
