package order

import (
	"errors"

	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/publication"
	"bookstore/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root tracking a customer's request for one or
// more publications through its status lifecycle.
//
// Order maintains these invariants:
//   - id is assigned at creation and immutable thereafter
//   - items is a non-empty sequence, immutable after creation; duplicates
//     by publication id are permitted, each line is an independent charge
//   - totalPrice is the left-to-right sum of the line prices, computed
//     once at creation and never recomputed (items cannot change)
//   - status only changes through ChangeStatus and Cancel, which enforce
//     the lifecycle rules
//
// The customer id is an opaque caller-supplied string; it is not checked
// against any customer registry.
type Order struct {
	id         kernel.OrderID
	customerID string
	items      []publication.Publication
	totalPrice float64
	status     Status

	// isConstructed ensures the order was created via a factory
	isConstructed bool
}

// NewOrder creates a new Order in Pending status. The item slice is
// copied, each item must come from a publication factory, and at least one
// item is required. The total price is accumulated over items from left
// to right; with floating-point prices the accumulation order is part of
// the observable contract.
func NewOrder(id kernel.OrderID, customerID string, items []publication.Publication) (*Order, error) {
	order := &Order{
		customerID:    customerID,
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	order.totalPrice = totalPrice(order.items)
	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state. Unlike
// NewOrder it accepts any valid status and takes the stored total price
// as-is instead of recomputing it.
func RestoreOrder(
	id kernel.OrderID,
	customerID string,
	items []publication.Publication,
	storedTotalPrice float64,
	status Status,
) (*Order, error) {
	order := &Order{
		customerID:    customerID,
		totalPrice:    storedTotalPrice,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setItems(items),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was produced by NewOrder or
// RestoreOrder, rejecting nil and zero-value instances.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// CustomerID returns the opaque customer identifier.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Items returns a copy of the order lines; callers cannot mutate the
// aggregate through the returned slice.
func (o *Order) Items() []publication.Publication {
	items := make([]publication.Publication, len(o.items))
	copy(items, o.items)
	return items
}

// TotalPrice returns the total computed at creation time.
func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// ChangeStatus requests a direct transition to target. The transition
// table decides legality; a same-state request is an idempotent no-op.
// On rejection the order is left unchanged and an InvalidTransitionError
// carrying (current, target) is returned.
func (o *Order) ChangeStatus(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel moves the order to Cancelled. A delivered order can never be
// cancelled; cancelling an already cancelled order is a no-op. This is
// deliberately more permissive than ChangeStatus(Cancelled): a Shipped
// order may still be cancelled through this operation.
func (o *Order) Cancel() error {
	if o.status == Delivered {
		return NewInvalidTransitionError(Delivered, Cancelled)
	}

	o.status = Cancelled
	return nil
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setItems(items []publication.Publication) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]publication.Publication, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// totalPrice sums line prices left to right. Floating-point sums are not
// strictly associative, so the accumulation order matters.
func totalPrice(items []publication.Publication) float64 {
	var total float64
	for _, item := range items {
		total += item.Price()
	}
	return total
}
