package commands

import (
	"errors"

	"bookstore/internal/core/domain/model/publication"
	"bookstore/internal/pkg/errs"
	"bookstore/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned when a
// CreateOrderCommand bypassed its constructor.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order. The
// customer id is opaque and may be empty; the item list must be non-empty
// and every item must come from a publication factory. The order id is
// not part of the command: the store assigns it at insertion time.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID string
	items      []publication.Publication

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order for the given
// publications. Fails with a ValueIsRequiredError when items is empty.
func NewCreateOrderCommand(customerID string, items []publication.Publication) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the opaque customer identifier.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// Items returns a copy of the requested order lines.
func (c CreateOrderCommand) Items() []publication.Publication {
	items := make([]publication.Publication, len(c.items))
	copy(items, c.items)
	return items
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	// Opaque by contract: not validated against any customer registry.
	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []publication.Publication) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = make([]publication.Publication, len(items))
	copy(c.items, items)
	return nil
}
