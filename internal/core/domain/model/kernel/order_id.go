package kernel

import (
	"bookstore/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrOrderIDIsNotConstructed indicates an OrderID zero value that was not
// produced by NewOrderID or OrderIDFromString.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or OrderIDFromString",
)

// orderIDPrefix distinguishes order tokens from other identifiers on the wire.
const orderIDPrefix = "ord-"

// OrderID is the value object identifying an order. The system generates
// tokens of the form "ord-" followed by the first eight hex digits of a
// random v4 UUID; uniqueness over a process lifetime relies on the
// randomness of that suffix, collisions are not handled.
//
// The token format is opaque to every consumer: lookups treat any non-empty
// string as a well-formed candidate and let the registry decide whether it
// exists. Only generation commits to the "ord-" form.
//
// The zero value is invalid; construct through NewOrderID (fresh token) or
// OrderIDFromString (caller-supplied token, e.g. a path parameter).
type OrderID struct {
	value string
}

// NewOrderID generates a fresh order identifier.
func NewOrderID() OrderID {
	return OrderID{value: orderIDPrefix + uuid.NewString()[:8]}
}

// OrderIDFromString wraps a caller-supplied token as an OrderID. The format
// is not inspected beyond non-emptiness; an unknown token simply misses in
// the registry.
func OrderIDFromString(s string) (OrderID, error) {
	if s == "" {
		return OrderID{}, errs.NewValueIsRequiredError("order id")
	}
	return OrderID{value: s}, nil
}

// String returns the token form of the identifier.
func (id OrderID) String() string {
	return id.value
}

// IsEqual reports whether two identifiers carry the same token.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate rejects the zero value; any constructed OrderID is valid.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
