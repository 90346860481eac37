package order

import (
	"errors"
	"fmt"

	"bookstore/internal/pkg/errs"
)

// Status represents the lifecycle state of an order, expressed as a finite
// state machine with an explicit transition table.
//
// State transitions for direct status updates:
//
//	Pending ──> Shipped ──> Delivered
//	   │
//	   └──────> Cancelled
//
// A transition to the same state is always a legal no-op. Delivered and
// Cancelled have no outgoing transitions, modeling the irreversibility of
// delivery and cancellation.
//
// The dedicated cancellation operation (Order.Cancel) is governed
// separately: it succeeds from any state except Delivered, so a Shipped
// order can still be cancelled even though the table above rejects a
// direct Shipped -> Cancelled update.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at order creation.
	// It is unreachable by any transition from another state.
	Pending

	// Shipped indicates the order has left the store.
	Shipped

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled before delivery. Terminal.
	Cancelled
)

// ErrInvalidTransition is the sentinel all transition failures unwrap to.
// The boundary layer classifies on it without reading message text.
var ErrInvalidTransition = errors.New("invalid status transition")

// InvalidTransitionError reports a rejected status change, carrying both
// the attempted source and target states for diagnostics.
type InvalidTransitionError struct {
	From Status
	To   Status
}

// NewInvalidTransitionError creates an InvalidTransitionError for the
// rejected (from, to) pair.
func NewInvalidTransitionError(from, to Status) *InvalidTransitionError {
	return &InvalidTransitionError{From: from, To: to}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s from %s to %s", ErrInvalidTransition, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Shipped:   "SHIPPED",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Shipped:   "SHIPPED",
		Delivered: "DELIVERED",
		Cancelled: "CANCELLED",
	}
}

// getTransitionTable is the authoritative mapping of legal status changes.
// Same-state no-ops are handled separately and are always legal; absence
// from the table means the transition is rejected.
func getTransitionTable() map[Status][]Status {
	return map[Status][]Status{
		Pending:   {Shipped, Cancelled},
		Shipped:   {Delivered},
		Delivered: {},
		Cancelled: {},
	}
}

// StatusFromString parses the wire form of a status ("PENDING", "SHIPPED",
// "DELIVERED", "CANCELLED"). Parsing is strict; any other value is
// rejected before the registry is touched.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is one of the declared states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire form of the status. Implements fmt.Stringer and
// is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status has no outgoing transitions.
func (s Status) IsTerminal() bool {
	targets, ok := getTransitionTable()[s]
	return ok && len(targets) == 0
}

// CanTransitionTo reports whether the table permits moving to target.
// A same-state transition is always permitted.
func (s Status) CanTransitionTo(target Status) bool {
	if s == target {
		return true
	}
	for _, allowed := range getTransitionTable()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo returns the resulting status of a requested change, or an
// InvalidTransitionError carrying (s, target) when the table forbids it.
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return Unknown, NewInvalidTransitionError(s, target)
	}
	return target, nil
}
