// Package errs provides the standardized error types used across the
// bookstore application.
//
// Each failure kind follows the same pattern: a sentinel error variable
// (e.g. ErrObjectNotFound), a struct type carrying detail fields, paired
// constructors with and without a cause, an Error() method for formatting,
// and an Unwrap() method so errors.Is can classify the failure.
//
// The HTTP boundary relies on these kinds (rather than message text) to
// choose outward status codes:
//   - ValueIsRequiredError / ValueIsInvalidError: structurally invalid input
//   - ObjectNotFoundError: referenced object does not exist
//
// Domain-specific failures with extra payload, such as illegal order status
// transitions, live next to their aggregate and follow the same sentinel +
// struct + Unwrap convention.
package errs
