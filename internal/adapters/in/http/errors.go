package http

import (
	"errors"
	"net/http"

	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps a typed core failure to the uniform error body.
// Classification runs on the error chain, so wrapped causes still land in
// the right bucket:
//
//	ObjectNotFoundError      -> 404
//	InvalidTransitionError   -> 400
//	ValueIsRequiredError     -> 400
//	ValueIsInvalidError      -> 400
//	anything else            -> 500 with a generic message
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return respondErrorMessage(ctx, http.StatusNotFound, "Order not found")
	case errors.Is(err, order.ErrInvalidTransition):
		return respondErrorMessage(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		return respondErrorMessage(ctx, http.StatusBadRequest, err.Error())
	default:
		return respondErrorMessage(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

// isDeliveredCancellation reports whether err is the refusal to cancel a
// delivered order.
func isDeliveredCancellation(err error) bool {
	var transitionErr *order.InvalidTransitionError
	if !errors.As(err, &transitionErr) {
		return false
	}
	return transitionErr.From == order.Delivered && transitionErr.To == order.Cancelled
}

func respondErrorMessage(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: message,
	})
}
