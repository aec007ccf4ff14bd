package http

import (
	"errors"
	"net/http"

	"github.com/sheronjay/supply-chain-management-sys/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps a use-case error to an HTTP status and structured body.
// Precondition failures are client errors: the caller acted on a stale
// snapshot and must re-fetch, not retry blindly.
func writeError(ctx echo.Context, err error) error {
	var conflictErr *errs.StatusConflictError
	if errors.As(err, &conflictErr) {
		return ctx.JSON(http.StatusConflict, errorResponse{
			Code:     "status_conflict",
			Message:  err.Error(),
			Actual:   conflictErr.ActualStatus,
			Expected: conflictErr.ExpectedStatus,
		})
	}

	var capacityErr *errs.CapacityExceededError
	if errors.As(err, &capacityErr) {
		return ctx.JSON(http.StatusConflict, errorResponse{
			Code:      "capacity_exceeded",
			Message:   err.Error(),
			Required:  &capacityErr.Required,
			Available: &capacityErr.Available,
		})
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorResponse{
			Code:    "not_found",
			Message: err.Error(),
		})

	case errors.Is(err, errs.ErrForbidden):
		return ctx.JSON(http.StatusForbidden, errorResponse{
			Code:    "forbidden",
			Message: err.Error(),
		})

	case errors.Is(err, errs.ErrTransientStore):
		return ctx.JSON(http.StatusServiceUnavailable, errorResponse{
			Code:    "store_unavailable",
			Message: "temporary storage failure, retry the request",
		})

	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    "validation_failed",
			Message: err.Error(),
		})
	}

	return ctx.JSON(http.StatusInternalServerError, errorResponse{
		Code:    "internal",
		Message: "internal server error",
	})
}

// writeBadRequest reports a binding or validation failure.
func writeBadRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    "validation_failed",
		Message: err.Error(),
	})
}
