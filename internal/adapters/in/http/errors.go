package http

import (
	"errors"
	"net/http"

	"driverhub/internal/core/ports"
	"driverhub/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps domain and infrastructure errors to HTTP statuses.
//
// NotFound → 404, Conflict (claim lost or redundant transition) → 409,
// PermissionDenied (not the claimant) → 403, no record for the actor →
// 403, duplicate identity records → 500 (integrity failure), store
// unavailable → 503, validation failures → 400.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrPermissionDenied):
		status = http.StatusForbidden
	case errors.Is(err, ports.ErrActorHasNoRecord):
		status = http.StatusForbidden
	case errors.Is(err, ports.ErrMultipleRecordsForIdentity):
		status = http.StatusInternalServerError
	case errors.Is(err, errs.ErrStoreUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}
