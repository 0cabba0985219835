package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Actor identity arrives from the external identity collaborator as a
// stable actor id plus a role. The middleware only checks presence and
// role; mapping the id to a Driver or Shop record happens inside each
// operation via the identity resolver.
const (
	HeaderActorID   = "X-Actor-Id"
	HeaderActorRole = "X-Actor-Role"

	RoleDriver = "driver"
	RoleShop   = "shop"

	actorIDContextKey = "actorID"
)

// RequireRole rejects requests without an actor id (401) or with the
// wrong role (403) before the handler runs.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			actorID := ctx.Request().Header.Get(HeaderActorID)
			if actorID == "" {
				return ctx.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Missing " + HeaderActorID + " header",
				})
			}

			if ctx.Request().Header.Get(HeaderActorRole) != role {
				return ctx.JSON(http.StatusForbidden, ErrorResponse{
					Code:    http.StatusForbidden,
					Message: "Operation requires role " + role,
				})
			}

			ctx.Set(actorIDContextKey, actorID)
			return next(ctx)
		}
	}
}

// StoreTimeout puts a deadline on the request context so store calls
// cannot block past the configured bound. An expired deadline surfaces
// through the store layer as StoreUnavailableError (503).
func StoreTimeout(timeout time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), timeout)
			defer cancel()

			ctx.SetRequest(ctx.Request().WithContext(reqCtx))
			return next(ctx)
		}
	}
}

// actorID returns the authenticated actor id stored by RequireRole.
func actorID(ctx echo.Context) string {
	id, _ := ctx.Get(actorIDContextKey).(string)
	return id
}
