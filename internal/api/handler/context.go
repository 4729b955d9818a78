package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jeonseguard/community-api/internal/api/middleware"
	"github.com/jeonseguard/community-api/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Auth middleware.
// Handlers for authenticated routes call this before any service call; its
// absence means the route was reached without a valid access token.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	principal, ok := c.Get(middleware.PrincipalKey).(domain.Principal)
	if !ok {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return principal, nil
}
