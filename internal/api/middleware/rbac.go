package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jeonseguard/community-api/internal/core/domain"
)

// RequireAuthority enforces that the request carries an authenticated
// principal holding one of the allowed authorities (e.g. "ROLE_USER").
// A request that sailed through Auth without a token has no principal and is
// rejected with 401 here; a principal with the wrong authority gets 403.
func RequireAuthority(allowed ...string) echo.MiddlewareFunc {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := c.Get(PrincipalKey).(domain.Principal)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if _, ok := set[principal.Authority()]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
