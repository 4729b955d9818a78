package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jeonseguard/community-api/internal/api/metrics"
	"github.com/jeonseguard/community-api/internal/core/domain"
	"github.com/jeonseguard/community-api/internal/core/ports"
)

// RefreshCookie is the cookie carrying the refresh token.
const RefreshCookie = "refresh"

// LogoutPath is the only path+method combination the revoker intercepts.
const LogoutPath = "/logout"

// Logout intercepts POST /logout, validates the presented refresh token and
// revokes it. Every other request passes through untouched. Each failure
// branch terminates the request with 400 and leaves the store unchanged.
func Logout(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if req.URL.Path != LogoutPath || req.Method != http.MethodPost {
				return next(c)
			}

			cookie, err := req.Cookie(RefreshCookie)
			if err != nil || cookie.Value == "" {
				metrics.LogoutsTotal.WithLabelValues("invalid").Inc()
				return c.String(http.StatusBadRequest, "refresh token null")
			}

			if err := auth.Logout(req.Context(), cookie.Value); err != nil {
				switch {
				case errors.Is(err, domain.ErrTokenExpired):
					metrics.LogoutsTotal.WithLabelValues("expired").Inc()
					return c.String(http.StatusBadRequest, "refresh token expired")
				case errors.Is(err, domain.ErrMalformedToken):
					metrics.LogoutsTotal.WithLabelValues("invalid").Inc()
					return c.String(http.StatusBadRequest, "invalid refresh token")
				case errors.Is(err, domain.ErrInvalidTokenCategory):
					metrics.LogoutsTotal.WithLabelValues("wrong_category").Inc()
					return c.String(http.StatusBadRequest, "invalid refresh token category")
				case errors.Is(err, domain.ErrRefreshNotFound):
					metrics.LogoutsTotal.WithLabelValues("not_found").Inc()
					return c.String(http.StatusBadRequest, "refresh token not found in DB")
				default:
					return err
				}
			}

			// Overwrite the client cookie with an immediately expiring
			// empty value.
			c.SetCookie(&http.Cookie{
				Name:     RefreshCookie,
				Value:    "",
				Path:     "/",
				MaxAge:   -1,
				HttpOnly: true,
			})

			metrics.LogoutsTotal.WithLabelValues("success").Inc()
			return c.NoContent(http.StatusOK)
		}
	}
}
