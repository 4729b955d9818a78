package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jeonseguard/community-api/internal/api/metrics"
	"github.com/jeonseguard/community-api/internal/core/domain"
	"github.com/jeonseguard/community-api/internal/core/ports"
)

// AccessHeader is the request header carrying the access token.
const AccessHeader = "access"

// PrincipalKey is the context key under which the authenticated principal is
// stored for the rest of the request pipeline.
const PrincipalKey = "principal"

// Auth validates the access token on every inbound request and attaches the
// resulting principal to the request context. A request without the header
// passes through unauthenticated; route-level authorization decides whether
// that is acceptable. Validation is entirely local: no store or network I/O.
func Auth(codec ports.TokenCodec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(AccessHeader)
			if token == "" {
				return next(c)
			}

			if err := codec.IsExpired(token); err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					metrics.TokenRejectionsTotal.WithLabelValues("expired").Inc()
					return c.String(http.StatusUnauthorized, "access token expired")
				}
				metrics.TokenRejectionsTotal.WithLabelValues("malformed").Inc()
				return c.String(http.StatusUnauthorized, "invalid access token")
			}

			claims, err := codec.Decode(token)
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues("malformed").Inc()
				return c.String(http.StatusUnauthorized, "invalid access token")
			}

			// A refresh token presented as an access token is rejected here
			// regardless of its validity otherwise.
			if claims.Category != domain.TokenCategoryAccess {
				metrics.TokenRejectionsTotal.WithLabelValues("wrong_category").Inc()
				return c.String(http.StatusUnauthorized, "invalid access token category")
			}

			c.Set(PrincipalKey, domain.Principal{
				Username: claims.Username,
				Role:     claims.Role,
			})
			return next(c)
		}
	}
}
