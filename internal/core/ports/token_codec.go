package ports

import (
	"time"

	"github.com/jeonseguard/community-api/internal/core/domain"
)

// TokenCodec signs and verifies the self-contained tokens used for
// authentication. It has no dependencies and performs no I/O.
type TokenCodec interface {
	// Issue produces a signed token carrying exactly the category, username
	// and role claims, issued now and expiring after ttl.
	Issue(category, username, role string, ttl time.Duration) (string, error)
	// Decode verifies signature and structure and returns the claim set.
	// It does not validate expiry; use IsExpired for that.
	Decode(token string) (*domain.TokenClaims, error)
	// IsExpired returns nil while the token is inside its validity window,
	// domain.ErrTokenExpired once it is past expiry, and
	// domain.ErrMalformedToken when the token cannot be verified at all.
	IsExpired(token string) error
}
