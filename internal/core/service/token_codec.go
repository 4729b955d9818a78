package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jeonseguard/community-api/internal/core/domain"
)

// TokenCodec issues and verifies HS256-signed tokens. The signing key is
// loaded once at startup and never rotated at runtime.
type TokenCodec struct {
	key []byte
}

func NewTokenCodec(secret string) *TokenCodec {
	return &TokenCodec{key: []byte(secret)}
}

// Issue produces a signed token whose claims are exactly category, username
// and role, issued now and expiring after ttl. Both token variants share
// this encoding; only category and ttl differ.
func (c *TokenCodec) Issue(category, username, role string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"category": category,
		"username": username,
		"role":     role,
		"iat":      now.Unix(),
		"exp":      now.Add(ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.key)
}

// Decode verifies signature and structure and returns the claim set. Expiry
// is deliberately not validated here; callers that care use IsExpired.
// Absent claims come back as zero values.
func (c *TokenCodec) Decode(token string) (*domain.TokenClaims, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, c.keyFunc, jwt.WithoutClaimsValidation())
	if err != nil || !parsed.Valid {
		return nil, domain.ErrMalformedToken
	}

	out := &domain.TokenClaims{
		Category: stringClaim(claims, "category"),
		Username: stringClaim(claims, "username"),
		Role:     stringClaim(claims, "role"),
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		out.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}

// IsExpired reports expiry as an error: nil inside the validity window,
// domain.ErrTokenExpired once exp lies strictly before now. A token that
// cannot be verified at all yields domain.ErrMalformedToken.
func (c *TokenCodec) IsExpired(token string) error {
	claims, err := c.Decode(token)
	if err != nil {
		return err
	}
	if claims.ExpiresAt.IsZero() || claims.ExpiresAt.Before(time.Now()) {
		return domain.ErrTokenExpired
	}
	return nil
}

func (c *TokenCodec) keyFunc(token *jwt.Token) (interface{}, error) {
	if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return c.key, nil
}

func stringClaim(claims jwt.MapClaims, name string) string {
	v, _ := claims[name].(string)
	return v
}
