package domain

import (
	"errors"
	"time"
)

// TokenCategory discriminates the two credential kinds carried in a JWT.
// The category claim is the only thing that separates an access token from a
// refresh token on the wire; endpoints must check it before trusting either.
type TokenCategory = string

const (
	TokenCategoryAccess  TokenCategory = "access"
	TokenCategoryRefresh TokenCategory = "refresh"
)

var ErrMalformedToken = errors.New("malformed token")
var ErrTokenExpired = errors.New("token expired")
var ErrInvalidTokenCategory = errors.New("invalid token category")
var ErrRefreshNotFound = errors.New("refresh token not found")

// TokenClaims is the decoded claim set of a signed token. Absent claims
// decode to zero values; callers must check before use.
type TokenClaims struct {
	Category  string
	Username  string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// RefreshRecord is the persisted row that keeps a refresh token revocable.
// One row per successful login; deleting the row is the only revocation
// mechanism.
type RefreshRecord struct {
	Username   string    `json:"username" bson:"username"`
	Refresh    string    `json:"refresh" bson:"refresh"`
	Expiration time.Time `json:"expiration" bson:"expiration"`
}

// Principal is the request-scoped identity reconstructed from a validated
// access token. It is never stored server-side.
type Principal struct {
	Username string
	Role     string
}

// Authority returns the single granted authority for the principal.
func (p Principal) Authority() string {
	return "ROLE_" + p.Role
}

// Identity is what the identity verifier returns on a successful
// username/password check.
type Identity struct {
	Username string
	Role     string
}
