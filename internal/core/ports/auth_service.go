package ports

import (
	"context"

	"github.com/jeonseguard/community-api/internal/core/domain"
)

// IdentityVerifier checks a username/password pair and returns the verified
// identity. It is the only collaborator the login flow consults before
// minting tokens.
type IdentityVerifier interface {
	Verify(ctx context.Context, username, password string) (*domain.Identity, error)
}

// LoginResult carries the freshly minted token pair back to the handler.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	Username     string
	Role         string
}

type AuthService interface {
	Signup(ctx context.Context, username, email, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Logout(ctx context.Context, refresh string) error
}
