package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/jeonseguard/community-api/internal/core/domain"
	"github.com/jeonseguard/community-api/internal/core/ports"
)

// UserVerifier verifies credentials against the user store with bcrypt.
// A user carries exactly one role, and that role is what ends up in the
// token claims.
type UserVerifier struct {
	users ports.UserRepository
}

func NewUserVerifier(users ports.UserRepository) *UserVerifier {
	return &UserVerifier{users: users}
}

func (v *UserVerifier) Verify(ctx context.Context, username, password string) (*domain.Identity, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := v.users.FindByUsername(ctx, username)
	if err != nil {
		// An unknown username reads the same as a wrong password; the
		// login response must not reveal which one it was.
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return &domain.Identity{Username: user.Username, Role: user.Role}, nil
}
