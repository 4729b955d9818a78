package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jeonseguard/community-api/internal/core/domain"
	"github.com/jeonseguard/community-api/internal/core/ports"
)

// AuthService implements signup, login and logout. Login mints an
// access/refresh token pair and records the refresh token; logout is the
// only revocation path.
type AuthService struct {
	users      ports.UserRepository
	refresh    ports.RefreshRepository
	codec      ports.TokenCodec
	verifier   ports.IdentityVerifier
	accessTTL  time.Duration
	refreshTTL time.Duration
	logger     zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	refresh ports.RefreshRepository,
	codec ports.TokenCodec,
	verifier ports.IdentityVerifier,
	accessTTL, refreshTTL time.Duration,
	logger zerolog.Logger,
) *AuthService {
	if accessTTL <= 0 {
		accessTTL = 10 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 24 * time.Hour
	}
	return &AuthService{
		users:      users,
		refresh:    refresh,
		codec:      codec,
		verifier:   verifier,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		logger:     logger,
	}
}

// RefreshTTL exposes the configured refresh lifetime so the handler can set
// a matching cookie max-age.
func (s *AuthService) RefreshTTL() time.Duration {
	return s.refreshTTL
}

func (s *AuthService) Signup(ctx context.Context, username, email, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Login verifies the credentials, mints both tokens and records the refresh
// token. Each login inserts its own row; concurrent sessions for the same
// user are tracked independently.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	identity, err := s.verifier.Verify(ctx, username, password)
	if err != nil {
		return nil, err
	}

	access, err := s.codec.Issue(domain.TokenCategoryAccess, identity.Username, identity.Role, s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.codec.Issue(domain.TokenCategoryRefresh, identity.Username, identity.Role, s.refreshTTL)
	if err != nil {
		return nil, err
	}

	record := &domain.RefreshRecord{
		Username:   identity.Username,
		Refresh:    refresh,
		Expiration: time.Now().UTC().Add(s.refreshTTL),
	}
	if err := s.refresh.Insert(ctx, record); err != nil {
		s.logger.Error().Err(err).Str("username", identity.Username).Msg("failed to record refresh token")
		return nil, err
	}

	s.logger.Info().Str("username", identity.Username).Str("role", identity.Role).Msg("login succeeded")

	return &ports.LoginResult{
		AccessToken:  access,
		RefreshToken: refresh,
		Username:     identity.Username,
		Role:         identity.Role,
	}, nil
}

// Logout validates the presented refresh token and revokes it. Every check
// runs before the store is touched, so a failed attempt never mutates
// anything. The delete itself is conditional: when the row is already gone
// the attempt fails with domain.ErrRefreshNotFound.
func (s *AuthService) Logout(ctx context.Context, refresh string) error {
	if err := s.codec.IsExpired(refresh); err != nil {
		return err
	}

	claims, err := s.codec.Decode(refresh)
	if err != nil {
		return err
	}
	if claims.Category != domain.TokenCategoryRefresh {
		return domain.ErrInvalidTokenCategory
	}

	removed, err := s.refresh.Delete(ctx, refresh)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrRefreshNotFound
	}

	s.logger.Info().Str("username", claims.Username).Msg("session revoked")
	return nil
}
