package app

import (
	"context"
	"errors"
	"time"

	"todo_service/internal/domain/auth"
	"todo_service/internal/domain/users"
	"todo_service/internal/pkg/logger"
)

// authService implements the AuthService interface
type authService struct {
	userRepo users.UserRepository
	hasher   auth.PasswordHasher
	tokens   auth.TokenService
	tokenTTL time.Duration
	logger   logger.Logger
}

// NewAuthService creates a new authService instance. The token lifetime is
// fixed at construction.
func NewAuthService(
	userRepo users.UserRepository,
	hasher auth.PasswordHasher,
	tokens auth.TokenService,
	tokenTTL time.Duration,
	logger logger.Logger,
) (auth.AuthService, error) {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		tokenTTL: tokenTTL,
		logger:   logger,
	}, nil
}

// Authenticate looks up the user by username and verifies the password.
// The two failure modes are distinct errors internally; callers must present
// them identically.
func (s *authService) Authenticate(ctx context.Context, username, password string) (*users.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, auth.ErrUnknownUser
		}
		return nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, auth.ErrInvalidPassword
	}

	return user, nil
}

// Login authenticates the credentials and issues a bearer token with the
// username as subject.
func (s *authService) Login(ctx context.Context, username, password string) (*auth.AccessToken, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.Issue(user.Username, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Issued token for user ", user.Username)
	return &auth.AccessToken{
		Token: token,
		Type:  auth.TokenTypeBearer,
	}, nil
}

// ResolveUser verifies the token and resolves its subject to an existing
// user. Tokens stay valid for their full lifetime; a deleted user simply
// stops resolving.
func (s *authService) ResolveUser(ctx context.Context, token string) (*users.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}

	user, err := s.userRepo.GetByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, auth.ErrInvalidToken
		}
		return nil, err
	}

	return user, nil
}
