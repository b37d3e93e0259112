package auth

import (
	"context"
	"time"

	"todo_service/internal/domain/users"
)

// AuthService defines login and token verification operations.
type AuthService interface {
	// Authenticate looks up the user by username and verifies the password.
	// It returns ErrUnknownUser or ErrInvalidPassword on failure; callers must
	// present both identically.
	Authenticate(ctx context.Context, username, password string) (*users.User, error)

	// Login authenticates the credentials and issues a signed, time-limited
	// access token with the username as subject.
	Login(ctx context.Context, username, password string) (*AccessToken, error)

	// ResolveUser verifies the token's signature and expiry and resolves its
	// subject to an existing user. Any failure yields ErrInvalidToken.
	ResolveUser(ctx context.Context, token string) (*users.User, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

// TokenService issues and verifies signed tokens.
type TokenService interface {
	// Issue produces a signed token with the given subject and time-to-live.
	Issue(subject string, ttl time.Duration) (string, error)

	// Verify checks signature and expiry and returns the embedded claims.
	Verify(token string) (*Claims, error)
}
