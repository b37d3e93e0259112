package security

import (
	"errors"
	"fmt"
	"time"

	"todo_service/internal/domain/auth"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type jwtTokenService struct {
	secret []byte
}

// NewJWTTokenService creates a TokenService signing with HS256 and the given
// secret. The secret is fixed for the process lifetime.
func NewJWTTokenService(secret string) (auth.TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret must not be empty")
	}
	return &jwtTokenService{secret: []byte(secret)}, nil
}

func (s *jwtTokenService) Issue(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *jwtTokenService) Verify(tokenStr string) (*auth.Claims, error) {
	var claims jwt.RegisteredClaims
	tok, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, auth.ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, auth.ErrInvalidToken
	}

	verified := &auth.Claims{
		Subject: claims.Subject,
		ID:      claims.ID,
	}
	if claims.IssuedAt != nil {
		verified.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		verified.ExpiresAt = claims.ExpiresAt.Time
	}

	return verified, nil
}
