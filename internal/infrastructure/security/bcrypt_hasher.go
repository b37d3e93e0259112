package security

import (
	"fmt"

	"todo_service/internal/domain/auth"

	"golang.org/x/crypto/bcrypt"
)

type bcryptPasswordHasher struct {
	cost int
}

// NewBcryptPasswordHasher creates a PasswordHasher backed by bcrypt. A cost
// of 0 selects bcrypt.DefaultCost.
func NewBcryptPasswordHasher(cost int) auth.PasswordHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &bcryptPasswordHasher{cost: cost}
}

func (h *bcryptPasswordHasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func (h *bcryptPasswordHasher) Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
