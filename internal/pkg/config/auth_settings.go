package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// AuthSettings holds the token signing and password hashing configuration.
// The secret and TTL are fixed for the process lifetime but carried in an
// explicit settings object instead of package-level state.
type AuthSettings struct {
	Secret          string `mapstructure:"secret" validate:"required,min=16"`
	TokenTTLMinutes int    `mapstructure:"token_ttl_minutes" validate:"required,min=1,max=1440"`
	BcryptCost      int    `mapstructure:"bcrypt_cost"`
}

// TokenTTL returns the configured token lifetime as a duration.
func (s *AuthSettings) TokenTTL() time.Duration {
	return time.Duration(s.TokenTTLMinutes) * time.Minute
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}

	if s.BcryptCost != 0 && (s.BcryptCost < 4 || s.BcryptCost > 31) {
		return fmt.Errorf("bcrypt cost must be between 4 and 31")
	}

	return nil
}
