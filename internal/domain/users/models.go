package users

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// User represents an application user belonging to a company.
// PasswordHash holds the bcrypt hash, never a plaintext password.
type User struct {
	ID           uint
	Username     string `validate:"required"`
	Email        string `validate:"required,email"`
	PasswordHash string
	FirstName    string `validate:"required"`
	LastName     string `validate:"required"`
	IsActive     bool
	IsAdmin      bool
	CompanyID    uint `validate:"required"`
}

// Validate for validating User struct
func (u *User) Validate() error {
	validate := validator.New()

	err := validate.Struct(u)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// UserUpdate carries a partial update: only non-nil fields are applied.
type UserUpdate struct {
	Username  *string
	Email     *string
	FirstName *string
	LastName  *string
	IsActive  *bool
	IsAdmin   *bool
	CompanyID *uint
	Password  *string
}
