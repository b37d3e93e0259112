package companies

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Company represents a company entity that users belong to.
type Company struct {
	ID          uint
	Name        string `validate:"required"`
	Description string
	Mode        string `validate:"omitempty,oneof=public private"`
	Rating      int    `validate:"omitempty,min=1,max=5"`
}

// Validate for validating Company struct
func (c *Company) Validate() error {
	validate := validator.New()

	err := validate.Struct(c)
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
