package tasks

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Task statuses
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Task represents a task assigned to a user. Priority runs from 1 (high)
// to 5 (low).
type Task struct {
	ID          uint
	Summary     string `validate:"required"`
	Description string
	Status      string `validate:"omitempty,oneof=pending in-progress completed"`
	Priority    int    `validate:"required,min=1,max=5"`
	UserID      uint   `validate:"required"`
}

// Validate for validating Task struct
func (t *Task) Validate() error {
	validate := validator.New()

	err := validate.Struct(t)
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
