package tasks

import (
	"context"
)

// TaskService defines the application-level operations on tasks.
type TaskService interface {
	// Create stores a new task. It returns ErrUserNotFound when the referenced
	// user does not exist.
	Create(ctx context.Context, task *Task) (*Task, error)

	// List retrieves all tasks.
	List(ctx context.Context) ([]*Task, error)

	// ListByUserID retrieves all tasks assigned to the given user.
	ListByUserID(ctx context.Context, userID uint) ([]*Task, error)

	// GetByID retrieves a task by its id. It returns ErrNotFound when the id
	// does not resolve.
	GetByID(ctx context.Context, taskID uint) (*Task, error)

	// UpdateByID replaces the base fields (summary, description, status,
	// priority) of the task with the given id.
	UpdateByID(ctx context.Context, taskID uint, task *Task) (*Task, error)

	// DeleteByID removes a task and returns the deleted record.
	DeleteByID(ctx context.Context, taskID uint) (*Task, error)
}

// TaskRepository defines the interface for task persistence operations
type TaskRepository interface {
	Create(ctx context.Context, task *Task) error
	List(ctx context.Context) ([]*Task, error)
	ListByUserID(ctx context.Context, userID uint) ([]*Task, error)
	GetByID(ctx context.Context, taskID uint) (*Task, error)
	UpdateByID(ctx context.Context, task *Task) error
	DeleteByID(ctx context.Context, taskID uint) error
}
