package app

import (
	"context"
	"errors"
	"fmt"

	"todo_service/internal/domain/tasks"
	"todo_service/internal/domain/users"
	"todo_service/internal/pkg/logger"
)

// taskService implements the TaskService interface
type taskService struct {
	taskRepo tasks.TaskRepository
	userRepo users.UserRepository
	logger   logger.Logger
}

// NewTaskService creates a new taskService instance
func NewTaskService(
	taskRepo tasks.TaskRepository,
	userRepo users.UserRepository,
	logger logger.Logger,
) (tasks.TaskService, error) {
	return &taskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
		logger:   logger,
	}, nil
}

// Create stores a new task after checking that the assigned user exists.
func (s *taskService) Create(ctx context.Context, task *tasks.Task) (*tasks.Task, error) {
	if _, err := s.userRepo.GetByID(ctx, task.UserID); err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return nil, tasks.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to check user: %w", err)
	}

	if task.Status == "" {
		task.Status = tasks.StatusPending
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// List retrieves all tasks.
func (s *taskService) List(ctx context.Context) ([]*tasks.Task, error) {
	return s.taskRepo.List(ctx)
}

// ListByUserID retrieves all tasks assigned to the given user.
func (s *taskService) ListByUserID(ctx context.Context, userID uint) ([]*tasks.Task, error) {
	return s.taskRepo.ListByUserID(ctx, userID)
}

// GetByID retrieves a task by its id.
func (s *taskService) GetByID(ctx context.Context, taskID uint) (*tasks.Task, error) {
	return s.taskRepo.GetByID(ctx, taskID)
}

// UpdateByID replaces the base fields of an existing task. The assignment to
// a user is not changed by an update.
func (s *taskService) UpdateByID(ctx context.Context, taskID uint, task *tasks.Task) (*tasks.Task, error) {
	existing, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	existing.Summary = task.Summary
	existing.Description = task.Description
	existing.Status = task.Status
	existing.Priority = task.Priority

	if err := s.taskRepo.UpdateByID(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteByID removes a task and returns the deleted record.
func (s *taskService) DeleteByID(ctx context.Context, taskID uint) (*tasks.Task, error) {
	existing, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err := s.taskRepo.DeleteByID(ctx, taskID); err != nil {
		return nil, err
	}

	return existing, nil
}
