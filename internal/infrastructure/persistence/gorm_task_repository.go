package persistence

import (
	"context"
	"errors"
	"fmt"

	"todo_service/internal/domain/tasks"
	"todo_service/internal/infrastructure/persistence/models"
	"todo_service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormTaskRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormTaskRepository creates a new GORM-based TaskRepository implementation
func NewGormTaskRepository(db *gorm.DB, logger logger.Logger) (tasks.TaskRepository, error) {
	return &gormTaskRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormTaskRepository) Create(ctx context.Context, task *tasks.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TaskModel{}
	model.FromDomain(task)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return tasks.ErrUserNotFound
		}
		return fmt.Errorf("failed to create task: %w", err)
	}

	task.ID = model.ID
	r.logger.Info("Created task with id ", task.ID)
	return nil
}

func (r *gormTaskRepository) List(ctx context.Context) ([]*tasks.Task, error) {
	var modelList []*models.TaskModel
	if err := r.db.WithContext(ctx).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch tasks: %w", err)
	}

	domainList := make([]*tasks.Task, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormTaskRepository) ListByUserID(ctx context.Context, userID uint) ([]*tasks.Task, error) {
	var modelList []*models.TaskModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch tasks for user %d: %w", userID, err)
	}

	domainList := make([]*tasks.Task, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormTaskRepository) GetByID(ctx context.Context, taskID uint) (*tasks.Task, error) {
	var model models.TaskModel
	if err := r.db.WithContext(ctx).Where("id = ?", taskID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, tasks.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch task: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormTaskRepository) UpdateByID(ctx context.Context, task *tasks.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.TaskModel{}
	model.FromDomain(task)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	r.logger.Info("Updated task with id ", task.ID)
	return nil
}

func (r *gormTaskRepository) DeleteByID(ctx context.Context, taskID uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", taskID).Delete(&models.TaskModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	r.logger.Info("Deleted task with id ", taskID)
	return nil
}
