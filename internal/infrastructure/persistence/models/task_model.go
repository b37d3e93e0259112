package models

import (
	"todo_service/internal/domain/tasks"
)

// TaskModel is the GORM database model for tasks (infrastructure concern)
type TaskModel struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Summary     string `gorm:"not null;index;type:varchar(255)"`
	Description string `gorm:"type:varchar(1024)"`
	Status      string `gorm:"index;type:varchar(20)"`
	Priority    int    `gorm:"index;type:integer"`
	UserID      uint   `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (TaskModel) TableName() string {
	return "tasks"
}

// ToDomain converts GORM model to domain entity
func (m *TaskModel) ToDomain() *tasks.Task {
	return &tasks.Task{
		ID:          m.ID,
		Summary:     m.Summary,
		Description: m.Description,
		Status:      m.Status,
		Priority:    m.Priority,
		UserID:      m.UserID,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TaskModel) FromDomain(t *tasks.Task) {
	m.ID = t.ID
	m.Summary = t.Summary
	m.Description = t.Description
	m.Status = t.Status
	m.Priority = t.Priority
	m.UserID = t.UserID
}
