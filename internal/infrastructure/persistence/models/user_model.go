package models

import (
	"todo_service/internal/domain/users"
)

// UserModel is the GORM database model for users (infrastructure concern)
type UserModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Username  string `gorm:"not null;uniqueIndex;type:varchar(255)"`
	Email     string `gorm:"not null;uniqueIndex;type:varchar(255)"`
	Password  string `gorm:"not null;type:varchar(255)"`
	FirstName string `gorm:"type:varchar(255)"`
	LastName  string `gorm:"type:varchar(255)"`
	IsActive  bool   `gorm:"not null;default:true"`
	IsAdmin   bool   `gorm:"not null;default:false"`
	CompanyID uint   `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.Password,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		IsActive:     m.IsActive,
		IsAdmin:      m.IsAdmin,
		CompanyID:    m.CompanyID,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Username = u.Username
	m.Email = u.Email
	m.Password = u.PasswordHash
	m.FirstName = u.FirstName
	m.LastName = u.LastName
	m.IsActive = u.IsActive
	m.IsAdmin = u.IsAdmin
	m.CompanyID = u.CompanyID
}
