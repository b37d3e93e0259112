package models

import (
	"todo_service/internal/domain/companies"
)

// CompanyModel is the GORM database model for companies (infrastructure concern)
type CompanyModel struct {
	ID          uint   `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"not null;uniqueIndex;type:varchar(255)"`
	Description string `gorm:"type:varchar(1024)"`
	Mode        string `gorm:"type:varchar(20)"`
	Rating      int    `gorm:"type:integer"`
}

// TableName specifies the table name for GORM
func (CompanyModel) TableName() string {
	return "companies"
}

// ToDomain converts GORM model to domain entity
func (m *CompanyModel) ToDomain() *companies.Company {
	return &companies.Company{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Mode:        m.Mode,
		Rating:      m.Rating,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CompanyModel) FromDomain(c *companies.Company) {
	m.ID = c.ID
	m.Name = c.Name
	m.Description = c.Description
	m.Mode = c.Mode
	m.Rating = c.Rating
}
