package persistence

import (
	"context"
	"errors"
	"fmt"

	"todo_service/internal/domain/companies"
	"todo_service/internal/infrastructure/persistence/models"
	"todo_service/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormCompanyRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCompanyRepository creates a new GORM-based CompanyRepository implementation
func NewGormCompanyRepository(db *gorm.DB, logger logger.Logger) (companies.CompanyRepository, error) {
	return &gormCompanyRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCompanyRepository) Create(ctx context.Context, company *companies.Company) error {
	if err := company.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CompanyModel{}
	model.FromDomain(company)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return companies.ErrNameTaken
		}
		return fmt.Errorf("failed to create company: %w", err)
	}

	company.ID = model.ID
	r.logger.Info("Created company with id ", company.ID)
	return nil
}

func (r *gormCompanyRepository) List(ctx context.Context) ([]*companies.Company, error) {
	var modelList []*models.CompanyModel
	if err := r.db.WithContext(ctx).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch companies: %w", err)
	}

	domainList := make([]*companies.Company, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormCompanyRepository) GetByID(ctx context.Context, companyID uint) (*companies.Company, error) {
	var model models.CompanyModel
	if err := r.db.WithContext(ctx).Where("id = ?", companyID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, companies.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch company: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormCompanyRepository) UpdateByID(ctx context.Context, company *companies.Company) error {
	if err := company.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CompanyModel{}
	model.FromDomain(company)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return companies.ErrNameTaken
		}
		return fmt.Errorf("failed to update company: %w", err)
	}

	r.logger.Info("Updated company with id ", company.ID)
	return nil
}

func (r *gormCompanyRepository) DeleteByID(ctx context.Context, companyID uint) error {
	if err := r.db.WithContext(ctx).Where("id = ?", companyID).Delete(&models.CompanyModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}

	r.logger.Info("Deleted company with id ", companyID)
	return nil
}
