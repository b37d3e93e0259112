package app

import (
	"context"
	"fmt"

	"todo_service/internal/domain/companies"
	"todo_service/internal/domain/users"
	"todo_service/internal/pkg/logger"
)

// companyService implements the CompanyService interface
type companyService struct {
	companyRepo companies.CompanyRepository
	userRepo    users.UserRepository
	logger      logger.Logger
}

// NewCompanyService creates a new companyService instance
func NewCompanyService(
	companyRepo companies.CompanyRepository,
	userRepo users.UserRepository,
	logger logger.Logger,
) (companies.CompanyService, error) {
	return &companyService{
		companyRepo: companyRepo,
		userRepo:    userRepo,
		logger:      logger,
	}, nil
}

// Create stores a new company. The unique index on the name is the final
// arbiter for conflicting writes; the repository reports it as ErrNameTaken.
func (s *companyService) Create(ctx context.Context, company *companies.Company) (*companies.Company, error) {
	if err := s.companyRepo.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// List retrieves all companies.
func (s *companyService) List(ctx context.Context) ([]*companies.Company, error) {
	return s.companyRepo.List(ctx)
}

// GetByID retrieves a company by its id.
func (s *companyService) GetByID(ctx context.Context, companyID uint) (*companies.Company, error) {
	return s.companyRepo.GetByID(ctx, companyID)
}

// UpdateByID overwrites the base fields of an existing company.
func (s *companyService) UpdateByID(ctx context.Context, companyID uint, company *companies.Company) (*companies.Company, error) {
	existing, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	existing.Name = company.Name
	existing.Description = company.Description
	existing.Mode = company.Mode
	existing.Rating = company.Rating

	if err := s.companyRepo.UpdateByID(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteByID removes a company that no user references anymore and returns
// the deleted record.
func (s *companyService) DeleteByID(ctx context.Context, companyID uint) (*companies.Company, error) {
	existing, err := s.companyRepo.GetByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	count, err := s.userRepo.CountByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to check company users: %w", err)
	}
	if count > 0 {
		return nil, companies.ErrHasUsers
	}

	if err := s.companyRepo.DeleteByID(ctx, companyID); err != nil {
		return nil, err
	}

	s.logger.Info("Company deleted: ", existing.Name)
	return existing, nil
}
