package companies

import (
	"context"
)

// CompanyService defines the application-level operations on companies.
type CompanyService interface {
	// Create stores a new company. It returns ErrNameTaken when the name is
	// already in use.
	Create(ctx context.Context, company *Company) (*Company, error)

	// List retrieves all companies.
	List(ctx context.Context) ([]*Company, error)

	// GetByID retrieves a company by its id. It returns ErrNotFound when the
	// id does not resolve.
	GetByID(ctx context.Context, companyID uint) (*Company, error)

	// UpdateByID overwrites the base fields of the company with the given id.
	UpdateByID(ctx context.Context, companyID uint, company *Company) (*Company, error)

	// DeleteByID removes a company and returns the deleted record. It returns
	// ErrHasUsers when users still reference the company.
	DeleteByID(ctx context.Context, companyID uint) (*Company, error)
}

// CompanyRepository defines the interface for company persistence operations
type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	List(ctx context.Context) ([]*Company, error)
	GetByID(ctx context.Context, companyID uint) (*Company, error)
	UpdateByID(ctx context.Context, company *Company) error
	DeleteByID(ctx context.Context, companyID uint) error
}
