package app

import (
	"context"
	"errors"
	"fmt"

	"todo_service/internal/domain/auth"
	"todo_service/internal/domain/companies"
	"todo_service/internal/domain/users"
	"todo_service/internal/pkg/logger"
)

// userService implements the UserService interface
type userService struct {
	userRepo    users.UserRepository
	companyRepo companies.CompanyRepository
	hasher      auth.PasswordHasher
	logger      logger.Logger
}

// NewUserService creates a new userService instance
func NewUserService(
	userRepo users.UserRepository,
	companyRepo companies.CompanyRepository,
	hasher auth.PasswordHasher,
	logger logger.Logger,
) (users.UserService, error) {
	return &userService{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		hasher:      hasher,
		logger:      logger,
	}, nil
}

// Create stores a new user. The checks run in a fixed order: company
// existence, then username, then email. The unique indexes remain the final
// arbiter when two creates race past the checks.
func (s *userService) Create(ctx context.Context, user *users.User, password string) (*users.User, error) {
	if _, err := s.companyRepo.GetByID(ctx, user.CompanyID); err != nil {
		if errors.Is(err, companies.ErrNotFound) {
			return nil, companies.ErrNotFound
		}
		return nil, fmt.Errorf("failed to check company: %w", err)
	}

	if _, err := s.userRepo.GetByUsername(ctx, user.Username); err == nil {
		return nil, users.ErrUsernameTaken
	} else if !errors.Is(err, users.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	if _, err := s.userRepo.GetByEmail(ctx, user.Email); err == nil {
		return nil, users.ErrEmailTaken
	} else if !errors.Is(err, users.ErrNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = hash

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered: ", user.Username)
	return user, nil
}

// List retrieves all users.
func (s *userService) List(ctx context.Context) ([]*users.User, error) {
	return s.userRepo.List(ctx)
}

// GetByID retrieves a user by its id.
func (s *userService) GetByID(ctx context.Context, userID uint) (*users.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateByID applies a partial update to an existing user. Only fields set in
// update are written; a provided password is re-hashed before storage.
func (s *userService) UpdateByID(ctx context.Context, userID uint, update *users.UserUpdate) (*users.User, error) {
	existing, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Username != nil {
		existing.Username = *update.Username
	}
	if update.Email != nil {
		existing.Email = *update.Email
	}
	if update.FirstName != nil {
		existing.FirstName = *update.FirstName
	}
	if update.LastName != nil {
		existing.LastName = *update.LastName
	}
	if update.IsActive != nil {
		existing.IsActive = *update.IsActive
	}
	if update.IsAdmin != nil {
		existing.IsAdmin = *update.IsAdmin
	}
	if update.CompanyID != nil {
		if _, err := s.companyRepo.GetByID(ctx, *update.CompanyID); err != nil {
			return nil, err
		}
		existing.CompanyID = *update.CompanyID
	}
	if update.Password != nil {
		hash, err := s.hasher.Hash(*update.Password)
		if err != nil {
			return nil, err
		}
		existing.PasswordHash = hash
	}

	if err := s.userRepo.UpdateByID(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteByID removes a user and its tasks and returns the deleted record.
func (s *userService) DeleteByID(ctx context.Context, userID uint) (*users.User, error) {
	existing, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.DeleteByID(ctx, userID); err != nil {
		return nil, err
	}

	s.logger.Info("User deleted: ", existing.Username)
	return existing, nil
}
