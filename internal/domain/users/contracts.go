package users

import (
	"context"
)

// UserService defines the application-level operations on users.
type UserService interface {
	// Create stores a new user after checking, in order, that the referenced
	// company exists, the username is free and the email is free. The plaintext
	// password is hashed before storage.
	Create(ctx context.Context, user *User, password string) (*User, error)

	// List retrieves all users.
	List(ctx context.Context) ([]*User, error)

	// GetByID retrieves a user by its id. It returns ErrNotFound when the id
	// does not resolve.
	GetByID(ctx context.Context, userID uint) (*User, error)

	// UpdateByID applies a partial update: only fields set in update are
	// written. A provided password is re-hashed.
	UpdateByID(ctx context.Context, userID uint, update *UserUpdate) (*User, error)

	// DeleteByID removes a user together with its tasks and returns the
	// deleted record.
	DeleteByID(ctx context.Context, userID uint) (*User, error)
}

// UserRepository defines the interface for user persistence operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	List(ctx context.Context) ([]*User, error)
	GetByID(ctx context.Context, userID uint) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	UpdateByID(ctx context.Context, user *User) error
	// DeleteByID removes the user and its tasks in one transaction.
	DeleteByID(ctx context.Context, userID uint) error
	CountByCompanyID(ctx context.Context, companyID uint) (int64, error)
}
