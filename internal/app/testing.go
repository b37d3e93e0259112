//go:build integration
// +build integration

package app

import (
	"context"
	"testing"
	"time"

	"todo_service/internal/domain/auth"
	"todo_service/internal/domain/companies"
	"todo_service/internal/domain/tasks"
	"todo_service/internal/domain/users"
	"todo_service/internal/infrastructure/persistence"
	"todo_service/internal/infrastructure/security"
	"todo_service/internal/pkg/config"
	"todo_service/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices bundles fully wired services over an in-memory sqlite store
type TestServices struct {
	Companies companies.CompanyService
	Users     users.UserService
	Tasks     tasks.TaskService
	Auth      auth.AuthService
	Tokens    auth.TokenService
}

// SetupTestServices wires repositories and services against a fresh database
func SetupTestServices(t *testing.T) *TestServices {
	t.Helper()

	tc := persistence.SetupTestDB(t, config.SqliteDbType)
	log := testutil.SetupTestLogger(t)

	hasher := security.NewBcryptPasswordHasher(4)
	tokens, err := security.NewJWTTokenService("integration-test-secret")
	require.NoError(t, err)

	companyService, err := NewCompanyService(tc.CompanyRepo, tc.UserRepo, log)
	require.NoError(t, err)

	userService, err := NewUserService(tc.UserRepo, tc.CompanyRepo, hasher, log)
	require.NoError(t, err)

	taskService, err := NewTaskService(tc.TaskRepo, tc.UserRepo, log)
	require.NoError(t, err)

	authService, err := NewAuthService(tc.UserRepo, hasher, tokens, 30*time.Minute, log)
	require.NoError(t, err)

	return &TestServices{
		Companies: companyService,
		Users:     userService,
		Tasks:     taskService,
		Auth:      authService,
		Tokens:    tokens,
	}
}

// MustCreateCompany creates a company or fails the test
func MustCreateCompany(t *testing.T, svc *TestServices, name string) *companies.Company {
	t.Helper()

	company, err := svc.Companies.Create(context.Background(), &companies.Company{
		Name:   name,
		Mode:   "public",
		Rating: 3,
	})
	require.NoError(t, err)
	return company
}

// MustCreateUser creates a user with the given credentials or fails the test
func MustCreateUser(t *testing.T, svc *TestServices, username string, companyID uint) *users.User {
	t.Helper()

	user, err := svc.Users.Create(context.Background(), &users.User{
		Username:  username,
		Email:     username + "@example.com",
		FirstName: "Test",
		LastName:  "User",
		IsActive:  true,
		CompanyID: companyID,
	}, "s3cret-password")
	require.NoError(t, err)
	return user
}
