//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"

	"todo_service/internal/domain/companies"
	"todo_service/internal/domain/tasks"
	"todo_service/internal/domain/users"
	"todo_service/internal/infrastructure/persistence/models"
	"todo_service/internal/pkg/config"
	"todo_service/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB          *gorm.DB
	CompanyRepo companies.CompanyRepository
	UserRepo    users.UserRepository
	TaskRepo    tasks.TaskRepository
}

// SetupTestDB initializes a test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	err = db.AutoMigrate(&models.CompanyModel{}, &models.UserModel{}, &models.TaskModel{})
	require.NoError(t, err, "Failed to migrate schema")

	log := testutil.SetupTestLogger(t)

	companyRepo, err := NewGormCompanyRepository(db, log)
	require.NoError(t, err, "Failed to create company repository")

	userRepo, err := NewGormUserRepository(db, log)
	require.NoError(t, err, "Failed to create user repository")

	taskRepo, err := NewGormTaskRepository(db, log)
	require.NoError(t, err, "Failed to create task repository")

	return &TestContext{
		DB:          db,
		CompanyRepo: companyRepo,
		UserRepo:    userRepo,
		TaskRepo:    taskRepo,
	}
}

// CreateTestCompany creates a company with a unique name
func CreateTestCompany(t *testing.T) *companies.Company {
	t.Helper()

	return &companies.Company{
		Name:        "company-" + uuid.NewString()[:8],
		Description: "a test company",
		Mode:        "public",
		Rating:      3,
	}
}

// CreateTestUser creates a user with unique username and email referencing
// the given company
func CreateTestUser(t *testing.T, companyID uint) *users.User {
	t.Helper()

	suffix := uuid.NewString()[:8]
	return &users.User{
		Username:     "user-" + suffix,
		Email:        "user-" + suffix + "@example.com",
		PasswordHash: "$2a$10$" + strings.Repeat("x", 53),
		FirstName:    "Test",
		LastName:     "User",
		IsActive:     true,
		CompanyID:    companyID,
	}
}

// CreateTestTask creates a task assigned to the given user
func CreateTestTask(t *testing.T, userID uint) *tasks.Task {
	t.Helper()

	return &tasks.Task{
		Summary:     "task-" + uuid.NewString()[:8],
		Description: "a test task",
		Status:      tasks.StatusPending,
		Priority:    2,
		UserID:      userID,
	}
}
