//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"todo_service/internal/domain/companies"
	"todo_service/internal/infrastructure/persistence/models"
	"todo_service/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompanySqliteRepository_Create(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	company := CreateTestCompany(t)
	err := tc.CompanyRepo.Create(context.Background(), company)
	require.NoError(t, err)
	assert.NotZero(t, company.ID)

	var created models.CompanyModel
	require.NoError(t, tc.DB.First(&created, "id = ?", company.ID).Error)
	assert.Equal(t, company.Name, created.Name)
}

func TestCompanySqliteRepository_Create_DuplicateName(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	company := CreateTestCompany(t)
	require.NoError(t, tc.CompanyRepo.Create(context.Background(), company))

	duplicate := CreateTestCompany(t)
	duplicate.Name = company.Name

	err := tc.CompanyRepo.Create(context.Background(), duplicate)
	require.ErrorIs(t, err, companies.ErrNameTaken)
}

func TestCompanySqliteRepository_GetByID(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	company := CreateTestCompany(t)
	require.NoError(t, tc.CompanyRepo.Create(context.Background(), company))

	fetched, err := tc.CompanyRepo.GetByID(context.Background(), company.ID)
	require.NoError(t, err)
	assert.Equal(t, company.Name, fetched.Name)
}

func TestCompanySqliteRepository_GetByID_NotFound(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	_, err := tc.CompanyRepo.GetByID(context.Background(), 4242)
	require.ErrorIs(t, err, companies.ErrNotFound)
}

func TestCompanySqliteRepository_List(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	require.NoError(t, tc.CompanyRepo.Create(context.Background(), CreateTestCompany(t)))
	require.NoError(t, tc.CompanyRepo.Create(context.Background(), CreateTestCompany(t)))

	list, err := tc.CompanyRepo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestCompanySqliteRepository_UpdateByID(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	company := CreateTestCompany(t)
	require.NoError(t, tc.CompanyRepo.Create(context.Background(), company))

	company.Description = "updated description"
	company.Rating = 5
	require.NoError(t, tc.CompanyRepo.UpdateByID(context.Background(), company))

	var updated models.CompanyModel
	require.NoError(t, tc.DB.First(&updated, "id = ?", company.ID).Error)
	assert.Equal(t, "updated description", updated.Description)
	assert.Equal(t, 5, updated.Rating)
}

func TestCompanySqliteRepository_DeleteByID(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	company := CreateTestCompany(t)
	require.NoError(t, tc.CompanyRepo.Create(context.Background(), company))

	require.NoError(t, tc.CompanyRepo.DeleteByID(context.Background(), company.ID))

	_, err := tc.CompanyRepo.GetByID(context.Background(), company.ID)
	require.ErrorIs(t, err, companies.ErrNotFound)
}
