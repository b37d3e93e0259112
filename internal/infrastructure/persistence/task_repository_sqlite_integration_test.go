//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"todo_service/internal/domain/tasks"
	"todo_service/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTaskFixtures(t *testing.T) (*TestContext, uint) {
	t.Helper()

	tc := SetupTestDB(t, config.SqliteDbType)

	company := CreateTestCompany(t)
	require.NoError(t, tc.CompanyRepo.Create(context.Background(), company))

	user := CreateTestUser(t, company.ID)
	require.NoError(t, tc.UserRepo.Create(context.Background(), user))

	return tc, user.ID
}

func TestTaskSqliteRepository_Create(t *testing.T) {
	tc, userID := setupTaskFixtures(t)

	task := CreateTestTask(t, userID)
	err := tc.TaskRepo.Create(context.Background(), task)
	require.NoError(t, err)
	assert.NotZero(t, task.ID)
}

func TestTaskSqliteRepository_GetByID_NotFound(t *testing.T) {
	tc, _ := setupTaskFixtures(t)

	_, err := tc.TaskRepo.GetByID(context.Background(), 4242)
	require.ErrorIs(t, err, tasks.ErrNotFound)
}

func TestTaskSqliteRepository_ListByUserID(t *testing.T) {
	tc, userID := setupTaskFixtures(t)

	require.NoError(t, tc.TaskRepo.Create(context.Background(), CreateTestTask(t, userID)))
	require.NoError(t, tc.TaskRepo.Create(context.Background(), CreateTestTask(t, userID)))

	list, err := tc.TaskRepo.ListByUserID(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = tc.TaskRepo.ListByUserID(context.Background(), userID+1)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTaskSqliteRepository_UpdateByID(t *testing.T) {
	tc, userID := setupTaskFixtures(t)

	task := CreateTestTask(t, userID)
	require.NoError(t, tc.TaskRepo.Create(context.Background(), task))

	task.Status = tasks.StatusCompleted
	task.Priority = 5
	require.NoError(t, tc.TaskRepo.UpdateByID(context.Background(), task))

	updated, err := tc.TaskRepo.GetByID(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, tasks.StatusCompleted, updated.Status)
	assert.Equal(t, 5, updated.Priority)
}

func TestTaskSqliteRepository_DeleteByID(t *testing.T) {
	tc, userID := setupTaskFixtures(t)

	task := CreateTestTask(t, userID)
	require.NoError(t, tc.TaskRepo.Create(context.Background(), task))

	require.NoError(t, tc.TaskRepo.DeleteByID(context.Background(), task.ID))

	_, err := tc.TaskRepo.GetByID(context.Background(), task.ID)
	require.ErrorIs(t, err, tasks.ErrNotFound)
}
