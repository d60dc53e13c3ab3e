package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niggl1/appsindico/internal/domain/statuscatalog"
	apperrors "github.com/niggl1/appsindico/internal/shared/errors"
)

func seedStatuses(t *testing.T, repo *StatusRepositoryImpl) []*statuscatalog.StatusDefinition {
	t.Helper()

	list, err := statuscatalog.BuildDefaults(testTenant, []statuscatalog.Template{
		{Name: "Open", Order: 1, Color: "#1E88E5"},
		{Name: "In progress", Order: 2, Color: "#FB8C00"},
		{Name: "Done", Order: 3, Color: "#43A047", IsTerminal: true},
	})
	require.NoError(t, err)
	require.NoError(t, repo.CreateBatch(context.Background(), list))
	return list
}

func statusNames(list []*statuscatalog.StatusDefinition) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, s.Name())
	}
	return out
}

func TestStatusRepository_CreateBatchAndList(t *testing.T) {
	repo := NewStatusRepository(setupTestDB(t), testLogger())
	ctx := context.Background()
	seeded := seedStatuses(t, repo)

	for _, s := range seeded {
		assert.NotZero(t, s.ID())
	}

	list, err := repo.ListByTenant(ctx, testTenant, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Open", "In progress", "Done"}, statusNames(list))

	count, err := repo.CountByTenant(ctx, testTenant)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	other, err := repo.ListByTenant(ctx, testTenant+1, true)
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestStatusRepository_ActiveOrderIsUnique(t *testing.T) {
	repo := NewStatusRepository(setupTestDB(t), testLogger())
	ctx := context.Background()
	seeded := seedStatuses(t, repo)

	clash, err := statuscatalog.NewStatusDefinition(testTenant, "Waiting", 2, "", "", false)
	require.NoError(t, err)
	err = repo.Create(ctx, clash)
	require.Error(t, err)
	assert.True(t, apperrors.IsDuplicateError(err))

	t.Run("inactive status frees its order", func(t *testing.T) {
		done, err := repo.GetByID(ctx, testTenant, seeded[2].ID())
		require.NoError(t, err)
		done.Deactivate()
		require.NoError(t, repo.Update(ctx, done))

		reuse, err := statuscatalog.NewStatusDefinition(testTenant, "Closed", 3, "", "", true)
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, reuse))

		active, err := repo.ListByTenant(ctx, testTenant, false)
		require.NoError(t, err)
		assert.Equal(t, []string{"Open", "In progress", "Closed"}, statusNames(active))

		all, err := repo.ListByTenant(ctx, testTenant, true)
		require.NoError(t, err)
		assert.Len(t, all, 4)
	})
}

func TestStatusRepository_Update(t *testing.T) {
	repo := NewStatusRepository(setupTestDB(t), testLogger())
	ctx := context.Background()
	seeded := seedStatuses(t, repo)

	current, err := repo.GetByID(ctx, testTenant, seeded[0].ID())
	require.NoError(t, err)
	stale, err := repo.GetByID(ctx, testTenant, seeded[0].ID())
	require.NoError(t, err)

	require.NoError(t, current.Rename("New"))
	require.NoError(t, current.SetPresentation("#000000", "inbox"))
	require.NoError(t, repo.Update(ctx, current))

	found, err := repo.GetByID(ctx, testTenant, seeded[0].ID())
	require.NoError(t, err)
	assert.Equal(t, "New", found.Name())
	assert.Equal(t, "inbox", found.Icon())
	assert.Equal(t, 2, found.Version())

	require.NoError(t, stale.Rename("Fresh"))
	assert.ErrorIs(t, repo.Update(ctx, stale), statuscatalog.ErrVersionConflict)

	missing := statuscatalog.ReconstructStatusDefinition(999, testTenant, "Ghost", 9, "", "", false, true, 1, found.CreatedAt(), found.UpdatedAt())
	require.NoError(t, missing.Rename("Still ghost"))
	assert.ErrorIs(t, repo.Update(ctx, missing), statuscatalog.ErrStatusNotFound)
}

func TestStatusRepository_UpdateOrdersSwaps(t *testing.T) {
	repo := NewStatusRepository(setupTestDB(t), testLogger())
	ctx := context.Background()
	seedStatuses(t, repo)

	list, err := repo.ListByTenant(ctx, testTenant, false)
	require.NoError(t, err)
	require.NoError(t, list[0].MoveTo(2))
	require.NoError(t, list[1].MoveTo(1))
	require.NoError(t, repo.UpdateOrders(ctx, list[:2]))

	reordered, err := repo.ListByTenant(ctx, testTenant, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"In progress", "Open", "Done"}, statusNames(reordered))
	assert.Equal(t, 2, reordered[0].Version())
}

func TestStatusRepository_GetByIDTenantScope(t *testing.T) {
	repo := NewStatusRepository(setupTestDB(t), testLogger())
	seeded := seedStatuses(t, repo)

	found, err := repo.GetByID(context.Background(), testTenant+1, seeded[0].ID())
	require.NoError(t, err)
	assert.Nil(t, found)
}
