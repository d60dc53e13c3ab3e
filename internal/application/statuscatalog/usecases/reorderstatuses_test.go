package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niggl1/appsindico/internal/application/testutil"
	apperrors "github.com/niggl1/appsindico/internal/shared/errors"
)

func TestReorderStatusesUseCase_RewritesOrders(t *testing.T) {
	f := newFixture()
	catalog := f.seeded(t)
	uc := NewReorderStatusesUseCase(f.repo, f.provider, f.tx, testutil.NewMockLogger())

	ids := make([]uint, 0, len(catalog))
	for i := len(catalog) - 1; i >= 0; i-- {
		ids = append(ids, catalog[i].ID())
	}

	result, err := uc.Execute(context.Background(), ReorderStatusesCommand{TenantID: tenantID, StatusIDs: ids})
	require.NoError(t, err)
	require.Len(t, result, 7)
	assert.Equal(t, "Cancelled", result[0].Name)
	assert.Equal(t, "Open", result[6].Name)
	for i, s := range result {
		assert.Equal(t, i+1, s.DisplayOrder)
	}

	reloaded, err := f.provider.Load(context.Background(), tenantID)
	require.NoError(t, err)
	assert.Equal(t, 1, byName(reloaded, "Cancelled").DisplayOrder())
}

func TestReorderStatusesUseCase_RejectsPartialList(t *testing.T) {
	f := newFixture()
	catalog := f.seeded(t)
	uc := NewReorderStatusesUseCase(f.repo, f.provider, f.tx, testutil.NewMockLogger())

	_, err := uc.Execute(context.Background(), ReorderStatusesCommand{
		TenantID:  tenantID,
		StatusIDs: []uint{catalog[1].ID(), catalog[0].ID()},
	})
	assert.True(t, apperrors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), ReorderStatusesCommand{TenantID: tenantID})
	assert.True(t, apperrors.IsValidationError(err))
}
