package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niggl1/appsindico/internal/application/testutil"
	apperrors "github.com/niggl1/appsindico/internal/shared/errors"
)

func TestUpdateStatusUseCase_RenameAndRecolor(t *testing.T) {
	f := newFixture()
	catalog := f.seeded(t)
	target := byName(catalog, "Approved")
	uc := NewUpdateStatusUseCase(f.repo, f.provider, testutil.NewMockLogger())

	result, err := uc.Execute(context.Background(), UpdateStatusCommand{
		TenantID: tenantID,
		StatusID: target.ID(),
		Name:     strPtr("Budget Approved"),
		Color:    strPtr("#00AA00"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Budget Approved", result.Name)
	assert.Equal(t, "#00AA00", result.Color)
	assert.Equal(t, target.Version()+1, result.Version)
}

func TestUpdateStatusUseCase_NoChangeKeepsVersion(t *testing.T) {
	f := newFixture()
	catalog := f.seeded(t)
	target := byName(catalog, "Open")
	uc := NewUpdateStatusUseCase(f.repo, f.provider, testutil.NewMockLogger())

	result, err := uc.Execute(context.Background(), UpdateStatusCommand{
		TenantID: tenantID,
		StatusID: target.ID(),
		Name:     strPtr("Open"),
	})
	require.NoError(t, err)
	assert.Equal(t, target.Version(), result.Version)
}

func TestUpdateStatusUseCase_Errors(t *testing.T) {
	f := newFixture()
	catalog := f.seeded(t)
	uc := NewUpdateStatusUseCase(f.repo, f.provider, testutil.NewMockLogger())

	tests := []struct {
		name    string
		cmd     UpdateStatusCommand
		wantErr func(error) bool
	}{
		{
			name:    "unknown status",
			cmd:     UpdateStatusCommand{TenantID: tenantID, StatusID: 999, Name: strPtr("x")},
			wantErr: apperrors.IsNotFoundError,
		},
		{
			name:    "status of another tenant",
			cmd:     UpdateStatusCommand{TenantID: tenantID + 1, StatusID: byName(catalog, "Open").ID(), Name: strPtr("x")},
			wantErr: apperrors.IsNotFoundError,
		},
		{
			name:    "order collision",
			cmd:     UpdateStatusCommand{TenantID: tenantID, StatusID: byName(catalog, "Open").ID(), DisplayOrder: intPtr(2)},
			wantErr: apperrors.IsConflictError,
		},
		{
			name:    "name collision",
			cmd:     UpdateStatusCommand{TenantID: tenantID, StatusID: byName(catalog, "Open").ID(), Name: strPtr("COMPLETED")},
			wantErr: apperrors.IsConflictError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
		})
	}
}

func TestUpdateStatusUseCase_CannotCloseLastOpenStatus(t *testing.T) {
	repo := testutil.NewStatusRepository()
	defaults := testutil.DefaultsProvider{Templates: testutil.StandardDefaults().Templates[4:]}
	provider := NewCatalogProvider(repo, defaults, &testutil.Transactor{}, testutil.NewMockLogger())
	catalog, err := provider.Load(context.Background(), tenantID)
	require.NoError(t, err)
	require.Len(t, catalog.Active(), 3)

	uc := NewUpdateStatusUseCase(repo, provider, testutil.NewMockLogger())
	_, err = uc.Execute(context.Background(), UpdateStatusCommand{
		TenantID:   tenantID,
		StatusID:   byName(catalog, "Awaiting Parts").ID(),
		IsTerminal: boolPtr(true),
	})
	assert.True(t, apperrors.IsValidationError(err))
}
