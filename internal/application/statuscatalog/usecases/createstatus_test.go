package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niggl1/appsindico/internal/application/testutil"
	apperrors "github.com/niggl1/appsindico/internal/shared/errors"
)

func TestCreateStatusUseCase_Execute(t *testing.T) {
	tests := []struct {
		name      string
		cmd       CreateStatusCommand
		wantOrder int
		wantErr   func(error) bool
	}{
		{
			name:      "appends after the highest order",
			cmd:       CreateStatusCommand{TenantID: tenantID, Name: "Waiting Supplier", Color: "#123456"},
			wantOrder: 8,
		},
		{
			name:      "explicit free order",
			cmd:       CreateStatusCommand{TenantID: tenantID, Name: "Scheduled", DisplayOrder: intPtr(20)},
			wantOrder: 20,
		},
		{
			name:    "order already taken",
			cmd:     CreateStatusCommand{TenantID: tenantID, Name: "Scheduled", DisplayOrder: intPtr(3)},
			wantErr: apperrors.IsConflictError,
		},
		{
			name:    "duplicate name is case-insensitive",
			cmd:     CreateStatusCommand{TenantID: tenantID, Name: "in progress"},
			wantErr: apperrors.IsConflictError,
		},
		{
			name:    "invalid color",
			cmd:     CreateStatusCommand{TenantID: tenantID, Name: "Scheduled", Color: "blue"},
			wantErr: apperrors.IsValidationError,
		},
		{
			name:    "empty name",
			cmd:     CreateStatusCommand{TenantID: tenantID, Name: "  "},
			wantErr: apperrors.IsValidationError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.seeded(t)
			uc := NewCreateStatusUseCase(f.repo, f.provider, f.tx, testutil.NewMockLogger())

			result, err := uc.Execute(context.Background(), tt.cmd)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, result.ID)
			assert.Equal(t, tt.wantOrder, result.DisplayOrder)
			assert.True(t, result.IsActive)
		})
	}
}

func TestCreateStatusUseCase_ReusesOrderOfDeactivatedStatus(t *testing.T) {
	f := newFixture()
	catalog := f.seeded(t)
	deactivate := NewDeactivateStatusUseCase(f.repo, f.provider, testutil.NewMockLogger())
	require.NoError(t, deactivate.Execute(context.Background(), DeactivateStatusCommand{
		TenantID: tenantID,
		StatusID: byName(catalog, "Awaiting Parts").ID(),
	}))

	uc := NewCreateStatusUseCase(f.repo, f.provider, f.tx, testutil.NewMockLogger())
	result, err := uc.Execute(context.Background(), CreateStatusCommand{
		TenantID:     tenantID,
		Name:         "Awaiting Parts",
		DisplayOrder: intPtr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, 5, result.DisplayOrder)
}
