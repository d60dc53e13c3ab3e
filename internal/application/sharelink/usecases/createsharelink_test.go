package usecases

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
	apperrors "github.com/niggl1/appsindico/internal/shared/errors"
)

func TestCreateShareLinkUseCase_Execute(t *testing.T) {
	f := newFixture()
	ticketID := f.newTicket(t)

	tests := []struct {
		name        string
		cmd         CreateShareLinkCommand
		policy      ExpiryPolicy
		wantExpires bool
		wantErr     func(error) bool
	}{
		{
			name: "never expires by default",
			cmd:  CreateShareLinkCommand{ItemType: string(vo.KindIncident), ItemID: ticketID},
		},
		{
			name:        "policy default applies",
			cmd:         CreateShareLinkCommand{ItemType: string(vo.KindIncident), ItemID: ticketID},
			policy:      ExpiryPolicy{DefaultHours: 48, MaxHours: 72},
			wantExpires: true,
		},
		{
			name:        "explicit expiry",
			cmd:         CreateShareLinkCommand{ItemType: string(vo.KindIncident), ItemID: ticketID, ExpiryHours: intPtr(12)},
			policy:      ExpiryPolicy{MaxHours: 72},
			wantExpires: true,
		},
		{
			name:    "expiry above maximum",
			cmd:     CreateShareLinkCommand{ItemType: string(vo.KindIncident), ItemID: ticketID, ExpiryHours: intPtr(100)},
			policy:  ExpiryPolicy{MaxHours: 72},
			wantErr: apperrors.IsValidationError,
		},
		{
			name:    "overflowing expiry without a policy maximum",
			cmd:     CreateShareLinkCommand{ItemType: string(vo.KindIncident), ItemID: ticketID, ExpiryHours: intPtr(math.MaxInt)},
			wantErr: apperrors.IsValidationError,
		},
		{
			name:    "negative expiry",
			cmd:     CreateShareLinkCommand{ItemType: string(vo.KindIncident), ItemID: ticketID, ExpiryHours: intPtr(-1)},
			wantErr: apperrors.IsValidationError,
		},
		{
			name:    "unknown item type",
			cmd:     CreateShareLinkCommand{ItemType: "invoice", ItemID: ticketID},
			wantErr: apperrors.IsValidationError,
		},
		{
			name:    "target of another kind",
			cmd:     CreateShareLinkCommand{ItemType: string(vo.KindChecklist), ItemID: ticketID},
			wantErr: apperrors.IsNotFoundError,
		},
		{
			name:    "missing target",
			cmd:     CreateShareLinkCommand{ItemType: string(vo.KindIncident), ItemID: ticketID + 10},
			wantErr: apperrors.IsNotFoundError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := tt.cmd
			cmd.TenantID = tenantID
			result, err := f.createUseCase(tt.policy).Execute(context.Background(), cmd)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, result.ID)
			assert.Len(t, result.Token, 32)
			assert.Equal(t, tt.wantExpires, result.ExpiresAt != nil)
		})
	}
}

func TestCreateShareLinkUseCase_OtherTenantIsNotFound(t *testing.T) {
	f := newFixture()
	ticketID := f.newTicket(t)

	_, err := f.createUseCase(ExpiryPolicy{}).Execute(context.Background(), CreateShareLinkCommand{
		TenantID: tenantID + 1,
		ItemType: string(vo.KindIncident),
		ItemID:   ticketID,
	})
	assert.True(t, apperrors.IsNotFoundError(err))
}
