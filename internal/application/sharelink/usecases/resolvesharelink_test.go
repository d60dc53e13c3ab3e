package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niggl1/appsindico/internal/application/testutil"
	ticketusecases "github.com/niggl1/appsindico/internal/application/ticket/usecases"
	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
)

func TestResolveShareLinkUseCase_Hit(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	ticketID := f.newTicket(t)
	token := f.newLink(t, ticketID, false, nil)

	stored, err := f.tickets.GetByID(ctx, tenantID, vo.KindIncident, ticketID)
	require.NoError(t, err)
	_, err = f.writer.Append(ctx, stored, ticketusecases.StaffActor(9, "Dora"), ticketusecases.EventInput{
		Kind:         vo.EventComment,
		DescribeArgs: []any{"Dora"},
		Internal:     true,
	})
	require.NoError(t, err)

	snapshot := f.resolveUseCase().Execute(ctx, ResolveShareLinkQuery{Token: token})
	require.NotNil(t, snapshot)
	assert.Equal(t, ticketID, snapshot.Ticket.ID)
	assert.Empty(t, snapshot.Ticket.ShareToken)
	assert.Empty(t, snapshot.Ticket.ChatToken)
	assert.Nil(t, snapshot.Ticket.CreatedByID)
	require.NotNil(t, snapshot.Ticket.Status)
	assert.Equal(t, "Open", snapshot.Ticket.Status.Name)
	assert.False(t, snapshot.Editable)
	assert.Empty(t, snapshot.Attachments)
	require.Len(t, snapshot.Timeline, 1, "internal events are hidden")
	assert.Equal(t, "opening", snapshot.Timeline[0].Kind)
	assert.Equal(t, "a moment ago", snapshot.Timeline[0].RelativeTime)

	link, err := f.links.GetByToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), f.links.Stored(link.ID()).AccessCount())
	assert.NotNil(t, f.links.Stored(link.ID()).LastAccessedAt())

	require.NotNil(t, f.resolveUseCase().Execute(ctx, ResolveShareLinkQuery{Token: token}))
	assert.Equal(t, int64(2), f.links.Stored(link.ID()).AccessCount())
	assert.Equal(t, []string{ResolveHit, ResolveHit}, f.metrics.results)
}

func TestResolveShareLinkUseCase_TicketShareToken(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	ticketID := f.newTicket(t)
	token := f.ticketShareToken(t, ticketID)

	snapshot := f.resolveUseCase().Execute(ctx, ResolveShareLinkQuery{Token: token})
	require.NotNil(t, snapshot)
	assert.Equal(t, ticketID, snapshot.Ticket.ID)
	assert.Empty(t, snapshot.Ticket.ShareToken)
	assert.False(t, snapshot.Editable)
	assert.Nil(t, snapshot.ExpiresAt)
	assert.Equal(t, []string{ResolveHit}, f.metrics.results)

	other := f.newTicket(t)
	stored, err := f.tickets.GetByID(ctx, tenantID, vo.KindIncident, other)
	require.NoError(t, err)
	assert.Nil(t, f.resolveUseCase().Execute(ctx, ResolveShareLinkQuery{Token: stored.ChatToken()}), "chat tokens do not open snapshots")
}

func TestResolveShareLinkUseCase_Misses(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(t *testing.T, f *fixture) (string, *ResolveShareLinkUseCase)
		wantResult string
	}{
		{
			name: "short token",
			setup: func(t *testing.T, f *fixture) (string, *ResolveShareLinkUseCase) {
				return "abc", f.resolveUseCase()
			},
			wantResult: ResolveMiss,
		},
		{
			name: "unknown token",
			setup: func(t *testing.T, f *fixture) (string, *ResolveShareLinkUseCase) {
				return "ZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZZ", f.resolveUseCase()
			},
			wantResult: ResolveMiss,
		},
		{
			name: "deactivated",
			setup: func(t *testing.T, f *fixture) (string, *ResolveShareLinkUseCase) {
				token := f.newLink(t, f.newTicket(t), false, nil)
				link, err := f.links.GetByToken(context.Background(), token)
				require.NoError(t, err)
				require.NoError(t, NewDeactivateShareLinkUseCase(f.links, testutil.NewMockLogger()).Execute(
					context.Background(), DeactivateShareLinkCommand{TenantID: tenantID, ShareLinkID: link.ID()}))
				return token, f.resolveUseCase()
			},
			wantResult: ResolveInactive,
		},
		{
			name: "expired",
			setup: func(t *testing.T, f *fixture) (string, *ResolveShareLinkUseCase) {
				token := f.newLink(t, f.newTicket(t), false, intPtr(1))
				later := func() time.Time { return time.Now().UTC().Add(2 * time.Hour) }
				return token, f.resolveUseCase().WithClock(later)
			},
			wantResult: ResolveExpired,
		},
		{
			name: "target deleted",
			setup: func(t *testing.T, f *fixture) (string, *ResolveShareLinkUseCase) {
				ticketID := f.newTicket(t)
				token := f.newLink(t, ticketID, false, nil)
				require.NoError(t, f.tickets.Delete(context.Background(), tenantID, vo.KindIncident, ticketID))
				return token, f.resolveUseCase()
			},
			wantResult: ResolveGone,
		},
		{
			name: "store failure",
			setup: func(t *testing.T, f *fixture) (string, *ResolveShareLinkUseCase) {
				token := f.newLink(t, f.newTicket(t), false, nil)
				f.links.GetErr = testutil.ErrUnavailable
				return token, f.resolveUseCase()
			},
			wantResult: ResolveError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			token, uc := tt.setup(t, f)

			assert.Nil(t, uc.Execute(context.Background(), ResolveShareLinkQuery{Token: token}))
			assert.Equal(t, []string{tt.wantResult}, f.metrics.results)
		})
	}
}
