package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niggl1/appsindico/internal/domain/ticket"
	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
	apperrors "github.com/niggl1/appsindico/internal/shared/errors"
)

func TestTicketRepository_CreateAndGet(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t), testLogger())
	ctx := context.Background()

	tk := createTicket(t, repo, vo.KindIncident, "Broken gate", "INC-0001", 1)
	require.NotZero(t, tk.ID())

	t.Run("by id and kind", func(t *testing.T) {
		found, err := repo.GetByID(ctx, testTenant, vo.KindIncident, tk.ID())
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, "Broken gate", found.Title())
		assert.Equal(t, "INC-0001", found.Protocol())
		assert.Equal(t, "garage", found.Details()["area"])
		assert.Equal(t, 1, found.Version())
	})

	t.Run("wrong kind or tenant is not found", func(t *testing.T) {
		found, err := repo.GetByID(ctx, testTenant, vo.KindMaintenance, tk.ID())
		require.NoError(t, err)
		assert.Nil(t, found)

		found, err = repo.GetByID(ctx, testTenant+1, vo.KindIncident, tk.ID())
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("by chat token", func(t *testing.T) {
		found, err := repo.GetByChatToken(ctx, "chat-INC-0001")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, tk.ID(), found.ID())

		found, err = repo.GetByChatToken(ctx, "chat-unknown")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("by share token", func(t *testing.T) {
		found, err := repo.GetByShareToken(ctx, "share-INC-0001")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, tk.ID(), found.ID())

		found, err = repo.GetByShareToken(ctx, "chat-INC-0001")
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("protocol exists", func(t *testing.T) {
		exists, err := repo.ExistsByProtocol(ctx, testTenant, "INC-0001")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByProtocol(ctx, testTenant+1, "INC-0001")
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestTicketRepository_DuplicateProtocol(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t), testLogger())
	createTicket(t, repo, vo.KindIncident, "First", "INC-0001", 1)

	dup, err := ticket.NewTicket(ticket.NewTicketParams{
		TenantID: testTenant,
		Kind:     vo.KindIncident,
		Title:    "Second",
		StatusID: 1,
	})
	require.NoError(t, err)
	require.NoError(t, dup.AssignIdentifiers("INC-0001", "share-other", "chat-other"))

	err = repo.Create(context.Background(), dup)
	require.Error(t, err)
	assert.True(t, apperrors.IsDuplicateError(err))
}

func TestTicketRepository_Update(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t), testLogger())
	ctx := context.Background()
	tk := createTicket(t, repo, vo.KindMaintenance, "Paint hall", "MAN-0001", 1)

	stale, err := repo.GetByID(ctx, testTenant, vo.KindMaintenance, tk.ID())
	require.NoError(t, err)

	_, err = tk.ApplyPatch(ticket.Patch{Title: ptr("Paint lobby"), StatusID: ptr(uint(2)), StatusTerminal: true})
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, tk))

	found, err := repo.GetByID(ctx, testTenant, vo.KindMaintenance, tk.ID())
	require.NoError(t, err)
	assert.Equal(t, "Paint lobby", found.Title())
	assert.Equal(t, uint(2), found.StatusID())
	assert.Equal(t, 2, found.Version())
	assert.NotNil(t, found.ClosedAt())

	t.Run("stale copy conflicts", func(t *testing.T) {
		_, err := stale.ApplyPatch(ticket.Patch{Title: ptr("Paint stairs")})
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Update(ctx, stale), ticket.ErrVersionConflict)
	})

	t.Run("deleted ticket is not found", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, testTenant, vo.KindMaintenance, tk.ID()))
		_, err := tk.ApplyPatch(ticket.Patch{Title: ptr("Paint roof")})
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Update(ctx, tk), ticket.ErrTicketNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, testTenant, vo.KindMaintenance, tk.ID()), ticket.ErrTicketNotFound)
	})
}

func TestTicketRepository_List(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t), testLogger())
	ctx := context.Background()

	a := createTicket(t, repo, vo.KindInspection, "Roof leak", "INS-0001", 1)
	b := createTicket(t, repo, vo.KindInspection, "Elevator noise", "INS-0002", 2)
	c := createTicket(t, repo, vo.KindInspection, "100% water pressure", "INS-0003", 1)
	createTicket(t, repo, vo.KindIncident, "Roof tiles", "INC-0001", 1)

	_, err := b.ApplyPatch(ticket.Patch{Priority: ptr(vo.PriorityUrgent)})
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, b))
	_, err = a.ApplyPatch(ticket.Patch{Priority: ptr(vo.PriorityLow)})
	require.NoError(t, err)
	require.NoError(t, repo.Update(ctx, a))

	ids := func(list []*ticket.Ticket) []uint {
		out := make([]uint, 0, len(list))
		for _, tk := range list {
			out = append(out, tk.ID())
		}
		return out
	}

	tests := []struct {
		name      string
		filter    ticket.Filter
		wantIDs   []uint
		wantTotal int64
	}{
		{
			name:      "kind scope, newest first",
			filter:    ticket.Filter{},
			wantIDs:   []uint{c.ID(), b.ID(), a.ID()},
			wantTotal: 3,
		},
		{
			name:      "status filter",
			filter:    ticket.Filter{StatusID: ptr(uint(1))},
			wantIDs:   []uint{c.ID(), a.ID()},
			wantTotal: 2,
		},
		{
			name:      "search is case-insensitive",
			filter:    ticket.Filter{Search: "ROOF"},
			wantIDs:   []uint{a.ID()},
			wantTotal: 1,
		},
		{
			name:      "search matches protocol",
			filter:    ticket.Filter{Search: "INS-0002"},
			wantIDs:   []uint{b.ID()},
			wantTotal: 1,
		},
		{
			name:      "percent is literal",
			filter:    ticket.Filter{Search: "100%"},
			wantIDs:   []uint{c.ID()},
			wantTotal: 1,
		},
		{
			name:      "priority rank ascending",
			filter:    ticket.Filter{SortBy: "priority", SortOrder: "asc"},
			wantIDs:   []uint{a.ID(), c.ID(), b.ID()},
			wantTotal: 3,
		},
		{
			name:      "pagination keeps total",
			filter:    ticket.Filter{Page: 2, PageSize: 2},
			wantIDs:   []uint{a.ID()},
			wantTotal: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.filter
			f.TenantID = testTenant
			f.Kind = vo.KindInspection

			list, total, err := repo.List(ctx, f)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, total)
			assert.Equal(t, tt.wantIDs, ids(list))
		})
	}
}

func TestTicketRepository_Counts(t *testing.T) {
	repo := NewTicketRepository(setupTestDB(t), testLogger())
	ctx := context.Background()

	createTicket(t, repo, vo.KindChecklist, "Pump", "CHK-0001", 1)
	createTicket(t, repo, vo.KindChecklist, "Lights", "CHK-0002", 1)
	createTicket(t, repo, vo.KindChecklist, "Doors", "CHK-0003", 2)

	byStatus, err := repo.CountByStatus(ctx, testTenant, vo.KindChecklist)
	require.NoError(t, err)
	assert.Equal(t, map[uint]int64{1: 2, 2: 1}, byStatus)

	byPriority, err := repo.CountByPriority(ctx, testTenant, vo.KindChecklist)
	require.NoError(t, err)
	assert.Equal(t, map[vo.Priority]int64{vo.PriorityMedium: 3}, byPriority)
}
