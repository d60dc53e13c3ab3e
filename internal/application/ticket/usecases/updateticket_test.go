package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogusecases "github.com/niggl1/appsindico/internal/application/statuscatalog/usecases"
	"github.com/niggl1/appsindico/internal/application/testutil"
	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
	apperrors "github.com/niggl1/appsindico/internal/shared/errors"
)

func TestUpdateTicketUseCase_NoChangesWritesNothing(t *testing.T) {
	f := newFixture()
	created := f.newTicket(t, "Clean the pool")

	result, err := f.updateUseCase().Execute(context.Background(), UpdateTicketCommand{
		TenantID: tenantID,
		Kind:     string(vo.KindMaintenance),
		TicketID: created.TicketID,
		Title:    strPtr("Clean the pool"),
		Actor:    StaffActor(2, "Bruno"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Version)
	assert.Len(t, f.timeline.Events(created.TicketID), 1)
}

func TestUpdateTicketUseCase_FieldChangeRecordsOneEvent(t *testing.T) {
	f := newFixture()
	created := f.newTicket(t, "Clean the pool")

	result, err := f.updateUseCase().Execute(context.Background(), UpdateTicketCommand{
		TenantID:    tenantID,
		Kind:        string(vo.KindMaintenance),
		TicketID:    created.TicketID,
		Title:       strPtr("Clean the pool and sauna"),
		Description: strPtr("Use the **blue** chemicals"),
		Actor:       StaffActor(2, "Bruno"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Version)
	assert.Equal(t, "Clean the pool and sauna", result.Title)
	assert.Contains(t, result.DescriptionHTML, "<strong>blue</strong>")

	events := f.timeline.Events(created.TicketID)
	require.Len(t, events, 2)
	assert.Equal(t, vo.EventUpdated, events[1].Kind())
	assert.Equal(t, "updated title, description", events[1].Description())
	assert.Equal(t, []string{"title", "description"}, events[1].Metadata()["fields"])
}

func TestUpdateTicketUseCase_StatusTransitions(t *testing.T) {
	f := newFixture()
	created := f.newTicket(t, "Replace lamp")
	open := f.status(t, "Open")
	progress := f.status(t, "In Progress")
	completed := f.status(t, "Completed")
	uc := f.updateUseCase()

	steps := []struct {
		name       string
		to         uint
		wantKind   vo.EventKind
		wantDesc   string
		wantClosed bool
	}{
		{"open to in progress", progress.ID(), vo.EventStatusChanged, "status_changed Open In Progress", false},
		{"in progress to completed", completed.ID(), vo.EventClosed, "closed Completed", true},
		{"completed back to open", open.ID(), vo.EventReopened, "reopened Open", false},
	}

	prev := open.ID()
	for i, step := range steps {
		result, err := uc.Execute(context.Background(), UpdateTicketCommand{
			TenantID: tenantID,
			Kind:     string(vo.KindMaintenance),
			TicketID: created.TicketID,
			StatusID: uintPtr(step.to),
			Actor:    StaffActor(2, "Bruno"),
		})
		require.NoError(t, err, step.name)
		assert.Equal(t, step.wantClosed, result.ClosedAt != nil, step.name)
		require.NotNil(t, result.Status, step.name)
		assert.Equal(t, step.to, result.Status.ID, step.name)

		events := f.timeline.Events(created.TicketID)
		require.Len(t, events, i+2, step.name)
		last := events[len(events)-1]
		assert.Equal(t, step.wantKind, last.Kind(), step.name)
		assert.Equal(t, step.wantDesc, last.Description(), step.name)
		require.NotNil(t, last.PrevStatusID(), step.name)
		require.NotNil(t, last.NewStatusID(), step.name)
		assert.Equal(t, prev, *last.PrevStatusID(), step.name)
		assert.Equal(t, step.to, *last.NewStatusID(), step.name)
		prev = step.to
	}
}

func TestUpdateTicketUseCase_Errors(t *testing.T) {
	tests := []struct {
		name    string
		build   func(f *fixture, ticketID uint) UpdateTicketCommand
		wantErr func(error) bool
	}{
		{
			name: "stale expected version",
			build: func(_ *fixture, id uint) UpdateTicketCommand {
				return UpdateTicketCommand{TicketID: id, ExpectedVersion: intPtr(4), Title: strPtr("New")}
			},
			wantErr: apperrors.IsConflictError,
		},
		{
			name: "missing ticket",
			build: func(_ *fixture, id uint) UpdateTicketCommand {
				return UpdateTicketCommand{TicketID: id + 100, Title: strPtr("New")}
			},
			wantErr: apperrors.IsNotFoundError,
		},
		{
			name: "unknown status",
			build: func(_ *fixture, id uint) UpdateTicketCommand {
				return UpdateTicketCommand{TicketID: id, StatusID: uintPtr(999)}
			},
			wantErr: apperrors.IsValidationError,
		},
		{
			name: "inactive status",
			build: func(f *fixture, id uint) UpdateTicketCommand {
				approved := f.status(t, "Approved")
				deactivate := catalogusecases.NewDeactivateStatusUseCase(f.statuses, f.catalog, testutil.NewMockLogger())
				require.NoError(t, deactivate.Execute(context.Background(), catalogusecases.DeactivateStatusCommand{
					TenantID: tenantID,
					StatusID: approved.ID(),
				}))
				return UpdateTicketCommand{TicketID: id, StatusID: uintPtr(approved.ID())}
			},
			wantErr: apperrors.IsValidationError,
		},
		{
			name: "title too long",
			build: func(_ *fixture, id uint) UpdateTicketCommand {
				long := make([]byte, 201)
				for i := range long {
					long[i] = 'a'
				}
				return UpdateTicketCommand{TicketID: id, Title: strPtr(string(long))}
			},
			wantErr: apperrors.IsValidationError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			created := f.newTicket(t, "Paint the lobby")
			cmd := tt.build(f, created.TicketID)
			cmd.TenantID = tenantID
			cmd.Kind = string(vo.KindMaintenance)

			_, err := f.updateUseCase().Execute(context.Background(), cmd)
			require.Error(t, err)
			assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
			assert.Len(t, f.timeline.Events(created.TicketID), 1)
		})
	}
}

func TestUpdateTicketUseCase_OtherKindIsNotFound(t *testing.T) {
	f := newFixture()
	created := f.newTicket(t, "Paint the lobby")

	_, err := f.updateUseCase().Execute(context.Background(), UpdateTicketCommand{
		TenantID: tenantID,
		Kind:     string(vo.KindIncident),
		TicketID: created.TicketID,
		Title:    strPtr("New"),
	})
	assert.True(t, apperrors.IsNotFoundError(err))
}
