package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niggl1/appsindico/internal/application/testutil"
	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
	apperrors "github.com/niggl1/appsindico/internal/shared/errors"
)

func TestAttachmentUseCases_AddListRemove(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	created := f.newTicket(t, "Cracked tile")
	kind := string(vo.KindMaintenance)

	add := NewAddAttachmentUseCase(f.tickets, f.attachments, f.writer, f.tx, testutil.NewMockLogger())
	list := NewListAttachmentsUseCase(f.tickets, f.attachments, testutil.NewMockLogger())
	remove := NewRemoveAttachmentUseCase(f.tickets, f.attachments, f.writer, f.tx, testutil.NewMockLogger())

	first, err := add.Execute(ctx, AddAttachmentCommand{
		TenantID: tenantID, Kind: kind, TicketID: created.TicketID,
		URL: "https://files.example.com/a.jpg", Caption: "before", Actor: StaffActor(1, "Ana"),
	})
	require.NoError(t, err)
	second, err := add.Execute(ctx, AddAttachmentCommand{
		TenantID: tenantID, Kind: kind, TicketID: created.TicketID,
		URL: "https://files.example.com/b.jpg", Actor: StaffActor(1, "Ana"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Position)
	assert.Equal(t, 2, second.Position)

	require.NoError(t, remove.Execute(ctx, RemoveAttachmentCommand{
		TenantID: tenantID, Kind: kind, TicketID: created.TicketID,
		AttachmentID: first.ID, Actor: StaffActor(1, "Ana"),
	}))

	third, err := add.Execute(ctx, AddAttachmentCommand{
		TenantID: tenantID, Kind: kind, TicketID: created.TicketID,
		URL: "https://files.example.com/c.jpg", Actor: StaffActor(1, "Ana"),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, third.Position)

	got, err := list.Execute(ctx, ListAttachmentsQuery{TenantID: tenantID, Kind: kind, TicketID: created.TicketID})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, second.ID, got[0].ID)
	assert.Equal(t, third.ID, got[1].ID)

	events := f.timeline.Events(created.TicketID)
	require.Len(t, events, 5)
	assert.Equal(t, vo.EventAttachmentAdded, events[1].Kind())
	assert.Equal(t, "attachment_added before", events[1].Description())
	assert.Equal(t, vo.EventAttachmentRemoved, events[3].Kind())
}

func TestAddAttachmentUseCase_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		ticketID func(created uint) uint
		wantErr  func(error) bool
	}{
		{"relative url", "/uploads/a.jpg", func(id uint) uint { return id }, apperrors.IsValidationError},
		{"ftp scheme", "ftp://files.example.com/a.jpg", func(id uint) uint { return id }, apperrors.IsValidationError},
		{"missing ticket", "https://files.example.com/a.jpg", func(id uint) uint { return id + 50 }, apperrors.IsNotFoundError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			created := f.newTicket(t, "Cracked tile")
			add := NewAddAttachmentUseCase(f.tickets, f.attachments, f.writer, f.tx, testutil.NewMockLogger())

			_, err := add.Execute(context.Background(), AddAttachmentCommand{
				TenantID: tenantID,
				Kind:     string(vo.KindMaintenance),
				TicketID: tt.ticketID(created.TicketID),
				URL:      tt.url,
			})
			require.Error(t, err)
			assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
		})
	}
}

func TestRemoveAttachmentUseCase_UnknownAttachment(t *testing.T) {
	f := newFixture()
	created := f.newTicket(t, "Cracked tile")
	remove := NewRemoveAttachmentUseCase(f.tickets, f.attachments, f.writer, f.tx, testutil.NewMockLogger())

	err := remove.Execute(context.Background(), RemoveAttachmentCommand{
		TenantID:     tenantID,
		Kind:         string(vo.KindMaintenance),
		TicketID:     created.TicketID,
		AttachmentID: 77,
	})
	assert.True(t, apperrors.IsNotFoundError(err))
	assert.Len(t, f.timeline.Events(created.TicketID), 1)
}

func TestListAttachmentsUseCase_DegradesToEmpty(t *testing.T) {
	f := newFixture()
	created := f.newTicket(t, "Cracked tile")
	f.attachments.ListErr = testutil.ErrUnavailable
	list := NewListAttachmentsUseCase(f.tickets, f.attachments, testutil.NewMockLogger())

	got, err := list.Execute(context.Background(), ListAttachmentsQuery{
		TenantID: tenantID,
		Kind:     string(vo.KindMaintenance),
		TicketID: created.TicketID,
	})
	require.NoError(t, err)
	assert.Empty(t, got)
}
