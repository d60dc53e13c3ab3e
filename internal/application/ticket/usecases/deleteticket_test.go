package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niggl1/appsindico/internal/application/testutil"
	"github.com/niggl1/appsindico/internal/domain/comment"
	"github.com/niggl1/appsindico/internal/domain/sharelink"
	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
	apperrors "github.com/niggl1/appsindico/internal/shared/errors"
)

func TestDeleteTicketUseCase_CascadesToDependents(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	created := f.newTicket(t, "Broken intercom")
	other := f.newTicket(t, "Garage door")

	add := NewAddAttachmentUseCase(f.tickets, f.attachments, f.writer, f.tx, testutil.NewMockLogger())
	_, err := add.Execute(ctx, AddAttachmentCommand{
		TenantID: tenantID,
		Kind:     string(vo.KindMaintenance),
		TicketID: created.TicketID,
		URL:      "https://files.example.com/intercom.jpg",
		Actor:    StaffActor(1, "Ana"),
	})
	require.NoError(t, err)

	c, err := comment.NewComment(comment.NewCommentParams{
		TenantID: tenantID,
		ItemType: vo.KindMaintenance,
		ItemID:   created.TicketID,
		Text:     "Any news?",
	})
	require.NoError(t, err)
	require.NoError(t, f.comments.Create(ctx, c))

	link, err := sharelink.NewShareLink(sharelink.NewShareLinkParams{
		TenantID: tenantID,
		ItemType: vo.KindMaintenance,
		ItemID:   created.TicketID,
		Token:    "share-token-0123456789abcdefghij",
	})
	require.NoError(t, err)
	f.links.Put(link)

	uc := NewDeleteTicketUseCase(f.tickets, f.timeline, f.attachments, f.comments, f.links, f.tx, testutil.NewMockLogger())
	require.NoError(t, uc.Execute(ctx, DeleteTicketCommand{
		TenantID: tenantID,
		Kind:     string(vo.KindMaintenance),
		TicketID: created.TicketID,
	}))

	assert.Equal(t, 1, f.tickets.Count())
	assert.Empty(t, f.timeline.Events(created.TicketID))
	assert.Len(t, f.timeline.Events(other.TicketID), 1)

	attachments, err := f.attachments.ListByTicket(ctx, tenantID, created.TicketID)
	require.NoError(t, err)
	assert.Empty(t, attachments)

	comments, err := f.comments.ListByItem(ctx, tenantID, vo.KindMaintenance, created.TicketID, true)
	require.NoError(t, err)
	assert.Empty(t, comments)

	links, err := f.links.ListByItem(ctx, tenantID, vo.KindMaintenance, created.TicketID)
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestDeleteTicketUseCase_NotFound(t *testing.T) {
	f := newFixture()
	uc := NewDeleteTicketUseCase(f.tickets, f.timeline, f.attachments, f.comments, f.links, f.tx, testutil.NewMockLogger())

	err := uc.Execute(context.Background(), DeleteTicketCommand{
		TenantID: tenantID,
		Kind:     string(vo.KindMaintenance),
		TicketID: 42,
	})
	assert.True(t, apperrors.IsNotFoundError(err))
}
