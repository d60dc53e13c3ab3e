package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niggl1/appsindico/internal/application/testutil"
	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
	apperrors "github.com/niggl1/appsindico/internal/shared/errors"
	"github.com/niggl1/appsindico/internal/shared/services/markdown"
)

// seedThread creates one public and one internal comment, returning their ids.
func seedThread(t *testing.T, f *fixture, ticketID uint, chat string) (uint, uint) {
	t.Helper()
	ctx := context.Background()
	public, err := f.createPublicUseCase().Execute(ctx, CreatePublicCommentCommand{
		Channel:       ChannelChat,
		Token:         chat,
		AuthorName:    "Resident",
		AuthorContact: "resident@example.com",
		Text:          "Any update?",
	})
	require.NoError(t, err)
	internal, err := f.createUseCase().Execute(ctx, CreateCommentCommand{
		TenantID:   tenantID,
		ItemType:   string(vo.KindChecklist),
		ItemID:     ticketID,
		AuthorID:   uintPtr(4),
		AuthorName: "Elisa",
		Text:       "Supplier delayed",
		IsInternal: true,
	})
	require.NoError(t, err)
	return public.ID, internal.ID
}

func TestListComments_InternalFiltering(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	ticketID, chat := f.newTicket(t)
	publicID, internalID := seedThread(t, f, ticketID, chat)

	reply := NewReplyCommentUseCase(f.comments, markdown.NewMarkdownService(), testutil.NewMockLogger())
	for _, text := range []string{"first", "second"} {
		_, err := reply.Execute(ctx, ReplyCommentCommand{
			TenantID: tenantID, CommentID: publicID, AuthorID: uintPtr(4), AuthorName: "Elisa", Text: text,
		})
		require.NoError(t, err)
	}

	staff, err := NewListCommentsUseCase(f.comments, testutil.NewMockLogger()).Execute(ctx, ListCommentsQuery{
		TenantID:        tenantID,
		ItemType:        string(vo.KindChecklist),
		ItemID:          ticketID,
		IncludeInternal: true,
	})
	require.NoError(t, err)
	require.Len(t, staff, 2)
	assert.Equal(t, internalID, staff[0].ID, "newest first")
	assert.Equal(t, "resident@example.com", staff[1].AuthorContact)
	require.Len(t, staff[1].Responses, 2)
	assert.Equal(t, "first", staff[1].Responses[0].Text, "responses oldest first")

	visitors, err := NewListPublicCommentsUseCase(f.comments, f.links, f.tickets, testutil.NewMockLogger()).Execute(ctx,
		ListPublicCommentsQuery{Channel: ChannelChat, Token: chat})
	require.NoError(t, err)
	require.Len(t, visitors, 1)
	assert.Equal(t, publicID, visitors[0].ID)
	assert.Empty(t, visitors[0].AuthorContact)
	assert.Nil(t, visitors[0].Responses[0].AuthorID)
}

func TestReplyCommentUseCase_UnknownComment(t *testing.T) {
	f := newFixture()
	reply := NewReplyCommentUseCase(f.comments, markdown.NewMarkdownService(), testutil.NewMockLogger())

	_, err := reply.Execute(context.Background(), ReplyCommentCommand{TenantID: tenantID, CommentID: 99, Text: "hi"})
	assert.True(t, apperrors.IsNotFoundError(err))
	assert.Zero(t, f.comments.ResponseCount())
}

func TestMarkCommentReadUseCase_KeepsFirstReader(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	ticketID, chat := f.newTicket(t)
	publicID, _ := seedThread(t, f, ticketID, chat)
	uc := NewMarkCommentReadUseCase(f.comments, testutil.NewMockLogger())

	require.NoError(t, uc.Execute(ctx, MarkCommentReadCommand{TenantID: tenantID, CommentID: publicID, ReaderID: 4}))
	require.NoError(t, uc.Execute(ctx, MarkCommentReadCommand{TenantID: tenantID, CommentID: publicID, ReaderID: 5}))

	stored, err := f.comments.GetByID(ctx, tenantID, publicID)
	require.NoError(t, err)
	assert.True(t, stored.IsRead())
	require.NotNil(t, stored.ReadByID())
	assert.Equal(t, uint(4), *stored.ReadByID())

	err = uc.Execute(ctx, MarkCommentReadCommand{TenantID: tenantID, CommentID: publicID, ReaderID: 0})
	assert.True(t, apperrors.IsValidationError(err))

	err = uc.Execute(ctx, MarkCommentReadCommand{TenantID: tenantID + 1, CommentID: publicID, ReaderID: 4})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestDeleteCommentUseCase_CascadesToResponses(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	ticketID, chat := f.newTicket(t)
	publicID, _ := seedThread(t, f, ticketID, chat)

	reply := NewReplyCommentUseCase(f.comments, markdown.NewMarkdownService(), testutil.NewMockLogger())
	_, err := reply.Execute(ctx, ReplyCommentCommand{TenantID: tenantID, CommentID: publicID, Text: "on it"})
	require.NoError(t, err)
	require.Equal(t, 1, f.comments.ResponseCount())

	uc := NewDeleteCommentUseCase(f.comments, testutil.NewMockLogger())
	require.NoError(t, uc.Execute(ctx, DeleteCommentCommand{TenantID: tenantID, CommentID: publicID}))
	assert.Zero(t, f.comments.ResponseCount())

	err = uc.Execute(ctx, DeleteCommentCommand{TenantID: tenantID, CommentID: publicID})
	assert.True(t, apperrors.IsNotFoundError(err))
}
