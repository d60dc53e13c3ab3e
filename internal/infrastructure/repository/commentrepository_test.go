package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niggl1/appsindico/internal/domain/comment"
	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
)

func createComment(t *testing.T, repo *CommentRepositoryImpl, itemID uint, text string, internal bool) *comment.Comment {
	t.Helper()

	p := comment.NewCommentParams{
		TenantID:    testTenant,
		ItemType:    vo.KindIncident,
		ItemID:      itemID,
		AuthorName:  "Visitor",
		Text:        text,
		Attachments: []string{"https://files.example.com/p.jpg"},
	}
	if internal {
		p.AuthorID = ptr(uint(4))
		p.IsInternal = true
	}
	c, err := comment.NewComment(p)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), c))
	return c
}

func addResponse(t *testing.T, repo *CommentRepositoryImpl, commentID uint, text string) *comment.Response {
	t.Helper()

	r, err := comment.NewResponse(testTenant, commentID, ptr(uint(4)), "Elisa", text)
	require.NoError(t, err)
	require.NoError(t, repo.CreateResponse(context.Background(), r))
	return r
}

func TestCommentRepository_ListByItem(t *testing.T) {
	repo := NewCommentRepository(setupTestDB(t), testLogger())
	ctx := context.Background()

	public := createComment(t, repo, 30, "Water on the floor", false)
	internal := createComment(t, repo, 30, "Plumber booked", true)
	createComment(t, repo, 31, "Other ticket", false)

	first := addResponse(t, repo, public.ID(), "Thanks")
	second := addResponse(t, repo, public.ID(), "Fixed")

	t.Run("staff sees everything newest first", func(t *testing.T) {
		list, err := repo.ListByItem(ctx, testTenant, vo.KindIncident, 30, true)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, internal.ID(), list[0].ID())
		assert.Equal(t, public.ID(), list[1].ID())

		responses := list[1].Responses()
		require.Len(t, responses, 2)
		assert.Equal(t, first.ID(), responses[0].ID())
		assert.Equal(t, second.ID(), responses[1].ID())
		assert.Equal(t, []string{"https://files.example.com/p.jpg"}, list[1].Attachments())
	})

	t.Run("public view drops internal comments", func(t *testing.T) {
		list, err := repo.ListByItem(ctx, testTenant, vo.KindIncident, 30, false)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, public.ID(), list[0].ID())
	})

	t.Run("empty item", func(t *testing.T) {
		list, err := repo.ListByItem(ctx, testTenant, vo.KindIncident, 99, true)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestCommentRepository_MarkRead(t *testing.T) {
	repo := NewCommentRepository(setupTestDB(t), testLogger())
	ctx := context.Background()
	c := createComment(t, repo, 30, "Noise at night", false)

	changed, err := c.MarkRead(7)
	require.NoError(t, err)
	require.True(t, changed)
	require.NoError(t, repo.MarkRead(ctx, c))

	found, err := repo.GetByID(ctx, testTenant, c.ID())
	require.NoError(t, err)
	assert.True(t, found.IsRead())
	require.NotNil(t, found.ReadByID())
	assert.Equal(t, uint(7), *found.ReadByID())
}

func TestCommentRepository_Delete(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewCommentRepository(gdb, testLogger())
	ctx := context.Background()

	c := createComment(t, repo, 30, "Broken lamp", false)
	addResponse(t, repo, c.ID(), "On it")

	require.NoError(t, repo.Delete(ctx, testTenant, c.ID()))
	assert.ErrorIs(t, repo.Delete(ctx, testTenant, c.ID()), comment.ErrCommentNotFound)

	var orphans int64
	require.NoError(t, gdb.Table("item_comment_responses").Where("comment_id = ?", c.ID()).Count(&orphans).Error)
	assert.Zero(t, orphans)

	t.Run("response to a missing comment", func(t *testing.T) {
		r, err := comment.NewResponse(testTenant, c.ID(), nil, "Visitor", "Hello?")
		require.NoError(t, err)
		assert.ErrorIs(t, repo.CreateResponse(ctx, r), comment.ErrCommentNotFound)
	})

	t.Run("delete by item", func(t *testing.T) {
		a := createComment(t, repo, 40, "One", false)
		createComment(t, repo, 40, "Two", true)
		addResponse(t, repo, a.ID(), "Reply")

		require.NoError(t, repo.DeleteByItem(ctx, testTenant, vo.KindIncident, 40))
		list, err := repo.ListByItem(ctx, testTenant, vo.KindIncident, 40, true)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}
