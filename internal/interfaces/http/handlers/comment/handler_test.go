package comment

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niggl1/appsindico/internal/application/comment/dto"
	"github.com/niggl1/appsindico/internal/application/comment/usecases"
	"github.com/niggl1/appsindico/internal/interfaces/http/handlers/testutil"
	"github.com/niggl1/appsindico/internal/shared/authorization"
	"github.com/niggl1/appsindico/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockListUC struct {
	result []*dto.CommentDTO
	err    error
	query  usecases.ListCommentsQuery
}

func (m *mockListUC) Execute(_ context.Context, query usecases.ListCommentsQuery) ([]*dto.CommentDTO, error) {
	m.query = query
	return m.result, m.err
}

type mockCreateUC struct {
	result *dto.CreateCommentResult
	err    error
	cmd    usecases.CreateCommentCommand
	called bool
}

func (m *mockCreateUC) Execute(_ context.Context, cmd usecases.CreateCommentCommand) (*dto.CreateCommentResult, error) {
	m.cmd = cmd
	m.called = true
	return m.result, m.err
}

type mockReplyUC struct {
	result *dto.ResponseDTO
	err    error
	cmd    usecases.ReplyCommentCommand
}

func (m *mockReplyUC) Execute(_ context.Context, cmd usecases.ReplyCommentCommand) (*dto.ResponseDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockMarkReadUC struct {
	err error
	cmd usecases.MarkCommentReadCommand
}

func (m *mockMarkReadUC) Execute(_ context.Context, cmd usecases.MarkCommentReadCommand) error {
	m.cmd = cmd
	return m.err
}

type mockDeleteUC struct {
	err error
	cmd usecases.DeleteCommentCommand
}

func (m *mockDeleteUC) Execute(_ context.Context, cmd usecases.DeleteCommentCommand) error {
	m.cmd = cmd
	return m.err
}

type mockPublicListUC struct {
	result []*dto.CommentDTO
	err    error
	query  usecases.ListPublicCommentsQuery
}

func (m *mockPublicListUC) Execute(_ context.Context, query usecases.ListPublicCommentsQuery) ([]*dto.CommentDTO, error) {
	m.query = query
	return m.result, m.err
}

type mockPublicCreateUC struct {
	result *dto.CreateCommentResult
	err    error
	cmd    usecases.CreatePublicCommentCommand
}

func (m *mockPublicCreateUC) Execute(_ context.Context, cmd usecases.CreatePublicCommentCommand) (*dto.CreateCommentResult, error) {
	m.cmd = cmd
	return m.result, m.err
}

// =====================================================================
// CommentHandler
// =====================================================================

func TestCommentHandler_ListComments_IncludesInternal(t *testing.T) {
	uc := &mockListUC{result: []*dto.CommentDTO{{ID: 1, IsInternal: true}}}
	h := NewCommentHandler(uc, nil, nil, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/comments", nil)
	testutil.SetAuthContext(c, 10, 7, authorization.RoleViewer)
	testutil.SetQueryParams(c, map[string]string{"item_type": "incident", "item_id": "2"})

	h.ListComments(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecases.ListCommentsQuery{TenantID: 7, ItemType: "incident", ItemID: 2, IncludeInternal: true}, uc.query)
}

func TestCommentHandler_ListComments_BadItemID(t *testing.T) {
	h := NewCommentHandler(&mockListUC{}, nil, nil, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/comments", nil)
	testutil.SetAuthContext(c, 10, 7, authorization.RoleViewer)
	testutil.SetQueryParams(c, map[string]string{"item_type": "incident", "item_id": "-1"})

	h.ListComments(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCommentHandler_CreateComment(t *testing.T) {
	uc := &mockCreateUC{result: &dto.CreateCommentResult{ID: 4}}
	h := NewCommentHandler(nil, uc, nil, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/comments", dto.CreateCommentRequest{
		ItemType:   "maintenance",
		ItemID:     3,
		Text:       "Peça encomendada",
		IsInternal: true,
	})
	testutil.SetAuthContext(c, 10, 7, authorization.RoleStaff)

	h.CreateComment(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(7), uc.cmd.TenantID)
	require.NotNil(t, uc.cmd.AuthorID)
	assert.Equal(t, uint(10), *uc.cmd.AuthorID)
	assert.Equal(t, "Test Staff", uc.cmd.AuthorName)
	assert.True(t, uc.cmd.IsInternal)
}

func TestCommentHandler_CreateComment_EmptyText(t *testing.T) {
	uc := &mockCreateUC{}
	h := NewCommentHandler(nil, uc, nil, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/comments", map[string]any{"item_type": "maintenance", "item_id": 3})
	testutil.SetAuthContext(c, 10, 7, authorization.RoleStaff)

	h.CreateComment(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, uc.called)
}

func TestCommentHandler_ReplyComment(t *testing.T) {
	uc := &mockReplyUC{result: &dto.ResponseDTO{ID: 1, Text: "Ok"}}
	h := NewCommentHandler(nil, nil, uc, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/comments/5/responses", dto.ReplyCommentRequest{Text: "Ok"})
	testutil.SetAuthContext(c, 10, 7, authorization.RoleStaff)
	testutil.SetURLParam(c, "id", "5")

	h.ReplyComment(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(5), uc.cmd.CommentID)
	assert.Equal(t, "Ok", uc.cmd.Text)
}

func TestCommentHandler_MarkCommentRead(t *testing.T) {
	uc := &mockMarkReadUC{}
	h := NewCommentHandler(nil, nil, nil, uc, nil, testutil.NewMockLogger())

	c, _ := testutil.NewTestContext(http.MethodPost, "/comments/5/read", nil)
	testutil.SetAuthContext(c, 10, 7, authorization.RoleStaff)
	testutil.SetURLParam(c, "id", "5")

	h.MarkCommentRead(c)

	assert.Equal(t, http.StatusNoContent, c.Writer.Status())
	assert.Equal(t, usecases.MarkCommentReadCommand{TenantID: 7, CommentID: 5, ReaderID: 10}, uc.cmd)
}

func TestCommentHandler_DeleteComment_NotFound(t *testing.T) {
	uc := &mockDeleteUC{err: errors.NewNotFoundError("comment not found")}
	h := NewCommentHandler(nil, nil, nil, nil, uc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodDelete, "/comments/5", nil)
	testutil.SetAuthContext(c, 10, 7, authorization.RoleManager)
	testutil.SetURLParam(c, "id", "5")

	h.DeleteComment(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// PublicCommentHandler
// =====================================================================

func TestPublicCommentHandler_ListComments_UsesChannel(t *testing.T) {
	uc := &mockPublicListUC{result: []*dto.CommentDTO{}}
	h := NewPublicCommentHandler(usecases.ChannelChat, uc, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/public/chat/ct/comments", nil)
	testutil.SetURLParam(c, "token", "ct")

	h.ListComments(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecases.ListPublicCommentsQuery{Channel: usecases.ChannelChat, Token: "ct"}, uc.query)
}

func TestPublicCommentHandler_ListComments_UnknownToken(t *testing.T) {
	uc := &mockPublicListUC{err: errors.NewNotFoundError("link not found")}
	h := NewPublicCommentHandler(usecases.ChannelShareLink, uc, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/public/share/x/comments", nil)
	testutil.SetURLParam(c, "token", "x")

	h.ListComments(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublicCommentHandler_CreateComment(t *testing.T) {
	uc := &mockPublicCreateUC{result: &dto.CreateCommentResult{ID: 8}}
	h := NewPublicCommentHandler(usecases.ChannelShareLink, nil, uc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/public/share/tok/comments", dto.PublicCreateCommentRequest{
		AuthorName:    "Morador 302",
		AuthorContact: "morador@example.com",
		Text:          "Ainda está vazando",
	})
	testutil.SetURLParam(c, "token", "tok")

	h.CreateComment(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, usecases.ChannelShareLink, uc.cmd.Channel)
	assert.Equal(t, "tok", uc.cmd.Token)
	assert.Equal(t, "Morador 302", uc.cmd.AuthorName)
	assert.Equal(t, "Ainda está vazando", uc.cmd.Text)
}
