package sharelink

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niggl1/appsindico/internal/application/sharelink/dto"
	"github.com/niggl1/appsindico/internal/application/sharelink/usecases"
	ticketdto "github.com/niggl1/appsindico/internal/application/ticket/dto"
	"github.com/niggl1/appsindico/internal/interfaces/http/handlers/testutil"
	"github.com/niggl1/appsindico/internal/shared/authorization"
	"github.com/niggl1/appsindico/internal/shared/errors"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateUC struct {
	result *dto.CreateShareLinkResult
	err    error
	cmd    usecases.CreateShareLinkCommand
}

func (m *mockCreateUC) Execute(_ context.Context, cmd usecases.CreateShareLinkCommand) (*dto.CreateShareLinkResult, error) {
	m.cmd = cmd
	return m.result, m.err
}

type mockListUC struct {
	result []*dto.ShareLinkDTO
	err    error
	query  usecases.ListShareLinksQuery
	called bool
}

func (m *mockListUC) Execute(_ context.Context, query usecases.ListShareLinksQuery) ([]*dto.ShareLinkDTO, error) {
	m.query = query
	m.called = true
	return m.result, m.err
}

type mockDeactivateUC struct {
	err error
	cmd usecases.DeactivateShareLinkCommand
}

func (m *mockDeactivateUC) Execute(_ context.Context, cmd usecases.DeactivateShareLinkCommand) error {
	m.cmd = cmd
	return m.err
}

type mockResolveUC struct {
	result *dto.SnapshotDTO
	query  usecases.ResolveShareLinkQuery
}

func (m *mockResolveUC) Execute(_ context.Context, query usecases.ResolveShareLinkQuery) *dto.SnapshotDTO {
	m.query = query
	return m.result
}

type mockPublicUpdateUC struct {
	result *ticketdto.TicketDTO
	err    error
	cmd    usecases.PublicUpdateTicketCommand
	called bool
}

func (m *mockPublicUpdateUC) Execute(_ context.Context, cmd usecases.PublicUpdateTicketCommand) (*ticketdto.TicketDTO, error) {
	m.cmd = cmd
	m.called = true
	return m.result, m.err
}

type mockPublicAttachUC struct {
	result *ticketdto.AttachmentDTO
	err    error
	cmd    usecases.PublicAddAttachmentCommand
}

func (m *mockPublicAttachUC) Execute(_ context.Context, cmd usecases.PublicAddAttachmentCommand) (*ticketdto.AttachmentDTO, error) {
	m.cmd = cmd
	return m.result, m.err
}

// =====================================================================
// ShareLinkHandler
// =====================================================================

func TestShareLinkHandler_Create(t *testing.T) {
	uc := &mockCreateUC{result: &dto.CreateShareLinkResult{ID: 1, Token: "abc"}}
	h := NewShareLinkHandler(uc, nil, nil, testutil.NewMockLogger())

	hours := 48
	c, w := testutil.NewTestContext(http.MethodPost, "/share-links", dto.CreateShareLinkRequest{
		ItemType:    "maintenance",
		ItemID:      3,
		Editable:    true,
		ExpiryHours: &hours,
	})
	testutil.SetAuthContext(c, 10, 7, authorization.RoleStaff)

	h.CreateShareLink(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(7), uc.cmd.TenantID)
	assert.True(t, uc.cmd.Editable)
	require.NotNil(t, uc.cmd.CreatedByID)
	assert.Equal(t, uint(10), *uc.cmd.CreatedByID)
	assert.Equal(t, "Test Staff", uc.cmd.CreatedByName)
	require.NotNil(t, uc.cmd.ExpiryHours)
	assert.Equal(t, 48, *uc.cmd.ExpiryHours)
}

func TestShareLinkHandler_Create_UnknownKind(t *testing.T) {
	h := NewShareLinkHandler(&mockCreateUC{}, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/share-links", map[string]any{"item_type": "invoice", "item_id": 3})
	testutil.SetAuthContext(c, 10, 7, authorization.RoleStaff)

	h.CreateShareLink(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestShareLinkHandler_List(t *testing.T) {
	uc := &mockListUC{result: []*dto.ShareLinkDTO{{ID: 1, Token: "abc"}}}
	h := NewShareLinkHandler(nil, uc, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/share-links", nil)
	testutil.SetAuthContext(c, 10, 7, authorization.RoleViewer)
	testutil.SetQueryParams(c, map[string]string{"item_type": "incident", "item_id": "4"})

	h.ListShareLinks(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecases.ListShareLinksQuery{TenantID: 7, ItemType: "incident", ItemID: 4}, uc.query)
}

func TestShareLinkHandler_List_MissingItem(t *testing.T) {
	uc := &mockListUC{}
	h := NewShareLinkHandler(nil, uc, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/share-links", nil)
	testutil.SetAuthContext(c, 10, 7, authorization.RoleViewer)
	testutil.SetQueryParams(c, map[string]string{"item_type": "incident"})

	h.ListShareLinks(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, uc.called)
}

func TestShareLinkHandler_Deactivate(t *testing.T) {
	uc := &mockDeactivateUC{}
	h := NewShareLinkHandler(nil, nil, uc, testutil.NewMockLogger())

	c, _ := testutil.NewTestContext(http.MethodDelete, "/share-links/6", nil)
	testutil.SetAuthContext(c, 10, 7, authorization.RoleStaff)
	testutil.SetURLParam(c, "id", "6")

	h.DeactivateShareLink(c)

	assert.Equal(t, http.StatusNoContent, c.Writer.Status())
	assert.Equal(t, usecases.DeactivateShareLinkCommand{TenantID: 7, ShareLinkID: 6}, uc.cmd)
}

func TestShareLinkHandler_Deactivate_OtherTenant(t *testing.T) {
	uc := &mockDeactivateUC{err: errors.NewNotFoundError("share link not found")}
	h := NewShareLinkHandler(nil, nil, uc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodDelete, "/share-links/6", nil)
	testutil.SetAuthContext(c, 10, 8, authorization.RoleStaff)
	testutil.SetURLParam(c, "id", "6")

	h.DeactivateShareLink(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// =====================================================================
// PublicShareHandler
// =====================================================================

func TestPublicShareHandler_Resolve_Hit(t *testing.T) {
	uc := &mockResolveUC{result: &dto.SnapshotDTO{
		Ticket:   &ticketdto.TicketDTO{ID: 3, Protocol: "MAN-2026-0003"},
		Editable: true,
	}}
	h := NewPublicShareHandler(uc, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/public/share/tok", nil)
	testutil.SetURLParam(c, "token", "tok")

	h.ResolveShareLink(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tok", uc.query.Token)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)
	var snapshot dto.SnapshotDTO
	require.NoError(t, json.Unmarshal(resp.Data, &snapshot))
	assert.Equal(t, "MAN-2026-0003", snapshot.Ticket.Protocol)
	assert.True(t, snapshot.Editable)
}

func TestPublicShareHandler_Resolve_MissReturnsNullData(t *testing.T) {
	h := NewPublicShareHandler(&mockResolveUC{}, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/public/share/nope", nil)
	testutil.SetURLParam(c, "token", "nope")

	h.ResolveShareLink(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":null}`, w.Body.String())
}

func TestPublicShareHandler_UpdateTicket(t *testing.T) {
	uc := &mockPublicUpdateUC{result: &ticketdto.TicketDTO{ID: 3}}
	h := NewPublicShareHandler(nil, uc, nil, testutil.NewMockLogger())

	statusID := uint(4)
	c, w := testutil.NewTestContext(http.MethodPatch, "/public/share/tok/ticket", ticketdto.PublicUpdateTicketRequest{
		AuthorName: "Zelador João",
		StatusID:   &statusID,
	})
	testutil.SetURLParam(c, "token", "tok")

	h.UpdateTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tok", uc.cmd.Token)
	assert.Equal(t, "Zelador João", uc.cmd.AuthorName)
	require.NotNil(t, uc.cmd.StatusID)
	assert.Equal(t, uint(4), *uc.cmd.StatusID)
}

func TestPublicShareHandler_UpdateTicket_RequiresAuthorName(t *testing.T) {
	uc := &mockPublicUpdateUC{}
	h := NewPublicShareHandler(nil, uc, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPatch, "/public/share/tok/ticket", map[string]any{"description": "feito"})
	testutil.SetURLParam(c, "token", "tok")

	h.UpdateTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, uc.called)
}

func TestPublicShareHandler_UpdateTicket_ReadOnlyLink(t *testing.T) {
	uc := &mockPublicUpdateUC{err: errors.NewForbiddenError("share link is read-only")}
	h := NewPublicShareHandler(nil, uc, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPatch, "/public/share/tok/ticket", map[string]any{"author_name": "Ana"})
	testutil.SetURLParam(c, "token", "tok")

	h.UpdateTicket(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPublicShareHandler_AddAttachment(t *testing.T) {
	uc := &mockPublicAttachUC{result: &ticketdto.AttachmentDTO{ID: 9}}
	h := NewPublicShareHandler(nil, nil, uc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/public/share/tok/attachments", map[string]any{
		"author_name": "Ana",
		"url":         "https://cdn.example.com/depois.jpg",
		"caption":     "Depois",
	})
	testutil.SetURLParam(c, "token", "tok")

	h.AddAttachment(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, usecases.PublicAddAttachmentCommand{
		Token:      "tok",
		AuthorName: "Ana",
		URL:        "https://cdn.example.com/depois.jpg",
		Caption:    "Depois",
	}, uc.cmd)
}
