package share

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	method string
	path   string
	body   map[string]any
}

func newServer(t *testing.T, status int, payload string, rec *recorded) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rec != nil {
			rec.method = r.Method
			rec.path = r.URL.EscapedPath()
			if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
				require.NoError(t, json.Unmarshal(raw, &rec.body))
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", WithTimeout(5*time.Second))
}

func TestResolve(t *testing.T) {
	rec := &recorded{}
	c := newServer(t, http.StatusOK, `{"success":true,"data":{
		"ticket":{"id":3,"kind":"maintenance","protocol":"MAN-2026-0003","title":"Bomba"},
		"attachments":[{"id":1,"url":"https://cdn.example.com/a.jpg","position":1}],
		"timeline":[{"id":9,"kind":"created","actor_name":"Síndico"}],
		"editable":true}}`, rec)

	snapshot, err := c.Resolve(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/public/share/tok", rec.path)
	assert.Equal(t, "MAN-2026-0003", snapshot.Ticket.Protocol)
	assert.True(t, snapshot.Editable)
	require.Len(t, snapshot.Attachments, 1)
	require.Len(t, snapshot.Timeline, 1)
	assert.Equal(t, "created", snapshot.Timeline[0].Kind)
}

func TestResolve_NullDataIsNotFound(t *testing.T) {
	c := newServer(t, http.StatusOK, `{"success":true,"data":null}`, nil)

	snapshot, err := c.Resolve(context.Background(), "gone")

	assert.Nil(t, snapshot)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResolve_EscapesToken(t *testing.T) {
	rec := &recorded{}
	c := newServer(t, http.StatusOK, `{"success":true,"data":null}`, rec)

	_, _ = c.Resolve(context.Background(), "a/b")

	assert.Equal(t, "/public/share/a%2Fb", rec.path)
}

func TestUpdateTicket(t *testing.T) {
	rec := &recorded{}
	c := newServer(t, http.StatusOK, `{"success":true,"data":{"id":3,"status_id":4,"version":2}}`, rec)

	statusID := uint(4)
	got, err := c.UpdateTicket(context.Background(), "tok", TicketUpdate{AuthorName: "Zelador", StatusID: &statusID})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, rec.method)
	assert.Equal(t, "/public/share/tok/ticket", rec.path)
	assert.Equal(t, "Zelador", rec.body["author_name"])
	assert.EqualValues(t, 4, rec.body["status_id"])
	assert.NotContains(t, rec.body, "description")
	assert.Equal(t, 2, got.Version)
}

func TestUpdateTicket_ReadOnlyLink(t *testing.T) {
	c := newServer(t, http.StatusForbidden,
		`{"success":false,"error":{"type":"forbidden","message":"share link is read-only"}}`, nil)

	_, err := c.UpdateTicket(context.Background(), "tok", TicketUpdate{AuthorName: "Ana"})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "forbidden", apiErr.Type)
	assert.Equal(t, "share link is read-only", apiErr.Message)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestAddAttachment(t *testing.T) {
	rec := &recorded{}
	c := newServer(t, http.StatusCreated, `{"success":true,"data":{"id":7,"url":"https://cdn.example.com/b.jpg","position":2}}`, rec)

	a, err := c.AddAttachment(context.Background(), "tok", AttachmentInput{AuthorName: "Ana", URL: "https://cdn.example.com/b.jpg"})

	require.NoError(t, err)
	assert.Equal(t, "/public/share/tok/attachments", rec.path)
	assert.Equal(t, 2, a.Position)
}

func TestComments(t *testing.T) {
	rec := &recorded{}
	c := newServer(t, http.StatusOK, `{"success":true,"data":[{"id":1,"text":"Vazando","responses":[{"id":2,"text":"Ok"}]}]}`, rec)

	comments, err := c.ListComments(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, "/public/share/tok/comments", rec.path)
	require.Len(t, comments, 1)
	require.Len(t, comments[0].Responses, 1)
	assert.Equal(t, "Ok", comments[0].Responses[0].Text)
}

func TestPostChatComment(t *testing.T) {
	rec := &recorded{}
	c := newServer(t, http.StatusCreated, `{"success":true,"data":{"id":8},"message":"Comment created successfully"}`, rec)

	created, err := c.PostChatComment(context.Background(), "ct", CommentInput{Text: "Obrigado"})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/public/chat/ct/comments", rec.path)
	assert.Equal(t, "Obrigado", rec.body["text"])
	assert.Equal(t, uint(8), created.ID)
}

func TestListChatComments_UnknownToken(t *testing.T) {
	c := newServer(t, http.StatusNotFound, `{"success":false,"error":{"type":"not_found","message":"ticket not found"}}`, nil)

	_, err := c.ListChatComments(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPostComment_NonJSONError(t *testing.T) {
	c := newServer(t, http.StatusTooManyRequests, `rate limited`, nil)

	_, err := c.PostComment(context.Background(), "tok", CommentInput{Text: "oi"})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	assert.Equal(t, "rate limited", apiErr.Message)
}
