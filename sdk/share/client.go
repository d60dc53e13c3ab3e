package share

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound is returned when a token does not resolve to a live ticket.
var ErrNotFound = errors.New("share: not found")

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Type == "" {
		return fmt.Sprintf("api error: status=%d %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error: status=%d type=%s %s", e.StatusCode, e.Type, e.Message)
}

// Is lets errors.Is(err, ErrNotFound) match 404 answers.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Client talks to the public endpoints of one appsindico server.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// Option is a function that configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		client.httpClient.Timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(client *Client) {
		client.userAgent = ua
	}
}

// NewClient creates a client for baseURL, e.g. "https://condo.example.com".
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: "appsindico-share-sdk",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Resolve returns what the share token grants. A missing, expired or
// deactivated token yields ErrNotFound.
func (c *Client) Resolve(ctx context.Context, token string) (*Snapshot, error) {
	var snapshot *Snapshot
	if err := c.doRequest(ctx, http.MethodGet, c.sharePath(token, ""), nil, &snapshot); err != nil {
		return nil, fmt.Errorf("resolve share link: %w", err)
	}
	if snapshot == nil {
		return nil, fmt.Errorf("resolve share link: %w", ErrNotFound)
	}
	return snapshot, nil
}

// UpdateTicket edits the ticket through an editable share link.
func (c *Client) UpdateTicket(ctx context.Context, token string, update TicketUpdate) (*Ticket, error) {
	var t Ticket
	if err := c.doRequest(ctx, http.MethodPatch, c.sharePath(token, "/ticket"), update, &t); err != nil {
		return nil, fmt.Errorf("update ticket: %w", err)
	}
	return &t, nil
}

// AddAttachment appends a file through an editable share link.
func (c *Client) AddAttachment(ctx context.Context, token string, input AttachmentInput) (*Attachment, error) {
	var a Attachment
	if err := c.doRequest(ctx, http.MethodPost, c.sharePath(token, "/attachments"), input, &a); err != nil {
		return nil, fmt.Errorf("add attachment: %w", err)
	}
	return &a, nil
}

// ListComments returns the public comments visible through a share token.
func (c *Client) ListComments(ctx context.Context, token string) ([]*Comment, error) {
	var comments []*Comment
	if err := c.doRequest(ctx, http.MethodGet, c.sharePath(token, "/comments"), nil, &comments); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// PostComment adds a visitor comment through a share token.
func (c *Client) PostComment(ctx context.Context, token string, input CommentInput) (*CreatedComment, error) {
	var created CreatedComment
	if err := c.doRequest(ctx, http.MethodPost, c.sharePath(token, "/comments"), input, &created); err != nil {
		return nil, fmt.Errorf("post comment: %w", err)
	}
	return &created, nil
}

// ListChatComments returns the thread reached through a ticket chat token.
func (c *Client) ListChatComments(ctx context.Context, chatToken string) ([]*Comment, error) {
	var comments []*Comment
	if err := c.doRequest(ctx, http.MethodGet, c.chatPath(chatToken), nil, &comments); err != nil {
		return nil, fmt.Errorf("list chat comments: %w", err)
	}
	return comments, nil
}

// PostChatComment adds a visitor comment through a ticket chat token.
func (c *Client) PostChatComment(ctx context.Context, chatToken string, input CommentInput) (*CreatedComment, error) {
	var created CreatedComment
	if err := c.doRequest(ctx, http.MethodPost, c.chatPath(chatToken), input, &created); err != nil {
		return nil, fmt.Errorf("post chat comment: %w", err)
	}
	return &created, nil
}

func (c *Client) sharePath(token, suffix string) string {
	return c.baseURL + "/public/share/" + url.PathEscape(token) + suffix
}

func (c *Client) chatPath(token string) string {
	return c.baseURL + "/public/chat/" + url.PathEscape(token) + "/comments"
}

// doRequest performs an HTTP request and decodes the data field of the envelope.
func (c *Client) doRequest(ctx context.Context, method, url string, body any, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var envelope apiResponse
	decodeErr := json.Unmarshal(respBody, &envelope)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
		if decodeErr == nil && envelope.Error != nil {
			apiErr.Type = envelope.Error.Type
			apiErr.Message = envelope.Error.Message
		}
		return apiErr
	}

	if decodeErr != nil {
		return fmt.Errorf("unmarshal response: %w", decodeErr)
	}
	if !envelope.Success {
		return &APIError{StatusCode: resp.StatusCode, Message: envelope.Message}
	}

	if result == nil || len(envelope.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, result); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	return nil
}
