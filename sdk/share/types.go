// Package share is a Go client for the public share-link and chat API of
// appsindico. It needs no credentials: the token in the URL is the grant.
package share

import (
	"encoding/json"
	"time"
)

// Status is the short form of a catalog entry embedded in a ticket.
type Status struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	IsTerminal bool   `json:"is_terminal"`
}

// Ticket is the shared item as the visitor sees it.
type Ticket struct {
	ID              uint           `json:"id"`
	Kind            string         `json:"kind"`
	Protocol        string         `json:"protocol"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	DescriptionHTML string         `json:"description_html"`
	StatusID        uint           `json:"status_id"`
	Status          *Status        `json:"status,omitempty"`
	Priority        string         `json:"priority"`
	AssigneeName    string         `json:"assignee_name,omitempty"`
	Address         string         `json:"address,omitempty"`
	ScheduledAt     *time.Time     `json:"scheduled_at,omitempty"`
	PerformedAt     *time.Time     `json:"performed_at,omitempty"`
	ClosedAt        *time.Time     `json:"closed_at,omitempty"`
	Details         map[string]any `json:"details"`
	Version         int            `json:"version"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// Attachment is a photo or document linked to the ticket.
type Attachment struct {
	ID        uint      `json:"id"`
	URL       string    `json:"url"`
	Caption   string    `json:"caption,omitempty"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

// TimelineEvent is one public entry of the ticket history.
type TimelineEvent struct {
	ID           uint           `json:"id"`
	Kind         string         `json:"kind"`
	Description  string         `json:"description"`
	ActorName    string         `json:"actor_name"`
	PrevStatusID *uint          `json:"prev_status_id,omitempty"`
	NewStatusID  *uint          `json:"new_status_id,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	RelativeTime string         `json:"relative_time"`
}

// Snapshot is the payload behind a share token.
type Snapshot struct {
	Ticket      *Ticket          `json:"ticket"`
	Attachments []*Attachment    `json:"attachments"`
	Timeline    []*TimelineEvent `json:"timeline"`
	Editable    bool             `json:"editable"`
	ExpiresAt   *time.Time       `json:"expires_at,omitempty"`
}

// Response is a staff reply under a comment.
type Response struct {
	ID         uint      `json:"id"`
	AuthorName string    `json:"author_name"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

// Comment is a public comment on the shared ticket.
type Comment struct {
	ID          uint        `json:"id"`
	ItemType    string      `json:"item_type"`
	ItemID      uint        `json:"item_id"`
	AuthorName  string      `json:"author_name"`
	Text        string      `json:"text"`
	Attachments []string    `json:"attachments"`
	IsRead      bool        `json:"is_read"`
	CreatedAt   time.Time   `json:"created_at"`
	Responses   []*Response `json:"responses"`
}

// CommentInput is a new visitor comment. AuthorName may be empty.
type CommentInput struct {
	AuthorName    string   `json:"author_name"`
	AuthorContact string   `json:"author_contact,omitempty"`
	Text          string   `json:"text"`
	Attachments   []string `json:"attachments,omitempty"`
}

// CreatedComment identifies the comment the server stored.
type CreatedComment struct {
	ID        uint      `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// TicketUpdate lists what an editable link may change. AuthorName is required.
type TicketUpdate struct {
	AuthorName  string     `json:"author_name"`
	StatusID    *uint      `json:"status_id,omitempty"`
	Description *string    `json:"description,omitempty"`
	PerformedAt *time.Time `json:"performed_at,omitempty"`
}

// AttachmentInput adds a file through an editable link.
type AttachmentInput struct {
	AuthorName string `json:"author_name"`
	URL        string `json:"url"`
	Caption    string `json:"caption,omitempty"`
}

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   *errorInfo      `json:"error,omitempty"`
	Message string          `json:"message,omitempty"`
}

type errorInfo struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
