package dto

import (
	"time"

	"github.com/niggl1/appsindico/internal/domain/statuscatalog"
	"github.com/niggl1/appsindico/internal/domain/ticket"
)

// StatusSummaryDTO is the status embedded in ticket responses
type StatusSummaryDTO struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	IsTerminal bool   `json:"is_terminal"`
}

type TicketDTO struct {
	ID              uint              `json:"id"`
	Kind            string            `json:"kind"`
	Protocol        string            `json:"protocol"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	DescriptionHTML string            `json:"description_html"`
	StatusID        uint              `json:"status_id"`
	Status          *StatusSummaryDTO `json:"status,omitempty"`
	Priority        string            `json:"priority"`
	AssigneeID      *uint             `json:"assignee_id,omitempty"`
	AssigneeName    string            `json:"assignee_name,omitempty"`
	Latitude        *float64          `json:"latitude,omitempty"`
	Longitude       *float64          `json:"longitude,omitempty"`
	Address         string            `json:"address,omitempty"`
	ScheduledAt     *time.Time        `json:"scheduled_at,omitempty"`
	PerformedAt     *time.Time        `json:"performed_at,omitempty"`
	ClosedAt        *time.Time        `json:"closed_at,omitempty"`
	ShareToken      string            `json:"share_token,omitempty"`
	ChatToken       string            `json:"chat_token,omitempty"`
	Details         map[string]any    `json:"details"`
	CreatedByID     *uint             `json:"created_by_id,omitempty"`
	CreatedByName   string            `json:"created_by_name,omitempty"`
	Version         int               `json:"version"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

type TimelineEventDTO struct {
	ID           uint           `json:"id"`
	Kind         string         `json:"kind"`
	Description  string         `json:"description"`
	ActorID      *uint          `json:"actor_id,omitempty"`
	ActorName    string         `json:"actor_name"`
	PrevStatusID *uint          `json:"prev_status_id,omitempty"`
	NewStatusID  *uint          `json:"new_status_id,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	IsInternal   bool           `json:"is_internal"`
	CreatedAt    time.Time      `json:"created_at"`
	RelativeTime string         `json:"relative_time"`
}

type AttachmentDTO struct {
	ID        uint      `json:"id"`
	URL       string    `json:"url"`
	Caption   string    `json:"caption,omitempty"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
}

type StatusCountDTO struct {
	StatusID   uint   `json:"status_id"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	IsTerminal bool   `json:"is_terminal"`
	Count      int64  `json:"count"`
}

type TicketStatsDTO struct {
	Total      int64            `json:"total"`
	Open       int64            `json:"open"`
	Closed     int64            `json:"closed"`
	ByStatus   []StatusCountDTO `json:"by_status"`
	ByPriority map[string]int64 `json:"by_priority"`
}

// CreateTicketRequest represents a request to open a ticket of the kind in the path
type CreateTicketRequest struct {
	Title        string         `json:"title" binding:"required,min=1,max=200"`
	Description  string         `json:"description" binding:"max=5000"`
	StatusID     *uint          `json:"status_id,omitempty"`
	Priority     string         `json:"priority,omitempty" binding:"omitempty,oneof=low medium high urgent"`
	AssigneeID   *uint          `json:"assignee_id,omitempty"`
	AssigneeName string         `json:"assignee_name,omitempty" binding:"max=100"`
	Latitude     *float64       `json:"latitude,omitempty" binding:"omitempty,latitude"`
	Longitude    *float64       `json:"longitude,omitempty" binding:"omitempty,longitude"`
	Address      string         `json:"address,omitempty" binding:"max=500"`
	ScheduledAt  *time.Time     `json:"scheduled_at,omitempty"`
	PerformedAt  *time.Time     `json:"performed_at,omitempty"`
	Details      map[string]any `json:"details,omitempty"`
}

// UpdateTicketRequest represents a partial update. Omitted fields are unchanged.
// A zero assignee_id clears the assignee; a zero time clears a date.
type UpdateTicketRequest struct {
	ExpectedVersion *int           `json:"version,omitempty" binding:"omitempty,min=1"`
	Title           *string        `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	Description     *string        `json:"description,omitempty" binding:"omitempty,max=5000"`
	StatusID        *uint          `json:"status_id,omitempty"`
	Priority        *string        `json:"priority,omitempty" binding:"omitempty,oneof=low medium high urgent"`
	AssigneeID      *uint          `json:"assignee_id,omitempty"`
	AssigneeName    *string        `json:"assignee_name,omitempty" binding:"omitempty,max=100"`
	Latitude        *float64       `json:"latitude,omitempty" binding:"omitempty,latitude"`
	Longitude       *float64       `json:"longitude,omitempty" binding:"omitempty,longitude"`
	Address         *string        `json:"address,omitempty" binding:"omitempty,max=500"`
	ScheduledAt     *time.Time     `json:"scheduled_at,omitempty"`
	PerformedAt     *time.Time     `json:"performed_at,omitempty"`
	Details         map[string]any `json:"details,omitempty"`
}

// PublicUpdateTicketRequest is what an editable share link may change
type PublicUpdateTicketRequest struct {
	AuthorName  string     `json:"author_name" binding:"required,min=1,max=100"`
	StatusID    *uint      `json:"status_id,omitempty"`
	Description *string    `json:"description,omitempty" binding:"omitempty,max=5000"`
	PerformedAt *time.Time `json:"performed_at,omitempty"`
}

type AddAttachmentRequest struct {
	URL     string `json:"url" binding:"required,url,max=2048"`
	Caption string `json:"caption,omitempty" binding:"max=300"`
}

// PublicAddAttachmentRequest adds the visitor name to AddAttachmentRequest
type PublicAddAttachmentRequest struct {
	AddAttachmentRequest
	AuthorName string `json:"author_name" binding:"required,min=1,max=100"`
}

func ToStatusSummaryDTO(s *statuscatalog.StatusDefinition) *StatusSummaryDTO {
	if s == nil {
		return nil
	}
	return &StatusSummaryDTO{
		ID:         s.ID(),
		Name:       s.Name(),
		Color:      s.Color(),
		IsTerminal: s.IsTerminal(),
	}
}

// ToTicketDTO maps a ticket. status may be nil when the catalog could not be read.
func ToTicketDTO(t *ticket.Ticket, status *statuscatalog.StatusDefinition, descriptionHTML string) *TicketDTO {
	if t == nil {
		return nil
	}
	loc := t.Location()
	return &TicketDTO{
		ID:              t.ID(),
		Kind:            t.Kind().String(),
		Protocol:        t.Protocol(),
		Title:           t.Title(),
		Description:     t.Description(),
		DescriptionHTML: descriptionHTML,
		StatusID:        t.StatusID(),
		Status:          ToStatusSummaryDTO(status),
		Priority:        t.Priority().String(),
		AssigneeID:      t.AssigneeID(),
		AssigneeName:    t.AssigneeName(),
		Latitude:        loc.Latitude,
		Longitude:       loc.Longitude,
		Address:         loc.Address,
		ScheduledAt:     t.ScheduledAt(),
		PerformedAt:     t.PerformedAt(),
		ClosedAt:        t.ClosedAt(),
		ShareToken:      t.ShareToken(),
		ChatToken:       t.ChatToken(),
		Details:         t.Details(),
		CreatedByID:     t.CreatedByID(),
		CreatedByName:   t.CreatedByName(),
		Version:         t.Version(),
		CreatedAt:       t.CreatedAt(),
		UpdatedAt:       t.UpdatedAt(),
	}
}

// ToPublicTicketDTO strips the access tokens and staff identities.
func ToPublicTicketDTO(t *ticket.Ticket, status *statuscatalog.StatusDefinition, descriptionHTML string) *TicketDTO {
	return ToTicketDTO(t, status, descriptionHTML).Public()
}

// Public returns a copy without the access tokens and staff identities.
func (d *TicketDTO) Public() *TicketDTO {
	if d == nil {
		return nil
	}
	out := *d
	out.ShareToken = ""
	out.ChatToken = ""
	out.AssigneeID = nil
	out.CreatedByID = nil
	return &out
}

func ToTimelineEventDTO(e *ticket.TimelineEvent, relativeTime string) *TimelineEventDTO {
	return &TimelineEventDTO{
		ID:           e.ID(),
		Kind:         e.Kind().String(),
		Description:  e.Description(),
		ActorID:      e.ActorID(),
		ActorName:    e.ActorName(),
		PrevStatusID: e.PrevStatusID(),
		NewStatusID:  e.NewStatusID(),
		Metadata:     e.Metadata(),
		IsInternal:   e.IsInternal(),
		CreatedAt:    e.CreatedAt(),
		RelativeTime: relativeTime,
	}
}

func ToAttachmentDTO(a *ticket.Attachment) *AttachmentDTO {
	return &AttachmentDTO{
		ID:        a.ID(),
		URL:       a.URL(),
		Caption:   a.Caption(),
		Position:  a.Position(),
		CreatedAt: a.CreatedAt(),
	}
}

func ToAttachmentDTOs(list []*ticket.Attachment) []*AttachmentDTO {
	out := make([]*AttachmentDTO, 0, len(list))
	for _, a := range list {
		out = append(out, ToAttachmentDTO(a))
	}
	return out
}
