package ticket

import (
	"context"
	"time"

	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
)

// Repository persists tickets. Every lookup is scoped by tenant and kind so a
// ticket id from another tenant or kind behaves like a missing one.
type Repository interface {
	Create(ctx context.Context, t *Ticket) error
	// Update persists t with an optimistic check on t.Version()-1.
	Update(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, tenantID uint, kind vo.Kind, id uint) error
	GetByID(ctx context.Context, tenantID uint, kind vo.Kind, id uint) (*Ticket, error)
	// GetByShareToken and GetByChatToken look a ticket up by one of its
	// access tokens across tenants.
	GetByShareToken(ctx context.Context, token string) (*Ticket, error)
	GetByChatToken(ctx context.Context, token string) (*Ticket, error)
	ExistsByProtocol(ctx context.Context, tenantID uint, protocol string) (bool, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)
	CountByStatus(ctx context.Context, tenantID uint, kind vo.Kind) (map[uint]int64, error)
	CountByPriority(ctx context.Context, tenantID uint, kind vo.Kind) (map[vo.Priority]int64, error)
}

type Filter struct {
	TenantID      uint
	Kind          vo.Kind
	StatusID      *uint
	Priority      *vo.Priority
	AssigneeID    *uint
	Search        string
	ScheduledFrom *time.Time
	ScheduledTo   *time.Time
	Page          int
	PageSize      int
	SortBy        string
	SortOrder     string
}

// TimelineRepository is append-only.
type TimelineRepository interface {
	Append(ctx context.Context, event *TimelineEvent) error
	// ListByTicket returns events newest-first.
	ListByTicket(ctx context.Context, tenantID, ticketID uint, includeInternal bool) ([]*TimelineEvent, error)
	DeleteByTicket(ctx context.Context, tenantID, ticketID uint) error
}

type AttachmentRepository interface {
	Create(ctx context.Context, a *Attachment) error
	GetByID(ctx context.Context, tenantID, ticketID, id uint) (*Attachment, error)
	// ListByTicket returns attachments by ascending position.
	ListByTicket(ctx context.Context, tenantID, ticketID uint) ([]*Attachment, error)
	MaxPosition(ctx context.Context, tenantID, ticketID uint) (int, error)
	Delete(ctx context.Context, tenantID, id uint) error
	DeleteByTicket(ctx context.Context, tenantID, ticketID uint) error
}

// DetailsValidator checks the kind-specific details document.
type DetailsValidator interface {
	Validate(kind vo.Kind, details map[string]any) error
}

// EventDescriber renders the human-readable description stored on a timeline
// event. args depend on the kind: a protocol for opening, status names for
// status transitions, a file url for attachments, an author for comments.
type EventDescriber interface {
	Describe(kind vo.EventKind, args ...any) string
}
