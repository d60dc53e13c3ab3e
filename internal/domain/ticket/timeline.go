package ticket

import (
	"maps"
	"strings"
	"time"
	"unicode/utf8"

	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
	"github.com/niggl1/appsindico/internal/shared/biztime"
	"github.com/niggl1/appsindico/internal/shared/constants"
)

const maxEventDescriptionLength = 1000

// TimelineEvent is an immutable audit entry. There are no mutators: once
// persisted an event only disappears together with its ticket.
type TimelineEvent struct {
	id           uint
	tenantID     uint
	ticketID     uint
	kind         vo.EventKind
	description  string
	actorID      *uint
	actorName    string
	prevStatusID *uint
	newStatusID  *uint
	metadata     map[string]any
	internal     bool
	createdAt    time.Time
}

// EventParams describes an event to append.
type EventParams struct {
	TenantID     uint
	TicketID     uint
	Kind         vo.EventKind
	Description  string
	ActorID      *uint
	ActorName    string
	PrevStatusID *uint
	NewStatusID  *uint
	Metadata     map[string]any
	// Internal events are hidden from share-link visitors.
	Internal bool
}

func NewTimelineEvent(p EventParams) (*TimelineEvent, error) {
	if p.TicketID == 0 {
		return nil, ErrEventTicketRequired
	}
	if p.TenantID == 0 {
		return nil, ErrInvalidTenantID
	}
	if !p.Kind.IsValid() {
		return nil, ErrInvalidEventKind
	}
	desc := strings.TrimSpace(p.Description)
	if utf8.RuneCountInString(desc) > maxEventDescriptionLength {
		return nil, ErrEventDescTooLong
	}
	actor := strings.TrimSpace(p.ActorName)
	if actor == "" {
		actor = constants.ActorSystem
	}

	return &TimelineEvent{
		tenantID:     p.TenantID,
		ticketID:     p.TicketID,
		kind:         p.Kind,
		description:  desc,
		actorID:      p.ActorID,
		actorName:    actor,
		prevStatusID: p.PrevStatusID,
		newStatusID:  p.NewStatusID,
		metadata:     maps.Clone(p.Metadata),
		internal:     p.Internal,
		createdAt:    biztime.NowUTC(),
	}, nil
}

func ReconstructTimelineEvent(
	id, tenantID, ticketID uint,
	kind vo.EventKind,
	description string,
	actorID *uint,
	actorName string,
	prevStatusID, newStatusID *uint,
	metadata map[string]any,
	internal bool,
	createdAt time.Time,
) *TimelineEvent {
	return &TimelineEvent{
		id:           id,
		tenantID:     tenantID,
		ticketID:     ticketID,
		kind:         kind,
		description:  description,
		actorID:      actorID,
		actorName:    actorName,
		prevStatusID: prevStatusID,
		newStatusID:  newStatusID,
		metadata:     metadata,
		internal:     internal,
		createdAt:    createdAt,
	}
}

func (e *TimelineEvent) ID() uint                 { return e.id }
func (e *TimelineEvent) TenantID() uint           { return e.tenantID }
func (e *TimelineEvent) TicketID() uint           { return e.ticketID }
func (e *TimelineEvent) Kind() vo.EventKind       { return e.kind }
func (e *TimelineEvent) Description() string      { return e.description }
func (e *TimelineEvent) ActorID() *uint           { return e.actorID }
func (e *TimelineEvent) ActorName() string        { return e.actorName }
func (e *TimelineEvent) PrevStatusID() *uint      { return e.prevStatusID }
func (e *TimelineEvent) NewStatusID() *uint       { return e.newStatusID }
func (e *TimelineEvent) Metadata() map[string]any { return maps.Clone(e.metadata) }
func (e *TimelineEvent) IsInternal() bool         { return e.internal }
func (e *TimelineEvent) CreatedAt() time.Time     { return e.createdAt }

func (e *TimelineEvent) SetID(id uint) {
	e.id = id
}
