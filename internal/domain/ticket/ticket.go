// Package ticket holds the generic operational-record aggregate shared by
// inspections, maintenance jobs, incidents, checklists and service orders,
// together with its timeline events and attachments.
package ticket

import (
	"bytes"
	"encoding/json"
	"maps"
	"strings"
	"time"
	"unicode/utf8"

	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
	"github.com/niggl1/appsindico/internal/shared/biztime"
)

const (
	maxTitleLength        = 200
	maxDescriptionLength  = 5000
	maxAssigneeNameLength = 100
)

// Field names reported by ApplyPatch.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldStatus      = "status_id"
	FieldPriority    = "priority"
	FieldAssignee    = "assignee"
	FieldLocation    = "location"
	FieldScheduledAt = "scheduled_at"
	FieldPerformedAt = "performed_at"
	FieldDetails     = "details"
)

type Ticket struct {
	id            uint
	tenantID      uint
	kind          vo.Kind
	protocol      string
	title         string
	description   string
	statusID      uint
	priority      vo.Priority
	assigneeID    *uint
	assigneeName  string
	location      vo.Location
	scheduledAt   *time.Time
	performedAt   *time.Time
	closedAt      *time.Time
	shareToken    string
	chatToken     string
	details       map[string]any
	createdByID   *uint
	createdByName string
	version       int
	createdAt     time.Time
	updatedAt     time.Time
}

// NewTicketParams carries the creation input. StatusID must already be resolved.
type NewTicketParams struct {
	TenantID      uint
	Kind          vo.Kind
	Title         string
	Description   string
	StatusID      uint
	Priority      vo.Priority
	AssigneeID    *uint
	AssigneeName  string
	Location      vo.Location
	ScheduledAt   *time.Time
	PerformedAt   *time.Time
	Details       map[string]any
	CreatedByID   *uint
	CreatedByName string
}

func NewTicket(p NewTicketParams) (*Ticket, error) {
	if p.TenantID == 0 {
		return nil, ErrInvalidTenantID
	}
	if !p.Kind.IsValid() {
		return nil, ErrInvalidKind
	}
	title := strings.TrimSpace(p.Title)
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateDescription(p.Description); err != nil {
		return nil, err
	}
	if p.StatusID == 0 {
		return nil, ErrInvalidStatus
	}
	priority := p.Priority
	if priority == "" {
		priority = vo.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, ErrInvalidPriority
	}
	if utf8.RuneCountInString(p.AssigneeName) > maxAssigneeNameLength {
		return nil, ErrAssigneeNameTooLong
	}

	details := p.Details
	if details == nil {
		details = map[string]any{}
	}

	now := biztime.NowUTC()
	return &Ticket{
		tenantID:      p.TenantID,
		kind:          p.Kind,
		title:         title,
		description:   p.Description,
		statusID:      p.StatusID,
		priority:      priority,
		assigneeID:    p.AssigneeID,
		assigneeName:  p.AssigneeName,
		location:      p.Location,
		scheduledAt:   utcPtr(p.ScheduledAt),
		performedAt:   utcPtr(p.PerformedAt),
		details:       details,
		createdByID:   p.CreatedByID,
		createdByName: p.CreatedByName,
		version:       1,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from persistence without validation.
func ReconstructTicket(
	id, tenantID uint,
	kind vo.Kind,
	protocol, title, description string,
	statusID uint,
	priority vo.Priority,
	assigneeID *uint,
	assigneeName string,
	location vo.Location,
	scheduledAt, performedAt, closedAt *time.Time,
	shareToken, chatToken string,
	details map[string]any,
	createdByID *uint,
	createdByName string,
	version int,
	createdAt, updatedAt time.Time,
) *Ticket {
	if details == nil {
		details = map[string]any{}
	}
	return &Ticket{
		id:            id,
		tenantID:      tenantID,
		kind:          kind,
		protocol:      protocol,
		title:         title,
		description:   description,
		statusID:      statusID,
		priority:      priority,
		assigneeID:    assigneeID,
		assigneeName:  assigneeName,
		location:      location,
		scheduledAt:   scheduledAt,
		performedAt:   performedAt,
		closedAt:      closedAt,
		shareToken:    shareToken,
		chatToken:     chatToken,
		details:       details,
		createdByID:   createdByID,
		createdByName: createdByName,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (t *Ticket) ID() uint                { return t.id }
func (t *Ticket) TenantID() uint          { return t.tenantID }
func (t *Ticket) Kind() vo.Kind           { return t.kind }
func (t *Ticket) Protocol() string        { return t.protocol }
func (t *Ticket) Title() string           { return t.title }
func (t *Ticket) Description() string     { return t.description }
func (t *Ticket) StatusID() uint          { return t.statusID }
func (t *Ticket) Priority() vo.Priority   { return t.priority }
func (t *Ticket) AssigneeID() *uint       { return t.assigneeID }
func (t *Ticket) AssigneeName() string    { return t.assigneeName }
func (t *Ticket) Location() vo.Location   { return t.location }
func (t *Ticket) ScheduledAt() *time.Time { return t.scheduledAt }
func (t *Ticket) PerformedAt() *time.Time { return t.performedAt }
func (t *Ticket) ClosedAt() *time.Time    { return t.closedAt }
func (t *Ticket) ShareToken() string      { return t.shareToken }
func (t *Ticket) ChatToken() string       { return t.chatToken }
func (t *Ticket) CreatedByID() *uint      { return t.createdByID }
func (t *Ticket) CreatedByName() string   { return t.createdByName }
func (t *Ticket) Version() int            { return t.version }
func (t *Ticket) CreatedAt() time.Time    { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time    { return t.updatedAt }
func (t *Ticket) Details() map[string]any { return maps.Clone(t.details) }

func (t *Ticket) SetID(id uint) {
	t.id = id
}

// AssignIdentifiers sets the protocol and access tokens. It may only run once.
func (t *Ticket) AssignIdentifiers(protocol, shareToken, chatToken string) error {
	if t.protocol != "" || t.shareToken != "" {
		return ErrIdentifiersAssigned
	}
	if protocol == "" || shareToken == "" || chatToken == "" {
		return ErrInvalidIdentifiers
	}
	t.protocol = protocol
	t.shareToken = shareToken
	t.chatToken = chatToken
	return nil
}

// RetryProtocol replaces the protocol after a uniqueness conflict on insert.
func (t *Ticket) RetryProtocol(protocol string) error {
	if t.id != 0 {
		return ErrIdentifiersAssigned
	}
	if protocol == "" {
		return ErrInvalidIdentifiers
	}
	t.protocol = protocol
	return nil
}

// MarkClosedIfTerminal records closedAt when a new ticket starts in a terminal status.
func (t *Ticket) MarkClosedIfTerminal(terminal bool) {
	if terminal && t.closedAt == nil {
		now := t.updatedAt
		t.closedAt = &now
	}
}

// Patch lists the fields to change. Nil pointers leave a field untouched.
// A zero AssigneeID clears the assignee and zero times clear the dates.
type Patch struct {
	Title          *string
	Description    *string
	StatusID       *uint
	StatusTerminal bool
	Priority       *vo.Priority
	AssigneeID     *uint
	AssigneeName   *string
	Location       *vo.Location
	ScheduledAt    *time.Time
	PerformedAt    *time.Time
	Details        map[string]any
}

// Changes is the result of ApplyPatch.
type Changes struct {
	Fields       []string
	PrevStatusID uint
}

func (c Changes) Empty() bool {
	return len(c.Fields) == 0
}

func (c Changes) StatusChanged() bool {
	for _, f := range c.Fields {
		if f == FieldStatus {
			return true
		}
	}
	return false
}

// ApplyPatch validates and applies p. Nothing is changed if validation fails.
// The version is bumped once when at least one field changed.
func (t *Ticket) ApplyPatch(p Patch) (Changes, error) {
	next := *t
	changes := Changes{PrevStatusID: t.statusID}

	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if err := validateTitle(title); err != nil {
			return Changes{}, err
		}
		if title != next.title {
			next.title = title
			changes.Fields = append(changes.Fields, FieldTitle)
		}
	}
	if p.Description != nil {
		if err := validateDescription(*p.Description); err != nil {
			return Changes{}, err
		}
		if *p.Description != next.description {
			next.description = *p.Description
			changes.Fields = append(changes.Fields, FieldDescription)
		}
	}
	if p.StatusID != nil {
		if *p.StatusID == 0 {
			return Changes{}, ErrInvalidStatus
		}
		if *p.StatusID != next.statusID {
			next.statusID = *p.StatusID
			changes.Fields = append(changes.Fields, FieldStatus)
		}
	}
	if p.Priority != nil {
		if !p.Priority.IsValid() {
			return Changes{}, ErrInvalidPriority
		}
		if *p.Priority != next.priority {
			next.priority = *p.Priority
			changes.Fields = append(changes.Fields, FieldPriority)
		}
	}
	if p.AssigneeID != nil || p.AssigneeName != nil {
		id, name := next.assigneeID, next.assigneeName
		if p.AssigneeID != nil {
			id = nil
			if *p.AssigneeID != 0 {
				v := *p.AssigneeID
				id = &v
			}
		}
		if p.AssigneeName != nil {
			if utf8.RuneCountInString(*p.AssigneeName) > maxAssigneeNameLength {
				return Changes{}, ErrAssigneeNameTooLong
			}
			name = *p.AssigneeName
		}
		if !uintPtrEqual(id, next.assigneeID) || name != next.assigneeName {
			next.assigneeID, next.assigneeName = id, name
			changes.Fields = append(changes.Fields, FieldAssignee)
		}
	}
	if p.Location != nil && !p.Location.Equal(next.location) {
		next.location = *p.Location
		changes.Fields = append(changes.Fields, FieldLocation)
	}
	if p.ScheduledAt != nil {
		v := clearableTime(*p.ScheduledAt)
		if !timePtrEqual(v, next.scheduledAt) {
			next.scheduledAt = v
			changes.Fields = append(changes.Fields, FieldScheduledAt)
		}
	}
	if p.PerformedAt != nil {
		v := clearableTime(*p.PerformedAt)
		if !timePtrEqual(v, next.performedAt) {
			next.performedAt = v
			changes.Fields = append(changes.Fields, FieldPerformedAt)
		}
	}
	if p.Details != nil && !detailsEqual(p.Details, next.details) {
		next.details = maps.Clone(p.Details)
		changes.Fields = append(changes.Fields, FieldDetails)
	}

	if changes.Empty() {
		return changes, nil
	}

	next.version++
	next.updatedAt = biztime.NowUTC()
	if changes.StatusChanged() {
		if p.StatusTerminal {
			if next.closedAt == nil {
				closed := next.updatedAt
				next.closedAt = &closed
			}
		} else {
			next.closedAt = nil
		}
	}

	*t = next
	return changes, nil
}

func validateTitle(title string) error {
	if title == "" {
		return ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func validateDescription(desc string) error {
	if utf8.RuneCountInString(desc) > maxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	v := t.UTC()
	return &v
}

func clearableTime(t time.Time) *time.Time {
	return utcPtr(&t)
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

// detailsEqual compares by canonical JSON, which sorts map keys.
func detailsEqual(a, b map[string]any) bool {
	ja, errA := json.Marshal(a)
	jb, errB := json.Marshal(b)
	if errA != nil || errB != nil {
		return false
	}
	return bytes.Equal(ja, jb)
}

func uintPtrEqual(a, b *uint) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
