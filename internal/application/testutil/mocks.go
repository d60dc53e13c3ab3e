// Package testutil provides in-memory implementations of the domain
// repositories for testing the application layer.
package testutil

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/niggl1/appsindico/internal/domain/comment"
	"github.com/niggl1/appsindico/internal/domain/sharelink"
	"github.com/niggl1/appsindico/internal/domain/statuscatalog"
	"github.com/niggl1/appsindico/internal/domain/ticket"
	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
	"github.com/niggl1/appsindico/internal/shared/logger"
)

// ErrUnavailable simulates a database outage.
var ErrUnavailable = fmt.Errorf("database unavailable")

// Transactor runs fn directly. Failures inside fn are not rolled back, so
// tests that need rollback assert on the returned error only.
type Transactor struct {
	Calls int
}

func (t *Transactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.Calls++
	return fn(ctx)
}

// NewMockLogger returns a no-op logger.Interface.
func NewMockLogger() logger.Interface {
	return &mockLogger{}
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)             {}
func (m *mockLogger) Info(msg string, args ...any)              {}
func (m *mockLogger) Warn(msg string, args ...any)              {}
func (m *mockLogger) Error(msg string, args ...any)             {}
func (m *mockLogger) Fatal(msg string, args ...any)             {}
func (m *mockLogger) With(args ...any) logger.Interface         { return m }
func (m *mockLogger) Named(name string) logger.Interface        { return m }
func (m *mockLogger) WithTenant(tenantID uint) logger.Interface { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...any)   {}
func (m *mockLogger) Infow(msg string, keysAndValues ...any)    {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...any)    {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...any)   {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...any)   {}

// Describer renders "<kind> arg1 arg2".
type Describer struct{}

func (Describer) Describe(kind vo.EventKind, args ...any) string {
	parts := []string{string(kind)}
	for _, a := range args {
		parts = append(parts, fmt.Sprint(a))
	}
	return strings.Join(parts, " ")
}

// DetailsValidator accepts everything unless Err is set.
type DetailsValidator struct {
	Err error
}

func (v DetailsValidator) Validate(kind vo.Kind, details map[string]any) error {
	return v.Err
}

// DefaultsProvider serves a fixed template list.
type DefaultsProvider struct {
	Templates []statuscatalog.Template
	Err       error
}

// StandardDefaults mirrors the catalog shipped with the application.
func StandardDefaults() DefaultsProvider {
	return DefaultsProvider{Templates: []statuscatalog.Template{
		{Name: "Open", Order: 1, Color: "#1E88E5"},
		{Name: "Under Review", Order: 2, Color: "#8E24AA"},
		{Name: "Approved", Order: 3, Color: "#3949AB"},
		{Name: "In Progress", Order: 4, Color: "#FB8C00"},
		{Name: "Awaiting Parts", Order: 5, Color: "#6D4C41"},
		{Name: "Completed", Order: 6, Color: "#43A047", IsTerminal: true},
		{Name: "Cancelled", Order: 7, Color: "#E53935", IsTerminal: true},
	}}
}

func (p DefaultsProvider) Defaults() ([]statuscatalog.Template, error) {
	return p.Templates, p.Err
}

// ---------------------------------------------------------------------------
// Status catalog
// ---------------------------------------------------------------------------

type StatusRepository struct {
	mu       sync.Mutex
	statuses map[uint]statuscatalog.StatusDefinition
	nextID   uint

	ListErr   error
	CreateErr error
	UpdateErr error
}

func NewStatusRepository() *StatusRepository {
	return &StatusRepository{statuses: make(map[uint]statuscatalog.StatusDefinition)}
}

func (r *StatusRepository) ListByTenant(ctx context.Context, tenantID uint, includeInactive bool) ([]*statuscatalog.StatusDefinition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	out := make([]*statuscatalog.StatusDefinition, 0)
	for _, s := range r.statuses {
		if s.TenantID() != tenantID || (!includeInactive && !s.IsActive()) {
			continue
		}
		out = append(out, reloadStatus(s))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DisplayOrder() != out[j].DisplayOrder() {
			return out[i].DisplayOrder() < out[j].DisplayOrder()
		}
		return out[i].ID() < out[j].ID()
	})
	return out, nil
}

func (r *StatusRepository) CountByTenant(ctx context.Context, tenantID uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ListErr != nil {
		return 0, r.ListErr
	}
	var n int64
	for _, s := range r.statuses {
		if s.TenantID() == tenantID {
			n++
		}
	}
	return n, nil
}

func (r *StatusRepository) GetByID(ctx context.Context, tenantID, id uint) (*statuscatalog.StatusDefinition, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.statuses[id]
	if !ok || s.TenantID() != tenantID {
		return nil, nil
	}
	return reloadStatus(s), nil
}

// reloadStatus mimics a fresh read from the database.
func reloadStatus(s statuscatalog.StatusDefinition) *statuscatalog.StatusDefinition {
	return statuscatalog.ReconstructStatusDefinition(
		s.ID(), s.TenantID(), s.Name(), s.DisplayOrder(), s.Color(), s.Icon(),
		s.IsTerminal(), s.IsActive(), s.Version(), s.CreatedAt(), s.UpdatedAt(),
	)
}

func (r *StatusRepository) Create(ctx context.Context, status *statuscatalog.StatusDefinition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.CreateErr != nil {
		return r.CreateErr
	}
	r.nextID++
	status.SetID(r.nextID)
	r.statuses[status.ID()] = *status
	return nil
}

func (r *StatusRepository) CreateBatch(ctx context.Context, statuses []*statuscatalog.StatusDefinition) error {
	for _, s := range statuses {
		if err := r.Create(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func (r *StatusRepository) Update(ctx context.Context, status *statuscatalog.StatusDefinition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	stored, ok := r.statuses[status.ID()]
	if !ok {
		return statuscatalog.ErrStatusNotFound
	}
	if stored.Version() != status.Version()-1 {
		return statuscatalog.ErrVersionConflict
	}
	r.statuses[status.ID()] = *status
	return nil
}

func (r *StatusRepository) UpdateOrders(ctx context.Context, statuses []*statuscatalog.StatusDefinition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	for _, s := range statuses {
		r.statuses[s.ID()] = *s
	}
	return nil
}

// ---------------------------------------------------------------------------
// Tickets
// ---------------------------------------------------------------------------

type TicketRepository struct {
	mu      sync.Mutex
	tickets map[uint]ticket.Ticket
	nextID  uint

	// TakenProtocols makes ExistsByProtocol report true for these values.
	TakenProtocols map[string]bool

	CreateErr error
	UpdateErr error
	GetErr    error
	ListErr   error
	DeleteErr error
}

func NewTicketRepository() *TicketRepository {
	return &TicketRepository{
		tickets:        make(map[uint]ticket.Ticket),
		TakenProtocols: make(map[string]bool),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.CreateErr != nil {
		return r.CreateErr
	}
	for _, existing := range r.tickets {
		if existing.TenantID() == t.TenantID() && existing.Protocol() == t.Protocol() {
			return fmt.Errorf("UNIQUE constraint failed: tickets.tenant_id, tickets.protocol")
		}
	}
	r.nextID++
	t.SetID(r.nextID)
	r.tickets[t.ID()] = *t
	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.UpdateErr != nil {
		return r.UpdateErr
	}
	stored, ok := r.tickets[t.ID()]
	if !ok {
		return ticket.ErrTicketNotFound
	}
	if stored.Version() != t.Version()-1 {
		return ticket.ErrVersionConflict
	}
	r.tickets[t.ID()] = *t
	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, tenantID uint, kind vo.Kind, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.DeleteErr != nil {
		return r.DeleteErr
	}
	stored, ok := r.tickets[id]
	if !ok || stored.TenantID() != tenantID || stored.Kind() != kind {
		return ticket.ErrTicketNotFound
	}
	delete(r.tickets, id)
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, tenantID uint, kind vo.Kind, id uint) (*ticket.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	stored, ok := r.tickets[id]
	if !ok || stored.TenantID() != tenantID || stored.Kind() != kind {
		return nil, nil
	}
	return &stored, nil
}

func (r *TicketRepository) GetByShareToken(ctx context.Context, token string) (*ticket.Ticket, error) {
	return r.findByToken(func(t *ticket.Ticket) string { return t.ShareToken() }, token)
}

func (r *TicketRepository) GetByChatToken(ctx context.Context, token string) (*ticket.Ticket, error) {
	return r.findByToken(func(t *ticket.Ticket) string { return t.ChatToken() }, token)
}

func (r *TicketRepository) findByToken(field func(*ticket.Ticket) string, token string) (*ticket.Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	for _, t := range r.tickets {
		if field(&t) == token {
			cp := t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *TicketRepository) ExistsByProtocol(ctx context.Context, tenantID uint, protocol string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.TakenProtocols[protocol] {
		return true, nil
	}
	for _, t := range r.tickets {
		if t.TenantID() == tenantID && t.Protocol() == protocol {
			return true, nil
		}
	}
	return false, nil
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ListErr != nil {
		return nil, 0, r.ListErr
	}
	out := make([]*ticket.Ticket, 0)
	for _, t := range r.tickets {
		if t.TenantID() != filter.TenantID || t.Kind() != filter.Kind {
			continue
		}
		if filter.StatusID != nil && t.StatusID() != *filter.StatusID {
			continue
		}
		if filter.Priority != nil && t.Priority() != *filter.Priority {
			continue
		}
		if filter.Search != "" && !strings.Contains(strings.ToLower(t.Title()), strings.ToLower(filter.Search)) &&
			!strings.Contains(t.Protocol(), filter.Search) {
			continue
		}
		cp := t
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() > out[j].ID() })
	total := int64(len(out))

	if filter.PageSize > 0 {
		start := (filter.Page - 1) * filter.PageSize
		if start < 0 {
			start = 0
		}
		if start > len(out) {
			start = len(out)
		}
		end := start + filter.PageSize
		if end > len(out) {
			end = len(out)
		}
		out = out[start:end]
	}
	return out, total, nil
}

func (r *TicketRepository) CountByStatus(ctx context.Context, tenantID uint, kind vo.Kind) (map[uint]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	out := make(map[uint]int64)
	for _, t := range r.tickets {
		if t.TenantID() == tenantID && t.Kind() == kind {
			out[t.StatusID()]++
		}
	}
	return out, nil
}

func (r *TicketRepository) CountByPriority(ctx context.Context, tenantID uint, kind vo.Kind) (map[vo.Priority]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	out := make(map[vo.Priority]int64)
	for _, t := range r.tickets {
		if t.TenantID() == tenantID && t.Kind() == kind {
			out[t.Priority()]++
		}
	}
	return out, nil
}

// Count returns the number of stored tickets.
func (r *TicketRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tickets)
}

// ---------------------------------------------------------------------------
// Timeline
// ---------------------------------------------------------------------------

type TimelineRepository struct {
	mu     sync.Mutex
	events []*ticket.TimelineEvent
	nextID uint

	AppendErr error
	ListErr   error
}

func NewTimelineRepository() *TimelineRepository {
	return &TimelineRepository{}
}

func (r *TimelineRepository) Append(ctx context.Context, event *ticket.TimelineEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.AppendErr != nil {
		return r.AppendErr
	}
	r.nextID++
	event.SetID(r.nextID)
	r.events = append(r.events, event)
	return nil
}

func (r *TimelineRepository) ListByTicket(ctx context.Context, tenantID, ticketID uint, includeInternal bool) ([]*ticket.TimelineEvent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	out := make([]*ticket.TimelineEvent, 0)
	for i := len(r.events) - 1; i >= 0; i-- {
		e := r.events[i]
		if e.TenantID() != tenantID || e.TicketID() != ticketID {
			continue
		}
		if e.IsInternal() && !includeInternal {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *TimelineRepository) DeleteByTicket(ctx context.Context, tenantID, ticketID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.events[:0]
	for _, e := range r.events {
		if e.TenantID() == tenantID && e.TicketID() == ticketID {
			continue
		}
		kept = append(kept, e)
	}
	r.events = kept
	return nil
}

// Events returns every event for ticketID oldest-first.
func (r *TimelineRepository) Events(ticketID uint) []*ticket.TimelineEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*ticket.TimelineEvent, 0)
	for _, e := range r.events {
		if e.TicketID() == ticketID {
			out = append(out, e)
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Attachments
// ---------------------------------------------------------------------------

type AttachmentRepository struct {
	mu          sync.Mutex
	attachments map[uint]*ticket.Attachment
	nextID      uint

	ListErr error
}

func NewAttachmentRepository() *AttachmentRepository {
	return &AttachmentRepository{attachments: make(map[uint]*ticket.Attachment)}
}

func (r *AttachmentRepository) Create(ctx context.Context, a *ticket.Attachment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	a.SetID(r.nextID)
	r.attachments[a.ID()] = a
	return nil
}

func (r *AttachmentRepository) GetByID(ctx context.Context, tenantID, ticketID, id uint) (*ticket.Attachment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.attachments[id]
	if !ok || a.TenantID() != tenantID || a.TicketID() != ticketID {
		return nil, nil
	}
	return a, nil
}

func (r *AttachmentRepository) ListByTicket(ctx context.Context, tenantID, ticketID uint) ([]*ticket.Attachment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	out := make([]*ticket.Attachment, 0)
	for _, a := range r.attachments {
		if a.TenantID() == tenantID && a.TicketID() == ticketID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position() != out[j].Position() {
			return out[i].Position() < out[j].Position()
		}
		return out[i].ID() < out[j].ID()
	})
	return out, nil
}

func (r *AttachmentRepository) MaxPosition(ctx context.Context, tenantID, ticketID uint) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	highest := 0
	for _, a := range r.attachments {
		if a.TenantID() == tenantID && a.TicketID() == ticketID && a.Position() > highest {
			highest = a.Position()
		}
	}
	return highest, nil
}

func (r *AttachmentRepository) Delete(ctx context.Context, tenantID, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.attachments[id]
	if !ok || a.TenantID() != tenantID {
		return ticket.ErrAttachmentNotFound
	}
	delete(r.attachments, id)
	return nil
}

func (r *AttachmentRepository) DeleteByTicket(ctx context.Context, tenantID, ticketID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, a := range r.attachments {
		if a.TenantID() == tenantID && a.TicketID() == ticketID {
			delete(r.attachments, id)
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Share links
// ---------------------------------------------------------------------------

type ShareLinkRepository struct {
	mu     sync.Mutex
	links  map[uint]*sharelink.ShareLink
	nextID uint

	GetErr error
}

func NewShareLinkRepository() *ShareLinkRepository {
	return &ShareLinkRepository{links: make(map[uint]*sharelink.ShareLink)}
}

func (r *ShareLinkRepository) Create(ctx context.Context, link *sharelink.ShareLink) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	link.SetID(r.nextID)
	r.links[link.ID()] = link
	return nil
}

func (r *ShareLinkRepository) GetByID(ctx context.Context, tenantID, id uint) (*sharelink.ShareLink, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.links[id]
	if !ok || l.TenantID() != tenantID {
		return nil, nil
	}
	return l, nil
}

func (r *ShareLinkRepository) GetByToken(ctx context.Context, token string) (*sharelink.ShareLink, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	for _, l := range r.links {
		if l.Token() == token {
			return l, nil
		}
	}
	return nil, nil
}

// IncrementAccess bumps the stored counter. The caller mirrors it on its own copy.
func (r *ShareLinkRepository) IncrementAccess(ctx context.Context, id uint, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.links[id]
	if !ok || !l.IsActive() {
		return false, nil
	}
	r.links[id] = sharelink.ReconstructShareLink(
		l.ID(), l.TenantID(), l.ItemType(), l.ItemID(), l.Token(), l.Editable(), l.ExpiryHours(),
		l.AccessCount()+1, l.CreatedByID(), l.CreatedByName(), l.IsActive(), &at, l.CreatedAt(), at,
	)
	return true, nil
}

func (r *ShareLinkRepository) Deactivate(ctx context.Context, tenantID, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.links[id]
	if !ok || l.TenantID() != tenantID {
		return sharelink.ErrShareLinkNotFound
	}
	l.Deactivate()
	return nil
}

func (r *ShareLinkRepository) ListByItem(ctx context.Context, tenantID uint, itemType vo.Kind, itemID uint) ([]*sharelink.ShareLink, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*sharelink.ShareLink, 0)
	for _, l := range r.links {
		if l.TenantID() == tenantID && l.ItemType() == itemType && l.ItemID() == itemID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() > out[j].ID() })
	return out, nil
}

func (r *ShareLinkRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, l := range r.links {
		if at := l.ExpiresAt(); l.IsActive() && at != nil && !at.After(now) {
			l.Deactivate()
			n++
		}
	}
	return n, nil
}

func (r *ShareLinkRepository) DeleteByItem(ctx context.Context, tenantID uint, itemType vo.Kind, itemID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, l := range r.links {
		if l.TenantID() == tenantID && l.ItemType() == itemType && l.ItemID() == itemID {
			delete(r.links, id)
		}
	}
	return nil
}

// Put stores link as-is, keeping its id when set.
func (r *ShareLinkRepository) Put(link *sharelink.ShareLink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if link.ID() == 0 {
		r.nextID++
		link.SetID(r.nextID)
	}
	r.links[link.ID()] = link
}

// Stored returns the current stored state of a link.
func (r *ShareLinkRepository) Stored(id uint) *sharelink.ShareLink {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.links[id]
}

// ---------------------------------------------------------------------------
// Comments
// ---------------------------------------------------------------------------

type CommentRepository struct {
	mu         sync.Mutex
	comments   map[uint]*comment.Comment
	responses  map[uint][]*comment.Response
	nextID     uint
	nextRespID uint

	ListErr error
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{
		comments:  make(map[uint]*comment.Comment),
		responses: make(map[uint][]*comment.Response),
	}
}

func (r *CommentRepository) Create(ctx context.Context, c *comment.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	c.SetID(r.nextID)
	r.comments[c.ID()] = c
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, tenantID, id uint) (*comment.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[id]
	if !ok || c.TenantID() != tenantID {
		return nil, nil
	}
	return r.withResponses(c), nil
}

func (r *CommentRepository) ListByItem(ctx context.Context, tenantID uint, itemType vo.Kind, itemID uint, includeInternal bool) ([]*comment.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	out := make([]*comment.Comment, 0)
	for _, c := range r.comments {
		if c.TenantID() != tenantID || c.ItemType() != itemType || c.ItemID() != itemID {
			continue
		}
		if c.IsInternal() && !includeInternal {
			continue
		}
		out = append(out, r.withResponses(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() > out[j].ID() })
	return out, nil
}

func (r *CommentRepository) MarkRead(ctx context.Context, c *comment.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.comments[c.ID()]; !ok {
		return comment.ErrCommentNotFound
	}
	r.comments[c.ID()] = c
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, tenantID, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.comments[id]
	if !ok || c.TenantID() != tenantID {
		return comment.ErrCommentNotFound
	}
	delete(r.comments, id)
	delete(r.responses, id)
	return nil
}

func (r *CommentRepository) DeleteByItem(ctx context.Context, tenantID uint, itemType vo.Kind, itemID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, c := range r.comments {
		if c.TenantID() == tenantID && c.ItemType() == itemType && c.ItemID() == itemID {
			delete(r.comments, id)
			delete(r.responses, id)
		}
	}
	return nil
}

func (r *CommentRepository) CreateResponse(ctx context.Context, resp *comment.Response) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.comments[resp.CommentID()]; !ok {
		return comment.ErrCommentNotFound
	}
	r.nextRespID++
	resp.SetID(r.nextRespID)
	r.responses[resp.CommentID()] = append(r.responses[resp.CommentID()], resp)
	return nil
}

// ResponseCount returns the number of stored responses across all comments.
func (r *CommentRepository) ResponseCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, rs := range r.responses {
		n += len(rs)
	}
	return n
}

func (r *CommentRepository) withResponses(c *comment.Comment) *comment.Comment {
	return comment.ReconstructComment(
		c.ID(), c.TenantID(), c.ItemType(), c.ItemID(), c.AuthorID(), c.AuthorName(), c.AuthorContact(),
		c.Text(), c.Attachments(), c.IsInternal(), c.IsRead(), c.ReadByID(), c.ReadAt(), c.CreatedAt(),
		append([]*comment.Response(nil), r.responses[c.ID()]...),
	)
}
