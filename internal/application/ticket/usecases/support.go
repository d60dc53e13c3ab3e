package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/niggl1/appsindico/internal/application/ticket/dto"
	"github.com/niggl1/appsindico/internal/domain/statuscatalog"
	"github.com/niggl1/appsindico/internal/domain/ticket"
	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
	"github.com/niggl1/appsindico/internal/shared/constants"
	apperrors "github.com/niggl1/appsindico/internal/shared/errors"
	"github.com/niggl1/appsindico/internal/shared/logger"
	"github.com/niggl1/appsindico/internal/shared/services/markdown"
)

// Actor identifies who performed a change. Staff actors carry an id;
// share-link visitors only a name.
type Actor struct {
	ID   *uint
	Name string
}

// StaffActor builds the actor for an authenticated staff member.
func StaffActor(userID uint, name string) Actor {
	return Actor{ID: &userID, Name: name}
}

// ExternalActor builds the actor for a visitor that came through a share link.
func ExternalActor(name string) Actor {
	return Actor{Name: constants.ExternalActorPrefix + strings.TrimSpace(name)}
}

// TimelineWriter appends audit events. Callers pass the transactional ctx so
// the event commits or rolls back together with the mutation it records.
type TimelineWriter struct {
	repo      ticket.TimelineRepository
	describer ticket.EventDescriber
	metrics   Metrics
}

func NewTimelineWriter(repo ticket.TimelineRepository, describer ticket.EventDescriber, metrics Metrics) *TimelineWriter {
	return &TimelineWriter{
		repo:      repo,
		describer: describer,
		metrics:   metrics,
	}
}

// EventInput is what a use case knows about the event it records.
type EventInput struct {
	Kind         vo.EventKind
	DescribeArgs []any
	PrevStatusID *uint
	NewStatusID  *uint
	Metadata     map[string]any
	Internal     bool
}

func (w *TimelineWriter) Append(ctx context.Context, t *ticket.Ticket, actor Actor, in EventInput) (*ticket.TimelineEvent, error) {
	event, err := ticket.NewTimelineEvent(ticket.EventParams{
		TenantID:     t.TenantID(),
		TicketID:     t.ID(),
		Kind:         in.Kind,
		Description:  w.describer.Describe(in.Kind, in.DescribeArgs...),
		ActorID:      actor.ID,
		ActorName:    actor.Name,
		PrevStatusID: in.PrevStatusID,
		NewStatusID:  in.NewStatusID,
		Metadata:     in.Metadata,
		Internal:     in.Internal,
	})
	if err != nil {
		return nil, err
	}
	if err := w.repo.Append(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to append %s event: %w", in.Kind, err)
	}
	w.metrics.TimelineEventAppended(t.Kind(), in.Kind)
	return event, nil
}

// loadCatalog turns catalog failures on write paths into 503s.
func loadCatalog(ctx context.Context, loader CatalogLoader, tenantID uint, log logger.Interface) (statuscatalog.Catalog, error) {
	catalog, err := loader.Load(ctx, tenantID)
	if err == nil {
		return catalog, nil
	}
	if errors.Is(err, statuscatalog.ErrInvalidTenantID) {
		return nil, toAppError(err)
	}
	log.Errorw("failed to load status catalog", "tenant_id", tenantID, "error", err)
	return nil, apperrors.NewUnavailableError(constants.ErrMsgDatabaseUnavailable)
}

func parseKind(kind string) (vo.Kind, error) {
	k, err := vo.NewKind(kind)
	if err != nil {
		return "", apperrors.NewValidationError(err.Error())
	}
	return k, nil
}

func statusName(catalog statuscatalog.Catalog, id uint) string {
	if s := catalog.Find(id); s != nil {
		return s.Name()
	}
	return fmt.Sprintf("#%d", id)
}

// Presenter renders tickets for responses.
type Presenter struct {
	markdown markdown.MarkdownService
	logger   logger.Interface
}

func NewPresenter(md markdown.MarkdownService, logger logger.Interface) *Presenter {
	return &Presenter{markdown: md, logger: logger}
}

func (p *Presenter) descriptionHTML(t *ticket.Ticket) string {
	if t.Description() == "" {
		return ""
	}
	html, err := p.markdown.ToHTMLSanitized(t.Description())
	if err != nil {
		p.logger.Warnw("failed to render ticket description", "ticket_id", t.ID(), "error", err)
		return ""
	}
	return html
}

// Ticket maps t for staff. catalog may be nil.
func (p *Presenter) Ticket(t *ticket.Ticket, catalog statuscatalog.Catalog) *dto.TicketDTO {
	return dto.ToTicketDTO(t, catalog.Find(t.StatusID()), p.descriptionHTML(t))
}

// PublicTicket maps t for share-link visitors.
func (p *Presenter) PublicTicket(t *ticket.Ticket, catalog statuscatalog.Catalog) *dto.TicketDTO {
	return dto.ToPublicTicketDTO(t, catalog.Find(t.StatusID()), p.descriptionHTML(t))
}

// Timeline maps events, adding relative times.
func Timeline(events []*ticket.TimelineEvent, relative RelativeTimeFormatter) []*dto.TimelineEventDTO {
	out := make([]*dto.TimelineEventDTO, 0, len(events))
	for _, e := range events {
		out = append(out, dto.ToTimelineEventDTO(e, relative.Format(e.CreatedAt())))
	}
	return out
}
