package usecases

import (
	"context"
	"time"

	"github.com/niggl1/appsindico/internal/application/sharelink/dto"
	ticketdto "github.com/niggl1/appsindico/internal/application/ticket/dto"
	ticketusecases "github.com/niggl1/appsindico/internal/application/ticket/usecases"
	"github.com/niggl1/appsindico/internal/domain/sharelink"
	"github.com/niggl1/appsindico/internal/domain/ticket"
	"github.com/niggl1/appsindico/internal/shared/biztime"
	"github.com/niggl1/appsindico/internal/shared/logger"
)

type ResolveShareLinkQuery struct {
	Token string
}

type ResolveShareLinkUseCase struct {
	linkRepo       sharelink.Repository
	ticketRepo     ticket.Repository
	attachmentRepo ticket.AttachmentRepository
	timelineRepo   ticket.TimelineRepository
	catalog        ticketusecases.CatalogLoader
	presenter      *ticketusecases.Presenter
	relative       ticketusecases.RelativeTimeFormatter
	metrics        Metrics
	now            Clock
	logger         logger.Interface
}

func NewResolveShareLinkUseCase(
	linkRepo sharelink.Repository,
	ticketRepo ticket.Repository,
	attachmentRepo ticket.AttachmentRepository,
	timelineRepo ticket.TimelineRepository,
	catalog ticketusecases.CatalogLoader,
	presenter *ticketusecases.Presenter,
	relative ticketusecases.RelativeTimeFormatter,
	metrics Metrics,
	logger logger.Interface,
) *ResolveShareLinkUseCase {
	return &ResolveShareLinkUseCase{
		linkRepo:       linkRepo,
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		timelineRepo:   timelineRepo,
		catalog:        catalog,
		presenter:      presenter,
		relative:       relative,
		metrics:        metrics,
		now:            biztime.NowUTC,
		logger:         logger,
	}
}

// WithClock replaces the time source.
func (uc *ResolveShareLinkUseCase) WithClock(now Clock) *ResolveShareLinkUseCase {
	uc.now = now
	return uc
}

// Execute returns the public snapshot behind token, or nil when the link does
// not resolve for any reason. It never fails towards the caller.
func (uc *ResolveShareLinkUseCase) Execute(ctx context.Context, query ResolveShareLinkQuery) *dto.SnapshotDTO {
	uc.logger.Infow("executing resolve share link use case")

	snapshot, result := uc.resolve(ctx, query.Token)
	uc.metrics.ShareLinkResolved(result)
	return snapshot
}

func (uc *ResolveShareLinkUseCase) resolve(ctx context.Context, token string) (*dto.SnapshotDTO, string) {
	if len(token) < sharelink.MinTokenLength {
		return nil, ResolveMiss
	}

	link, err := uc.linkRepo.GetByToken(ctx, token)
	if err != nil {
		uc.logger.Errorw("failed to look up share link", "error", err)
		return nil, ResolveError
	}
	if link == nil {
		return uc.resolveTicketToken(ctx, token)
	}
	if !link.IsActive() {
		return nil, ResolveInactive
	}
	now := uc.now()
	if link.IsExpired(now) {
		return nil, ResolveExpired
	}

	target, err := uc.ticketRepo.GetByID(ctx, link.TenantID(), link.ItemType(), link.ItemID())
	if err != nil {
		uc.logger.Errorw("failed to load share link target", "share_link_id", link.ID(), "error", err)
		return nil, ResolveError
	}
	if target == nil {
		uc.logger.Warnw("share link target no longer exists", "share_link_id", link.ID(), "item_id", link.ItemID())
		return nil, ResolveGone
	}

	counted, err := uc.linkRepo.IncrementAccess(ctx, link.ID(), now)
	if err != nil {
		uc.logger.Errorw("failed to record share link access", "share_link_id", link.ID(), "error", err)
		return nil, ResolveError
	}
	if !counted {
		// Deactivated between the lookup and the increment.
		return nil, ResolveInactive
	}
	link.RecordAccess(now)

	uc.logger.Infow("share link resolved", "share_link_id", link.ID(), "ticket_id", target.ID(), "access_count", link.AccessCount())
	return uc.snapshot(ctx, target, link.Editable(), link.ExpiresAt()), ResolveHit
}

// resolveTicketToken serves the ticket's own share token as a permanent
// read-only link. It has no link row, so no access is counted.
func (uc *ResolveShareLinkUseCase) resolveTicketToken(ctx context.Context, token string) (*dto.SnapshotDTO, string) {
	target, err := uc.ticketRepo.GetByShareToken(ctx, token)
	if err != nil {
		uc.logger.Errorw("failed to look up ticket share token", "error", err)
		return nil, ResolveError
	}
	if target == nil {
		return nil, ResolveMiss
	}

	uc.logger.Infow("ticket share token resolved", "ticket_id", target.ID())
	return uc.snapshot(ctx, target, false, nil), ResolveHit
}

func (uc *ResolveShareLinkUseCase) snapshot(ctx context.Context, target *ticket.Ticket, editable bool, expiresAt *time.Time) *dto.SnapshotDTO {
	catalog, err := uc.catalog.Load(ctx, target.TenantID())
	if err != nil {
		uc.logger.Warnw("failed to load status catalog for snapshot", "ticket_id", target.ID(), "error", err)
	}

	attachments := []*ticketdto.AttachmentDTO{}
	if list, err := uc.attachmentRepo.ListByTicket(ctx, target.TenantID(), target.ID()); err != nil {
		uc.logger.Warnw("failed to list attachments for snapshot", "ticket_id", target.ID(), "error", err)
	} else {
		attachments = ticketdto.ToAttachmentDTOs(list)
	}

	timeline := []*ticketdto.TimelineEventDTO{}
	if events, err := uc.timelineRepo.ListByTicket(ctx, target.TenantID(), target.ID(), false); err != nil {
		uc.logger.Warnw("failed to list timeline for snapshot", "ticket_id", target.ID(), "error", err)
	} else {
		timeline = ticketusecases.Timeline(events, uc.relative)
	}

	return &dto.SnapshotDTO{
		Ticket:      uc.presenter.PublicTicket(target, catalog),
		Attachments: attachments,
		Timeline:    timeline,
		Editable:    editable,
		ExpiresAt:   expiresAt,
	}
}
