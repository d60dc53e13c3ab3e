package usecases

import (
	"context"
	"fmt"

	"github.com/niggl1/appsindico/internal/application/ticket/dto"
	"github.com/niggl1/appsindico/internal/domain/ticket"
	"github.com/niggl1/appsindico/internal/shared/logger"
)

type GetTimelineQuery struct {
	TenantID        uint
	Kind            string
	TicketID        uint
	IncludeInternal bool
}

type GetTimelineUseCase struct {
	ticketRepo   ticket.Repository
	timelineRepo ticket.TimelineRepository
	relative     RelativeTimeFormatter
	logger       logger.Interface
}

func NewGetTimelineUseCase(
	ticketRepo ticket.Repository,
	timelineRepo ticket.TimelineRepository,
	relative RelativeTimeFormatter,
	logger logger.Interface,
) *GetTimelineUseCase {
	return &GetTimelineUseCase{
		ticketRepo:   ticketRepo,
		timelineRepo: timelineRepo,
		relative:     relative,
		logger:       logger,
	}
}

// Execute returns events newest-first, or an empty list if they cannot be read.
func (uc *GetTimelineUseCase) Execute(ctx context.Context, query GetTimelineQuery) ([]*dto.TimelineEventDTO, error) {
	uc.logger.Infow("executing get timeline use case", "tenant_id", query.TenantID, "ticket_id", query.TicketID)

	kind, err := parseKind(query.Kind)
	if err != nil {
		return nil, err
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TenantID, kind, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", query.TicketID, "error", err)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if t == nil {
		return nil, toAppError(ticket.ErrTicketNotFound)
	}

	events, err := uc.timelineRepo.ListByTicket(ctx, query.TenantID, t.ID(), query.IncludeInternal)
	if err != nil {
		uc.logger.Errorw("failed to list timeline, returning empty list", "ticket_id", t.ID(), "error", err)
		return []*dto.TimelineEventDTO{}, nil
	}
	return Timeline(events, uc.relative), nil
}
