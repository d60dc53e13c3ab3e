package usecases

import (
	"context"
	"fmt"

	"github.com/niggl1/appsindico/internal/application/ticket/dto"
	"github.com/niggl1/appsindico/internal/domain/ticket"
	"github.com/niggl1/appsindico/internal/shared/logger"
)

type GetTicketQuery struct {
	TenantID uint
	Kind     string
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	catalog    CatalogLoader
	presenter  *Presenter
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	catalog CatalogLoader,
	presenter *Presenter,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		catalog:    catalog,
		presenter:  presenter,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing get ticket use case", "tenant_id", query.TenantID, "kind", query.Kind, "ticket_id", query.TicketID)

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

	// The status summary is optional decoration; the ticket is still served.
	catalog, err := uc.catalog.Load(ctx, query.TenantID)
	if err != nil {
		uc.logger.Warnw("failed to load status catalog for ticket", "ticket_id", t.ID(), "error", err)
	}

	return uc.presenter.Ticket(t, catalog), nil
}
