package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/niggl1/appsindico/internal/domain/statuscatalog"
	"github.com/niggl1/appsindico/internal/domain/ticket"
	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
	"github.com/niggl1/appsindico/internal/shared/db"
	apperrors "github.com/niggl1/appsindico/internal/shared/errors"
	"github.com/niggl1/appsindico/internal/shared/logger"
)

// maxProtocolAttempts bounds the search for a free protocol. With 10^6
// candidates per tenant a collision streak this long means the space is
// nearly exhausted.
const maxProtocolAttempts = 5

type LocationInput struct {
	Latitude  *float64
	Longitude *float64
	Address   string
}

type CreateTicketCommand struct {
	TenantID     uint
	Kind         string
	Title        string
	Description  string
	StatusID     *uint
	Priority     string
	AssigneeID   *uint
	AssigneeName string
	Location     LocationInput
	ScheduledAt  *time.Time
	PerformedAt  *time.Time
	Details      map[string]any
	Actor        Actor
}

type CreateTicketResult struct {
	TicketID   uint      `json:"id"`
	Protocol   string    `json:"protocol"`
	StatusID   uint      `json:"status_id"`
	ShareToken string    `json:"share_token"`
	ChatToken  string    `json:"chat_token"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	catalog    CatalogLoader
	details    ticket.DetailsValidator
	protocols  ticket.ProtocolGenerator
	tokens     ticket.TokenGenerator
	timeline   *TimelineWriter
	txMgr      db.Transactor
	metrics    Metrics
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	catalog CatalogLoader,
	details ticket.DetailsValidator,
	protocols ticket.ProtocolGenerator,
	tokens ticket.TokenGenerator,
	timeline *TimelineWriter,
	txMgr db.Transactor,
	metrics Metrics,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		catalog:    catalog,
		details:    details,
		protocols:  protocols,
		tokens:     tokens,
		timeline:   timeline,
		txMgr:      txMgr,
		metrics:    metrics,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "tenant_id", cmd.TenantID, "kind", cmd.Kind, "title", cmd.Title)

	kind, err := parseKind(cmd.Kind)
	if err != nil {
		return nil, err
	}

	priority := vo.PriorityMedium
	if cmd.Priority != "" {
		if priority, err = vo.NewPriority(cmd.Priority); err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
	}

	location, err := vo.NewLocation(cmd.Location.Latitude, cmd.Location.Longitude, cmd.Location.Address)
	if err != nil {
		return nil, toAppError(err)
	}

	if err := uc.details.Validate(kind, cmd.Details); err != nil {
		return nil, apperrors.NewValidationError("invalid details", err.Error())
	}

	catalog, err := loadCatalog(ctx, uc.catalog, cmd.TenantID, uc.logger)
	if err != nil {
		return nil, err
	}
	status, err := resolveInitialStatus(catalog, cmd.StatusID)
	if err != nil {
		return nil, toAppError(err)
	}

	newTicket, err := ticket.NewTicket(ticket.NewTicketParams{
		TenantID:      cmd.TenantID,
		Kind:          kind,
		Title:         cmd.Title,
		Description:   cmd.Description,
		StatusID:      status.ID(),
		Priority:      priority,
		AssigneeID:    cmd.AssigneeID,
		AssigneeName:  cmd.AssigneeName,
		Location:      location,
		ScheduledAt:   cmd.ScheduledAt,
		PerformedAt:   cmd.PerformedAt,
		Details:       cmd.Details,
		CreatedByID:   cmd.Actor.ID,
		CreatedByName: cmd.Actor.Name,
	})
	if err != nil {
		uc.logger.Warnw("invalid ticket", "error", err)
		return nil, toAppError(err)
	}
	newTicket.MarkClosedIfTerminal(status.IsTerminal())

	if err := uc.assignIdentifiers(ctx, newTicket); err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
			if err := uc.ticketRepo.Create(txCtx, newTicket); err != nil {
				return err
			}
			newStatusID := status.ID()
			_, err := uc.timeline.Append(txCtx, newTicket, cmd.Actor, EventInput{
				Kind:         vo.EventOpening,
				DescribeArgs: []any{newTicket.Protocol(), status.Name()},
				NewStatusID:  &newStatusID,
			})
			return err
		})
		if err == nil {
			break
		}
		// A concurrent insert took the protocol between the check and the write.
		if apperrors.IsDuplicateError(err) && attempt < maxProtocolAttempts {
			uc.logger.Warnw("protocol collision on insert, retrying", "protocol", newTicket.Protocol(), "attempt", attempt)
			newTicket.SetID(0)
			protocol, perr := uc.freeProtocol(ctx, cmd.TenantID)
			if perr != nil {
				return nil, perr
			}
			if perr := newTicket.RetryProtocol(protocol); perr != nil {
				return nil, toAppError(perr)
			}
			continue
		}
		uc.logger.Errorw("failed to save ticket", "tenant_id", cmd.TenantID, "error", err)
		return nil, fmt.Errorf("failed to save ticket: %w", err)
	}

	uc.metrics.TicketCreated(kind)
	uc.logger.Infow("ticket created successfully",
		"ticket_id", newTicket.ID(),
		"kind", kind,
		"protocol", newTicket.Protocol(),
		"status_id", newTicket.StatusID(),
	)

	return &CreateTicketResult{
		TicketID:   newTicket.ID(),
		Protocol:   newTicket.Protocol(),
		StatusID:   newTicket.StatusID(),
		ShareToken: newTicket.ShareToken(),
		ChatToken:  newTicket.ChatToken(),
		CreatedAt:  newTicket.CreatedAt(),
	}, nil
}

func (uc *CreateTicketUseCase) assignIdentifiers(ctx context.Context, t *ticket.Ticket) error {
	protocol, err := uc.freeProtocol(ctx, t.TenantID())
	if err != nil {
		return err
	}
	shareToken, err := uc.tokens.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate share token: %w", err)
	}
	chatToken, err := uc.tokens.Generate()
	if err != nil {
		return fmt.Errorf("failed to generate chat token: %w", err)
	}
	if err := t.AssignIdentifiers(protocol, shareToken, chatToken); err != nil {
		return toAppError(err)
	}
	return nil
}

// freeProtocol draws candidates until one is unused by the tenant.
func (uc *CreateTicketUseCase) freeProtocol(ctx context.Context, tenantID uint) (string, error) {
	for attempt := 1; attempt <= maxProtocolAttempts; attempt++ {
		candidate, err := uc.protocols.Generate()
		if err != nil {
			return "", fmt.Errorf("failed to generate protocol: %w", err)
		}
		taken, err := uc.ticketRepo.ExistsByProtocol(ctx, tenantID, candidate)
		if err != nil {
			uc.logger.Errorw("failed to check protocol uniqueness", "tenant_id", tenantID, "error", err)
			return "", fmt.Errorf("failed to check protocol: %w", err)
		}
		if !taken {
			return candidate, nil
		}
		uc.logger.Debugw("protocol already taken", "tenant_id", tenantID, "attempt", attempt)
	}
	uc.logger.Errorw("protocol attempts exhausted", "tenant_id", tenantID, "attempts", maxProtocolAttempts)
	return "", toAppError(ticket.ErrProtocolExhausted)
}

// resolveInitialStatus picks the requested status or the first open one.
func resolveInitialStatus(catalog statuscatalog.Catalog, requested *uint) (*statuscatalog.StatusDefinition, error) {
	if requested == nil {
		return catalog.FirstOpen()
	}
	status := catalog.Find(*requested)
	if status == nil {
		return nil, statuscatalog.ErrStatusNotFound
	}
	if !status.IsActive() {
		return nil, statuscatalog.ErrStatusInactive
	}
	return status, nil
}
