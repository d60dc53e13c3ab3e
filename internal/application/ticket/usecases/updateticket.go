package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/niggl1/appsindico/internal/application/ticket/dto"
	"github.com/niggl1/appsindico/internal/domain/statuscatalog"
	"github.com/niggl1/appsindico/internal/domain/ticket"
	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
	"github.com/niggl1/appsindico/internal/shared/db"
	apperrors "github.com/niggl1/appsindico/internal/shared/errors"
	"github.com/niggl1/appsindico/internal/shared/logger"
)

// UpdateTicketCommand carries a partial update. Nil fields are left untouched.
type UpdateTicketCommand struct {
	TenantID        uint
	Kind            string
	TicketID        uint
	ExpectedVersion *int
	Title           *string
	Description     *string
	StatusID        *uint
	Priority        *string
	AssigneeID      *uint
	AssigneeName    *string
	Location        *LocationInput
	ScheduledAt     *time.Time
	PerformedAt     *time.Time
	Details         map[string]any
	Actor           Actor
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	catalog    CatalogLoader
	details    ticket.DetailsValidator
	timeline   *TimelineWriter
	presenter  *Presenter
	txMgr      db.Transactor
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	catalog CatalogLoader,
	details ticket.DetailsValidator,
	timeline *TimelineWriter,
	presenter *Presenter,
	txMgr db.Transactor,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		catalog:    catalog,
		details:    details,
		timeline:   timeline,
		presenter:  presenter,
		txMgr:      txMgr,
		logger:     logger,
	}
}

// Execute writes the ticket and exactly one timeline event in one transaction.
// An update that changes nothing writes nothing.
func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket use case", "tenant_id", cmd.TenantID, "kind", cmd.Kind, "ticket_id", cmd.TicketID)

	kind, err := parseKind(cmd.Kind)
	if err != nil {
		return nil, err
	}

	patch := ticket.Patch{
		Title:        cmd.Title,
		Description:  cmd.Description,
		StatusID:     cmd.StatusID,
		AssigneeID:   cmd.AssigneeID,
		AssigneeName: cmd.AssigneeName,
		ScheduledAt:  cmd.ScheduledAt,
		PerformedAt:  cmd.PerformedAt,
		Details:      cmd.Details,
	}
	if cmd.Priority != nil {
		p, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return nil, apperrors.NewValidationError(err.Error())
		}
		patch.Priority = &p
	}
	if cmd.Location != nil {
		loc, err := vo.NewLocation(cmd.Location.Latitude, cmd.Location.Longitude, cmd.Location.Address)
		if err != nil {
			return nil, toAppError(err)
		}
		patch.Location = &loc
	}
	if cmd.Details != nil {
		if err := uc.details.Validate(kind, cmd.Details); err != nil {
			return nil, apperrors.NewValidationError("invalid details", err.Error())
		}
	}

	catalog, err := loadCatalog(ctx, uc.catalog, cmd.TenantID, uc.logger)
	if err != nil {
		return nil, err
	}

	var updated *ticket.Ticket
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TenantID, kind, cmd.TicketID)
		if err != nil {
			return fmt.Errorf("failed to get ticket: %w", err)
		}
		if t == nil {
			return ticket.ErrTicketNotFound
		}
		if cmd.ExpectedVersion != nil && *cmd.ExpectedVersion != t.Version() {
			return ticket.ErrVersionConflict
		}

		var newStatus *statuscatalog.StatusDefinition
		if cmd.StatusID != nil && *cmd.StatusID != t.StatusID() {
			newStatus = catalog.Find(*cmd.StatusID)
			if newStatus == nil {
				return statuscatalog.ErrStatusNotFound
			}
			if !newStatus.IsActive() {
				return statuscatalog.ErrStatusInactive
			}
			patch.StatusTerminal = newStatus.IsTerminal()
		}

		changes, err := t.ApplyPatch(patch)
		if err != nil {
			return err
		}
		updated = t
		if changes.Empty() {
			uc.logger.Debugw("ticket update is a no-op", "ticket_id", t.ID())
			return nil
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		_, err = uc.timeline.Append(txCtx, t, cmd.Actor, uc.eventFor(catalog, t, changes, newStatus))
		return err
	})
	if err != nil {
		mapped := toAppError(err)
		if apperrors.IsAppError(mapped) {
			if errors.Is(err, ticket.ErrVersionConflict) {
				uc.logger.Warnw("ticket version conflict", "ticket_id", cmd.TicketID, "expected_version", cmd.ExpectedVersion)
			}
			return nil, mapped
		}
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, fmt.Errorf("failed to update ticket: %w", err)
	}

	uc.logger.Infow("ticket updated successfully", "ticket_id", updated.ID(), "version", updated.Version())
	return uc.presenter.Ticket(updated, catalog), nil
}

// eventFor classifies the single event recorded for a non-empty change set.
func (uc *UpdateTicketUseCase) eventFor(
	catalog statuscatalog.Catalog,
	t *ticket.Ticket,
	changes ticket.Changes,
	newStatus *statuscatalog.StatusDefinition,
) EventInput {
	in := EventInput{
		Kind:         vo.EventUpdated,
		DescribeArgs: []any{strings.Join(changes.Fields, ", ")},
		Metadata:     map[string]any{"fields": changes.Fields},
	}
	if !changes.StatusChanged() || newStatus == nil {
		return in
	}

	prevTerminal := false
	if prev := catalog.Find(changes.PrevStatusID); prev != nil {
		prevTerminal = prev.IsTerminal()
	}
	prevID, newID := changes.PrevStatusID, t.StatusID()

	in.Kind = vo.ClassifyStatusChange(prevTerminal, newStatus.IsTerminal())
	in.PrevStatusID = &prevID
	in.NewStatusID = &newID
	switch in.Kind {
	case vo.EventStatusChanged:
		in.DescribeArgs = []any{statusName(catalog, prevID), newStatus.Name()}
	default:
		in.DescribeArgs = []any{newStatus.Name()}
	}
	return in
}
