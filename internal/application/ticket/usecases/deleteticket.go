package usecases

import (
	"context"
	"fmt"

	"github.com/niggl1/appsindico/internal/domain/comment"
	"github.com/niggl1/appsindico/internal/domain/sharelink"
	"github.com/niggl1/appsindico/internal/domain/ticket"
	"github.com/niggl1/appsindico/internal/shared/db"
	apperrors "github.com/niggl1/appsindico/internal/shared/errors"
	"github.com/niggl1/appsindico/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TenantID uint
	Kind     string
	TicketID uint
}

type DeleteTicketUseCase struct {
	ticketRepo     ticket.Repository
	timelineRepo   ticket.TimelineRepository
	attachmentRepo ticket.AttachmentRepository
	commentRepo    comment.Repository
	shareLinkRepo  sharelink.Repository
	txMgr          db.Transactor
	logger         logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	timelineRepo ticket.TimelineRepository,
	attachmentRepo ticket.AttachmentRepository,
	commentRepo comment.Repository,
	shareLinkRepo sharelink.Repository,
	txMgr db.Transactor,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo:     ticketRepo,
		timelineRepo:   timelineRepo,
		attachmentRepo: attachmentRepo,
		commentRepo:    commentRepo,
		shareLinkRepo:  shareLinkRepo,
		txMgr:          txMgr,
		logger:         logger,
	}
}

// Execute hard-deletes the ticket and everything hanging off it.
func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	uc.logger.Infow("executing delete ticket use case", "tenant_id", cmd.TenantID, "kind", cmd.Kind, "ticket_id", cmd.TicketID)

	kind, err := parseKind(cmd.Kind)
	if err != nil {
		return err
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TenantID, kind, cmd.TicketID)
		if err != nil {
			return fmt.Errorf("failed to get ticket: %w", err)
		}
		if t == nil {
			return ticket.ErrTicketNotFound
		}

		if err := uc.timelineRepo.DeleteByTicket(txCtx, cmd.TenantID, t.ID()); err != nil {
			return fmt.Errorf("failed to delete timeline: %w", err)
		}
		if err := uc.attachmentRepo.DeleteByTicket(txCtx, cmd.TenantID, t.ID()); err != nil {
			return fmt.Errorf("failed to delete attachments: %w", err)
		}
		if err := uc.commentRepo.DeleteByItem(txCtx, cmd.TenantID, kind, t.ID()); err != nil {
			return fmt.Errorf("failed to delete comments: %w", err)
		}
		if err := uc.shareLinkRepo.DeleteByItem(txCtx, cmd.TenantID, kind, t.ID()); err != nil {
			return fmt.Errorf("failed to delete share links: %w", err)
		}
		return uc.ticketRepo.Delete(txCtx, cmd.TenantID, kind, t.ID())
	})
	if err != nil {
		mapped := toAppError(err)
		if apperrors.IsAppError(mapped) {
			return mapped
		}
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return fmt.Errorf("failed to delete ticket: %w", err)
	}

	uc.logger.Infow("ticket deleted successfully", "ticket_id", cmd.TicketID, "kind", kind)
	return nil
}
