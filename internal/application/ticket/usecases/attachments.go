package usecases

import (
	"context"
	"fmt"

	"github.com/niggl1/appsindico/internal/application/ticket/dto"
	"github.com/niggl1/appsindico/internal/domain/ticket"
	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
	"github.com/niggl1/appsindico/internal/shared/db"
	apperrors "github.com/niggl1/appsindico/internal/shared/errors"
	"github.com/niggl1/appsindico/internal/shared/logger"
	"github.com/niggl1/appsindico/internal/shared/utils"
)

type AddAttachmentCommand struct {
	TenantID uint
	Kind     string
	TicketID uint
	URL      string
	Caption  string
	Actor    Actor
}

type AddAttachmentUseCase struct {
	ticketRepo     ticket.Repository
	attachmentRepo ticket.AttachmentRepository
	timeline       *TimelineWriter
	txMgr          db.Transactor
	logger         logger.Interface
}

func NewAddAttachmentUseCase(
	ticketRepo ticket.Repository,
	attachmentRepo ticket.AttachmentRepository,
	timeline *TimelineWriter,
	txMgr db.Transactor,
	logger logger.Interface,
) *AddAttachmentUseCase {
	return &AddAttachmentUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		timeline:       timeline,
		txMgr:          txMgr,
		logger:         logger,
	}
}

// Execute appends the attachment after the current highest position.
func (uc *AddAttachmentUseCase) Execute(ctx context.Context, cmd AddAttachmentCommand) (*dto.AttachmentDTO, error) {
	uc.logger.Infow("executing add attachment use case", "tenant_id", cmd.TenantID, "ticket_id", cmd.TicketID)

	kind, err := parseKind(cmd.Kind)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateHTTPURL("url", cmd.URL); err != nil {
		return nil, err
	}

	var attachment *ticket.Attachment
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByID(txCtx, cmd.TenantID, kind, cmd.TicketID)
		if err != nil {
			return fmt.Errorf("failed to get ticket: %w", err)
		}
		if t == nil {
			return ticket.ErrTicketNotFound
		}

		highest, err := uc.attachmentRepo.MaxPosition(txCtx, cmd.TenantID, t.ID())
		if err != nil {
			return fmt.Errorf("failed to read attachment positions: %w", err)
		}
		attachment, err = ticket.NewAttachment(cmd.TenantID, t.ID(), cmd.URL, cmd.Caption, highest+1)
		if err != nil {
			return err
		}
		if err := uc.attachmentRepo.Create(txCtx, attachment); err != nil {
			return fmt.Errorf("failed to save attachment: %w", err)
		}

		_, err = uc.timeline.Append(txCtx, t, cmd.Actor, EventInput{
			Kind:         vo.EventAttachmentAdded,
			DescribeArgs: []any{attachmentLabel(attachment)},
			Metadata: map[string]any{
				"attachment_id": attachment.ID(),
				"url":           attachment.URL(),
				"position":      attachment.Position(),
			},
		})
		return err
	})
	if err != nil {
		mapped := toAppError(err)
		if apperrors.IsAppError(mapped) {
			return nil, mapped
		}
		uc.logger.Errorw("failed to add attachment", "ticket_id", cmd.TicketID, "error", err)
		return nil, fmt.Errorf("failed to add attachment: %w", err)
	}

	uc.logger.Infow("attachment added successfully", "ticket_id", cmd.TicketID, "attachment_id", attachment.ID(), "position", attachment.Position())
	return dto.ToAttachmentDTO(attachment), nil
}

type RemoveAttachmentCommand struct {
	TenantID     uint
	Kind         string
	TicketID     uint
	AttachmentID uint
	Actor        Actor
}

type RemoveAttachmentUseCase struct {
	ticketRepo     ticket.Repository
	attachmentRepo ticket.AttachmentRepository
	timeline       *TimelineWriter
	txMgr          db.Transactor
	logger         logger.Interface
}

func NewRemoveAttachmentUseCase(
	ticketRepo ticket.Repository,
	attachmentRepo ticket.AttachmentRepository,
	timeline *TimelineWriter,
	txMgr db.Transactor,
	logger logger.Interface,
) *RemoveAttachmentUseCase {
	return &RemoveAttachmentUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		timeline:       timeline,
		txMgr:          txMgr,
		logger:         logger,
	}
}

// Execute deletes the attachment. Remaining positions are not compacted.
func (uc *RemoveAttachmentUseCase) Execute(ctx context.Context, cmd RemoveAttachmentCommand) error {
	uc.logger.Infow("executing remove attachment use case", "tenant_id", cmd.TenantID, "ticket_id", cmd.TicketID, "attachment_id", cmd.AttachmentID)

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

		attachment, err := uc.attachmentRepo.GetByID(txCtx, cmd.TenantID, t.ID(), cmd.AttachmentID)
		if err != nil {
			return fmt.Errorf("failed to get attachment: %w", err)
		}
		if attachment == nil {
			return ticket.ErrAttachmentNotFound
		}
		if err := uc.attachmentRepo.Delete(txCtx, cmd.TenantID, attachment.ID()); err != nil {
			return err
		}

		_, err = uc.timeline.Append(txCtx, t, cmd.Actor, EventInput{
			Kind:         vo.EventAttachmentRemoved,
			DescribeArgs: []any{attachmentLabel(attachment)},
			Metadata: map[string]any{
				"attachment_id": attachment.ID(),
				"url":           attachment.URL(),
			},
		})
		return err
	})
	if err != nil {
		mapped := toAppError(err)
		if apperrors.IsAppError(mapped) {
			return mapped
		}
		uc.logger.Errorw("failed to remove attachment", "attachment_id", cmd.AttachmentID, "error", err)
		return fmt.Errorf("failed to remove attachment: %w", err)
	}

	uc.logger.Infow("attachment removed successfully", "ticket_id", cmd.TicketID, "attachment_id", cmd.AttachmentID)
	return nil
}

type ListAttachmentsQuery struct {
	TenantID uint
	Kind     string
	TicketID uint
}

type ListAttachmentsUseCase struct {
	ticketRepo     ticket.Repository
	attachmentRepo ticket.AttachmentRepository
	logger         logger.Interface
}

func NewListAttachmentsUseCase(
	ticketRepo ticket.Repository,
	attachmentRepo ticket.AttachmentRepository,
	logger logger.Interface,
) *ListAttachmentsUseCase {
	return &ListAttachmentsUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		logger:         logger,
	}
}

// Execute returns attachments by position, or an empty list if they cannot be read.
func (uc *ListAttachmentsUseCase) Execute(ctx context.Context, query ListAttachmentsQuery) ([]*dto.AttachmentDTO, error) {
	uc.logger.Infow("executing list attachments use case", "tenant_id", query.TenantID, "ticket_id", query.TicketID)

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

	list, err := uc.attachmentRepo.ListByTicket(ctx, query.TenantID, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to list attachments, returning empty list", "ticket_id", t.ID(), "error", err)
		return []*dto.AttachmentDTO{}, nil
	}
	return dto.ToAttachmentDTOs(list), nil
}

func attachmentLabel(a *ticket.Attachment) string {
	if a.Caption() != "" {
		return a.Caption()
	}
	return a.URL()
}
