package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	ticketdto "github.com/niggl1/appsindico/internal/application/ticket/dto"
	ticketusecases "github.com/niggl1/appsindico/internal/application/ticket/usecases"
	"github.com/niggl1/appsindico/internal/domain/sharelink"
	"github.com/niggl1/appsindico/internal/domain/ticket"
	"github.com/niggl1/appsindico/internal/shared/biztime"
	apperrors "github.com/niggl1/appsindico/internal/shared/errors"
	"github.com/niggl1/appsindico/internal/shared/logger"
)

// editableLink finds a link that currently resolves and allows edits.
// Lookups made here do not count as accesses. A ticket's own share token is
// always read-only.
type editableLink struct {
	repo    sharelink.Repository
	tickets ticket.Repository
	now     Clock
	logger  logger.Interface
}

func (e editableLink) find(ctx context.Context, token string) (*sharelink.ShareLink, error) {
	if len(token) < sharelink.MinTokenLength {
		return nil, toAppError(sharelink.ErrShareLinkNotFound)
	}
	link, err := e.repo.GetByToken(ctx, token)
	if err != nil {
		e.logger.Errorw("failed to look up share link", "error", err)
		return nil, fmt.Errorf("failed to look up share link: %w", err)
	}
	if link == nil {
		return nil, e.readOnlyOrMissing(ctx, token)
	}
	if !link.CanResolve(e.now()) {
		return nil, toAppError(sharelink.ErrShareLinkNotFound)
	}
	if !link.Editable() {
		return nil, toAppError(sharelink.ErrNotEditable)
	}
	return link, nil
}

func (e editableLink) readOnlyOrMissing(ctx context.Context, token string) error {
	t, err := e.tickets.GetByShareToken(ctx, token)
	if err != nil {
		e.logger.Errorw("failed to look up ticket share token", "error", err)
		return fmt.Errorf("failed to look up ticket share token: %w", err)
	}
	if t == nil {
		return toAppError(sharelink.ErrShareLinkNotFound)
	}
	return toAppError(sharelink.ErrNotEditable)
}

type PublicUpdateTicketCommand struct {
	Token       string
	AuthorName  string
	StatusID    *uint
	Description *string
	PerformedAt *time.Time
}

// PublicUpdateTicketUseCase lets an editable link change a subset of fields
// through the regular update path.
type PublicUpdateTicketUseCase struct {
	links  editableLink
	update ticketusecases.UpdateTicketExecutor
	logger logger.Interface
}

func NewPublicUpdateTicketUseCase(
	linkRepo sharelink.Repository,
	ticketRepo ticket.Repository,
	update ticketusecases.UpdateTicketExecutor,
	logger logger.Interface,
) *PublicUpdateTicketUseCase {
	return &PublicUpdateTicketUseCase{
		links:  editableLink{repo: linkRepo, tickets: ticketRepo, now: biztime.NowUTC, logger: logger},
		update: update,
		logger: logger,
	}
}

func (uc *PublicUpdateTicketUseCase) Execute(ctx context.Context, cmd PublicUpdateTicketCommand) (*ticketdto.TicketDTO, error) {
	uc.logger.Infow("executing public update ticket use case", "author_name", cmd.AuthorName)

	if strings.TrimSpace(cmd.AuthorName) == "" {
		return nil, apperrors.NewValidationError("author_name is required")
	}
	link, err := uc.links.find(ctx, cmd.Token)
	if err != nil {
		return nil, err
	}

	updated, err := uc.update.Execute(ctx, ticketusecases.UpdateTicketCommand{
		TenantID:    link.TenantID(),
		Kind:        link.ItemType().String(),
		TicketID:    link.ItemID(),
		StatusID:    cmd.StatusID,
		Description: cmd.Description,
		PerformedAt: cmd.PerformedAt,
		Actor:       ticketusecases.ExternalActor(cmd.AuthorName),
	})
	if err != nil {
		return nil, err
	}
	return updated.Public(), nil
}

type PublicAddAttachmentCommand struct {
	Token      string
	AuthorName string
	URL        string
	Caption    string
}

type PublicAddAttachmentUseCase struct {
	links  editableLink
	add    ticketusecases.AddAttachmentExecutor
	logger logger.Interface
}

func NewPublicAddAttachmentUseCase(
	linkRepo sharelink.Repository,
	ticketRepo ticket.Repository,
	add ticketusecases.AddAttachmentExecutor,
	logger logger.Interface,
) *PublicAddAttachmentUseCase {
	return &PublicAddAttachmentUseCase{
		links:  editableLink{repo: linkRepo, tickets: ticketRepo, now: biztime.NowUTC, logger: logger},
		add:    add,
		logger: logger,
	}
}

func (uc *PublicAddAttachmentUseCase) Execute(ctx context.Context, cmd PublicAddAttachmentCommand) (*ticketdto.AttachmentDTO, error) {
	uc.logger.Infow("executing public add attachment use case", "author_name", cmd.AuthorName)

	if strings.TrimSpace(cmd.AuthorName) == "" {
		return nil, apperrors.NewValidationError("author_name is required")
	}
	link, err := uc.links.find(ctx, cmd.Token)
	if err != nil {
		return nil, err
	}

	return uc.add.Execute(ctx, ticketusecases.AddAttachmentCommand{
		TenantID: link.TenantID(),
		Kind:     link.ItemType().String(),
		TicketID: link.ItemID(),
		URL:      cmd.URL,
		Caption:  cmd.Caption,
		Actor:    ticketusecases.ExternalActor(cmd.AuthorName),
	})
}
