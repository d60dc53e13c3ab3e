package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/niggl1/appsindico/internal/application/comment/dto"
	ticketusecases "github.com/niggl1/appsindico/internal/application/ticket/usecases"
	"github.com/niggl1/appsindico/internal/domain/comment"
	"github.com/niggl1/appsindico/internal/domain/ticket"
	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
	"github.com/niggl1/appsindico/internal/shared/db"
	apperrors "github.com/niggl1/appsindico/internal/shared/errors"
	"github.com/niggl1/appsindico/internal/shared/goroutine"
	"github.com/niggl1/appsindico/internal/shared/logger"
	"github.com/niggl1/appsindico/internal/shared/services/markdown"
)

const notificationTimeout = 30 * time.Second

type CreateCommentCommand struct {
	TenantID      uint
	ItemType      string
	ItemID        uint
	AuthorID      *uint
	AuthorName    string
	AuthorContact string
	Text          string
	Attachments   []string
	IsInternal    bool
}

// commentWriter stores a comment and its timeline event together. Staff and
// public entry points share it.
type commentWriter struct {
	commentRepo comment.Repository
	ticketRepo  ticket.Repository
	timeline    *ticketusecases.TimelineWriter
	sanitizer   markdown.MarkdownService
	notifier    Notifier
	txMgr       db.Transactor
	logger      logger.Interface
}

func (w *commentWriter) write(ctx context.Context, cmd CreateCommentCommand) (*dto.CreateCommentResult, error) {
	itemType, err := vo.NewKind(cmd.ItemType)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	text := w.sanitizer.PlainText(cmd.Text)
	author := titleCase(cmd.AuthorName)

	var (
		created *comment.Comment
		target  *ticket.Ticket
	)
	err = w.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		target, err = w.ticketRepo.GetByID(txCtx, cmd.TenantID, itemType, cmd.ItemID)
		if err != nil {
			return fmt.Errorf("failed to get ticket: %w", err)
		}
		if target == nil {
			return ticket.ErrTicketNotFound
		}

		created, err = comment.NewComment(comment.NewCommentParams{
			TenantID:      cmd.TenantID,
			ItemType:      itemType,
			ItemID:        target.ID(),
			AuthorID:      cmd.AuthorID,
			AuthorName:    author,
			AuthorContact: cmd.AuthorContact,
			Text:          text,
			Attachments:   cmd.Attachments,
			IsInternal:    cmd.IsInternal,
		})
		if err != nil {
			return err
		}
		if err := w.commentRepo.Create(txCtx, created); err != nil {
			return fmt.Errorf("failed to save comment: %w", err)
		}

		actor := ticketusecases.Actor{ID: cmd.AuthorID, Name: created.AuthorName()}
		_, err = w.timeline.Append(txCtx, target, actor, ticketusecases.EventInput{
			Kind:         vo.EventComment,
			DescribeArgs: []any{created.AuthorName()},
			Metadata:     map[string]any{"comment_id": created.ID()},
			Internal:     created.IsInternal(),
		})
		return err
	})
	if err != nil {
		mapped := toAppError(err)
		if apperrors.IsAppError(mapped) {
			return nil, mapped
		}
		w.logger.Errorw("failed to create comment", "item_id", cmd.ItemID, "error", err)
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	if created.IsPublic() {
		w.notify(target, created)
	}

	w.logger.Infow("comment created successfully",
		"comment_id", created.ID(),
		"item_type", itemType,
		"item_id", created.ItemID(),
		"internal", created.IsInternal(),
	)
	return &dto.CreateCommentResult{ID: created.ID(), CreatedAt: created.CreatedAt()}, nil
}

func (w *commentWriter) notify(t *ticket.Ticket, c *comment.Comment) {
	n := Notification{
		TenantID:    c.TenantID(),
		ItemType:    c.ItemType().String(),
		ItemID:      c.ItemID(),
		Protocol:    t.Protocol(),
		TicketTitle: t.Title(),
		AuthorName:  c.AuthorName(),
		Text:        c.Text(),
	}
	log := w.logger.WithTenant(n.TenantID).With("comment_id", c.ID())
	goroutine.Detached(log, "comment-notification", notificationTimeout, func(ctx context.Context) error {
		return w.notifier.NotifyPublicComment(ctx, n)
	})
}

func titleCase(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return ""
	}
	return cases.Title(language.BrazilianPortuguese).String(name)
}

// CreateCommentUseCase posts a staff comment.
type CreateCommentUseCase struct {
	writer *commentWriter
	logger logger.Interface
}

func NewCreateCommentUseCase(
	commentRepo comment.Repository,
	ticketRepo ticket.Repository,
	timeline *ticketusecases.TimelineWriter,
	sanitizer markdown.MarkdownService,
	notifier Notifier,
	txMgr db.Transactor,
	logger logger.Interface,
) *CreateCommentUseCase {
	return &CreateCommentUseCase{
		writer: &commentWriter{
			commentRepo: commentRepo,
			ticketRepo:  ticketRepo,
			timeline:    timeline,
			sanitizer:   sanitizer,
			notifier:    notifier,
			txMgr:       txMgr,
			logger:      logger,
		},
		logger: logger,
	}
}

func (uc *CreateCommentUseCase) Execute(ctx context.Context, cmd CreateCommentCommand) (*dto.CreateCommentResult, error) {
	uc.logger.Infow("executing create comment use case",
		"tenant_id", cmd.TenantID,
		"item_type", cmd.ItemType,
		"item_id", cmd.ItemID,
		"internal", cmd.IsInternal,
	)
	return uc.writer.write(ctx, cmd)
}
