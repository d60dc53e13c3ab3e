package usecases

import (
	"context"
	"fmt"

	"github.com/niggl1/appsindico/internal/application/comment/dto"
	ticketusecases "github.com/niggl1/appsindico/internal/application/ticket/usecases"
	"github.com/niggl1/appsindico/internal/domain/comment"
	"github.com/niggl1/appsindico/internal/domain/sharelink"
	"github.com/niggl1/appsindico/internal/domain/ticket"
	"github.com/niggl1/appsindico/internal/shared/biztime"
	"github.com/niggl1/appsindico/internal/shared/db"
	apperrors "github.com/niggl1/appsindico/internal/shared/errors"
	"github.com/niggl1/appsindico/internal/shared/logger"
	"github.com/niggl1/appsindico/internal/shared/services/markdown"
)

// Channel names how a visitor reached a ticket.
type Channel string

const (
	ChannelShareLink Channel = "share"
	ChannelChat      Channel = "chat"
)

// target is the ticket a public token points at.
type target struct {
	tenantID uint
	itemType string
	itemID   uint
}

type targetResolver struct {
	linkRepo   sharelink.Repository
	ticketRepo ticket.Repository
	logger     logger.Interface
}

// resolve maps a token to its ticket. A ticket's own share token works on the
// share channel. Unknown, inactive or expired tokens are not found.
func (r targetResolver) resolve(ctx context.Context, channel Channel, token string) (*target, error) {
	notFound := apperrors.NewNotFoundError("link not found")
	if len(token) < sharelink.MinTokenLength {
		return nil, notFound
	}

	switch channel {
	case ChannelShareLink:
		link, err := r.linkRepo.GetByToken(ctx, token)
		if err != nil {
			r.logger.Errorw("failed to look up share link", "error", err)
			return nil, fmt.Errorf("failed to look up share link: %w", err)
		}
		if link == nil {
			t, err := r.ticketRepo.GetByShareToken(ctx, token)
			if err != nil {
				r.logger.Errorw("failed to look up ticket share token", "error", err)
				return nil, fmt.Errorf("failed to look up ticket share token: %w", err)
			}
			if t == nil {
				return nil, notFound
			}
			return &target{tenantID: t.TenantID(), itemType: t.Kind().String(), itemID: t.ID()}, nil
		}
		if !link.CanResolve(biztime.NowUTC()) {
			return nil, notFound
		}
		return &target{tenantID: link.TenantID(), itemType: link.ItemType().String(), itemID: link.ItemID()}, nil
	case ChannelChat:
		t, err := r.ticketRepo.GetByChatToken(ctx, token)
		if err != nil {
			r.logger.Errorw("failed to look up chat token", "error", err)
			return nil, fmt.Errorf("failed to look up chat token: %w", err)
		}
		if t == nil {
			return nil, notFound
		}
		return &target{tenantID: t.TenantID(), itemType: t.Kind().String(), itemID: t.ID()}, nil
	default:
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown channel %q", channel))
	}
}

type ListPublicCommentsQuery struct {
	Channel Channel
	Token   string
}

type ListPublicCommentsUseCase struct {
	targets     targetResolver
	commentRepo comment.Repository
	logger      logger.Interface
}

func NewListPublicCommentsUseCase(
	commentRepo comment.Repository,
	linkRepo sharelink.Repository,
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *ListPublicCommentsUseCase {
	return &ListPublicCommentsUseCase{
		targets:     targetResolver{linkRepo: linkRepo, ticketRepo: ticketRepo, logger: logger},
		commentRepo: commentRepo,
		logger:      logger,
	}
}

// Execute lists the non-internal comments of the ticket behind the token.
func (uc *ListPublicCommentsUseCase) Execute(ctx context.Context, query ListPublicCommentsQuery) ([]*dto.CommentDTO, error) {
	uc.logger.Infow("executing list public comments use case", "channel", query.Channel)

	tgt, err := uc.targets.resolve(ctx, query.Channel, query.Token)
	if err != nil {
		return nil, err
	}
	return listComments(ctx, uc.commentRepo, uc.logger, tgt.tenantID, tgt.itemType, tgt.itemID, false)
}

type CreatePublicCommentCommand struct {
	Channel       Channel
	Token         string
	AuthorName    string
	AuthorContact string
	Text          string
	Attachments   []string
}

type CreatePublicCommentUseCase struct {
	targets targetResolver
	writer  *commentWriter
	logger  logger.Interface
}

func NewCreatePublicCommentUseCase(
	commentRepo comment.Repository,
	linkRepo sharelink.Repository,
	ticketRepo ticket.Repository,
	timeline *ticketusecases.TimelineWriter,
	sanitizer markdown.MarkdownService,
	notifier Notifier,
	txMgr db.Transactor,
	logger logger.Interface,
) *CreatePublicCommentUseCase {
	return &CreatePublicCommentUseCase{
		targets: targetResolver{linkRepo: linkRepo, ticketRepo: ticketRepo, logger: logger},
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

// Execute posts a visitor comment. Visitor comments are never internal and
// carry no author id.
func (uc *CreatePublicCommentUseCase) Execute(ctx context.Context, cmd CreatePublicCommentCommand) (*dto.CreateCommentResult, error) {
	uc.logger.Infow("executing create public comment use case", "channel", cmd.Channel)

	tgt, err := uc.targets.resolve(ctx, cmd.Channel, cmd.Token)
	if err != nil {
		return nil, err
	}
	return uc.writer.write(ctx, CreateCommentCommand{
		TenantID:      tgt.tenantID,
		ItemType:      tgt.itemType,
		ItemID:        tgt.itemID,
		AuthorName:    cmd.AuthorName,
		AuthorContact: cmd.AuthorContact,
		Text:          cmd.Text,
		Attachments:   cmd.Attachments,
	})
}
