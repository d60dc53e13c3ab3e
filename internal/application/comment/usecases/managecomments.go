package usecases

import (
	"context"
	"fmt"

	"github.com/niggl1/appsindico/internal/application/comment/dto"
	"github.com/niggl1/appsindico/internal/domain/comment"
	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
	apperrors "github.com/niggl1/appsindico/internal/shared/errors"
	"github.com/niggl1/appsindico/internal/shared/logger"
	"github.com/niggl1/appsindico/internal/shared/services/markdown"
)

type ListCommentsQuery struct {
	TenantID        uint
	ItemType        string
	ItemID          uint
	IncludeInternal bool
}

type ListCommentsUseCase struct {
	commentRepo comment.Repository
	logger      logger.Interface
}

func NewListCommentsUseCase(commentRepo comment.Repository, logger logger.Interface) *ListCommentsUseCase {
	return &ListCommentsUseCase{commentRepo: commentRepo, logger: logger}
}

func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) ([]*dto.CommentDTO, error) {
	uc.logger.Infow("executing list comments use case", "tenant_id", query.TenantID, "item_type", query.ItemType, "item_id", query.ItemID)
	return listComments(ctx, uc.commentRepo, uc.logger, query.TenantID, query.ItemType, query.ItemID, query.IncludeInternal)
}

func listComments(
	ctx context.Context,
	repo comment.Repository,
	log logger.Interface,
	tenantID uint,
	itemType string,
	itemID uint,
	includeInternal bool,
) ([]*dto.CommentDTO, error) {
	kind, err := vo.NewKind(itemType)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if itemID == 0 {
		return nil, toAppError(comment.ErrInvalidItemID)
	}

	list, err := repo.ListByItem(ctx, tenantID, kind, itemID, includeInternal)
	if err != nil {
		log.Errorw("failed to list comments", "item_id", itemID, "error", err)
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return dto.ToCommentDTOs(list, !includeInternal), nil
}

type ReplyCommentCommand struct {
	TenantID   uint
	CommentID  uint
	AuthorID   *uint
	AuthorName string
	Text       string
}

type ReplyCommentUseCase struct {
	commentRepo comment.Repository
	sanitizer   markdown.MarkdownService
	logger      logger.Interface
}

func NewReplyCommentUseCase(commentRepo comment.Repository, sanitizer markdown.MarkdownService, logger logger.Interface) *ReplyCommentUseCase {
	return &ReplyCommentUseCase{commentRepo: commentRepo, sanitizer: sanitizer, logger: logger}
}

func (uc *ReplyCommentUseCase) Execute(ctx context.Context, cmd ReplyCommentCommand) (*dto.ResponseDTO, error) {
	uc.logger.Infow("executing reply comment use case", "tenant_id", cmd.TenantID, "comment_id", cmd.CommentID)

	parent, err := uc.commentRepo.GetByID(ctx, cmd.TenantID, cmd.CommentID)
	if err != nil {
		uc.logger.Errorw("failed to get comment", "comment_id", cmd.CommentID, "error", err)
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	if parent == nil {
		return nil, toAppError(comment.ErrCommentNotFound)
	}

	response, err := comment.NewResponse(cmd.TenantID, parent.ID(), cmd.AuthorID, titleCase(cmd.AuthorName), uc.sanitizer.PlainText(cmd.Text))
	if err != nil {
		return nil, toAppError(err)
	}
	if err := uc.commentRepo.CreateResponse(ctx, response); err != nil {
		if mapped := toAppError(err); apperrors.IsAppError(mapped) {
			return nil, mapped
		}
		uc.logger.Errorw("failed to save response", "comment_id", parent.ID(), "error", err)
		return nil, fmt.Errorf("failed to save response: %w", err)
	}

	uc.logger.Infow("comment response created successfully", "comment_id", parent.ID(), "response_id", response.ID())
	return dto.ToResponseDTO(response), nil
}

type MarkCommentReadCommand struct {
	TenantID  uint
	CommentID uint
	ReaderID  uint
}

type MarkCommentReadUseCase struct {
	commentRepo comment.Repository
	logger      logger.Interface
}

func NewMarkCommentReadUseCase(commentRepo comment.Repository, logger logger.Interface) *MarkCommentReadUseCase {
	return &MarkCommentReadUseCase{commentRepo: commentRepo, logger: logger}
}

// Execute is idempotent and keeps the first reader.
func (uc *MarkCommentReadUseCase) Execute(ctx context.Context, cmd MarkCommentReadCommand) error {
	uc.logger.Infow("executing mark comment read use case", "tenant_id", cmd.TenantID, "comment_id", cmd.CommentID, "reader_id", cmd.ReaderID)

	c, err := uc.commentRepo.GetByID(ctx, cmd.TenantID, cmd.CommentID)
	if err != nil {
		uc.logger.Errorw("failed to get comment", "comment_id", cmd.CommentID, "error", err)
		return fmt.Errorf("failed to get comment: %w", err)
	}
	if c == nil {
		return toAppError(comment.ErrCommentNotFound)
	}

	changed, err := c.MarkRead(cmd.ReaderID)
	if err != nil {
		return toAppError(err)
	}
	if !changed {
		return nil
	}
	if err := uc.commentRepo.MarkRead(ctx, c); err != nil {
		uc.logger.Errorw("failed to mark comment read", "comment_id", c.ID(), "error", err)
		return fmt.Errorf("failed to mark comment read: %w", err)
	}
	return nil
}

type DeleteCommentCommand struct {
	TenantID  uint
	CommentID uint
}

type DeleteCommentUseCase struct {
	commentRepo comment.Repository
	logger      logger.Interface
}

func NewDeleteCommentUseCase(commentRepo comment.Repository, logger logger.Interface) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{commentRepo: commentRepo, logger: logger}
}

// Execute removes the comment with its responses.
func (uc *DeleteCommentUseCase) Execute(ctx context.Context, cmd DeleteCommentCommand) error {
	uc.logger.Infow("executing delete comment use case", "tenant_id", cmd.TenantID, "comment_id", cmd.CommentID)

	c, err := uc.commentRepo.GetByID(ctx, cmd.TenantID, cmd.CommentID)
	if err != nil {
		uc.logger.Errorw("failed to get comment", "comment_id", cmd.CommentID, "error", err)
		return fmt.Errorf("failed to get comment: %w", err)
	}
	if c == nil {
		return toAppError(comment.ErrCommentNotFound)
	}
	if err := uc.commentRepo.Delete(ctx, cmd.TenantID, c.ID()); err != nil {
		if mapped := toAppError(err); apperrors.IsAppError(mapped) {
			return mapped
		}
		uc.logger.Errorw("failed to delete comment", "comment_id", c.ID(), "error", err)
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	uc.logger.Infow("comment deleted successfully", "comment_id", c.ID())
	return nil
}
