package usecases

import (
	"context"

	"github.com/niggl1/appsindico/internal/application/comment/dto"
)

// Notification describes a comment left by someone outside the staff.
type Notification struct {
	TenantID    uint
	ItemType    string
	ItemID      uint
	Protocol    string
	TicketTitle string
	AuthorName  string
	Text        string
}

// Notifier delivers best-effort alerts to staff.
type Notifier interface {
	NotifyPublicComment(ctx context.Context, n Notification) error
}

type ListCommentsExecutor interface {
	Execute(ctx context.Context, query ListCommentsQuery) ([]*dto.CommentDTO, error)
}

type CreateCommentExecutor interface {
	Execute(ctx context.Context, cmd CreateCommentCommand) (*dto.CreateCommentResult, error)
}

type ListPublicCommentsExecutor interface {
	Execute(ctx context.Context, query ListPublicCommentsQuery) ([]*dto.CommentDTO, error)
}

type CreatePublicCommentExecutor interface {
	Execute(ctx context.Context, cmd CreatePublicCommentCommand) (*dto.CreateCommentResult, error)
}

type ReplyCommentExecutor interface {
	Execute(ctx context.Context, cmd ReplyCommentCommand) (*dto.ResponseDTO, error)
}

type MarkCommentReadExecutor interface {
	Execute(ctx context.Context, cmd MarkCommentReadCommand) error
}

type DeleteCommentExecutor interface {
	Execute(ctx context.Context, cmd DeleteCommentCommand) error
}
