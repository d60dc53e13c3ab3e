package comment

import (
	"context"

	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
)

type Repository interface {
	Create(ctx context.Context, c *Comment) error
	GetByID(ctx context.Context, tenantID, id uint) (*Comment, error)
	// ListByItem returns comments newest-first with their responses oldest-first.
	// Internal comments are left out unless includeInternal is set.
	ListByItem(ctx context.Context, tenantID uint, itemType vo.Kind, itemID uint, includeInternal bool) ([]*Comment, error)
	MarkRead(ctx context.Context, c *Comment) error
	// Delete removes the comment and its responses.
	Delete(ctx context.Context, tenantID, id uint) error
	DeleteByItem(ctx context.Context, tenantID uint, itemType vo.Kind, itemID uint) error

	CreateResponse(ctx context.Context, r *Response) error
}
