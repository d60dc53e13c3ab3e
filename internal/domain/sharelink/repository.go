package sharelink

import (
	"context"
	"time"

	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
)

type Repository interface {
	Create(ctx context.Context, link *ShareLink) error
	GetByID(ctx context.Context, tenantID, id uint) (*ShareLink, error)
	// GetByToken matches the token exactly and returns the link regardless of state.
	GetByToken(ctx context.Context, token string) (*ShareLink, error)
	// IncrementAccess atomically adds one to the access counter of an active link.
	// It returns false if the link was deactivated in the meantime.
	IncrementAccess(ctx context.Context, id uint, at time.Time) (bool, error)
	Deactivate(ctx context.Context, tenantID, id uint) error
	ListByItem(ctx context.Context, tenantID uint, itemType vo.Kind, itemID uint) ([]*ShareLink, error)
	// DeactivateExpired deactivates active links whose expiry is at or before now.
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
	DeleteByItem(ctx context.Context, tenantID uint, itemType vo.Kind, itemID uint) error
}
