package usecases

import (
	"context"
	"fmt"

	"github.com/niggl1/appsindico/internal/application/sharelink/dto"
	"github.com/niggl1/appsindico/internal/domain/sharelink"
	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
	"github.com/niggl1/appsindico/internal/shared/biztime"
	apperrors "github.com/niggl1/appsindico/internal/shared/errors"
	"github.com/niggl1/appsindico/internal/shared/logger"
)

type DeactivateShareLinkCommand struct {
	TenantID    uint
	ShareLinkID uint
}

type DeactivateShareLinkUseCase struct {
	linkRepo sharelink.Repository
	logger   logger.Interface
}

func NewDeactivateShareLinkUseCase(linkRepo sharelink.Repository, logger logger.Interface) *DeactivateShareLinkUseCase {
	return &DeactivateShareLinkUseCase{linkRepo: linkRepo, logger: logger}
}

// Execute is idempotent. The row and its access history are kept.
func (uc *DeactivateShareLinkUseCase) Execute(ctx context.Context, cmd DeactivateShareLinkCommand) error {
	uc.logger.Infow("executing deactivate share link use case", "tenant_id", cmd.TenantID, "share_link_id", cmd.ShareLinkID)

	link, err := uc.linkRepo.GetByID(ctx, cmd.TenantID, cmd.ShareLinkID)
	if err != nil {
		uc.logger.Errorw("failed to get share link", "share_link_id", cmd.ShareLinkID, "error", err)
		return fmt.Errorf("failed to get share link: %w", err)
	}
	if link == nil {
		return toAppError(sharelink.ErrShareLinkNotFound)
	}
	if !link.IsActive() {
		return nil
	}

	if err := uc.linkRepo.Deactivate(ctx, cmd.TenantID, link.ID()); err != nil {
		if mapped := toAppError(err); apperrors.IsAppError(mapped) {
			return mapped
		}
		uc.logger.Errorw("failed to deactivate share link", "share_link_id", link.ID(), "error", err)
		return fmt.Errorf("failed to deactivate share link: %w", err)
	}

	uc.logger.Infow("share link deactivated successfully", "share_link_id", link.ID())
	return nil
}

type ListShareLinksQuery struct {
	TenantID uint
	ItemType string
	ItemID   uint
}

type ListShareLinksUseCase struct {
	linkRepo sharelink.Repository
	logger   logger.Interface
}

func NewListShareLinksUseCase(linkRepo sharelink.Repository, logger logger.Interface) *ListShareLinksUseCase {
	return &ListShareLinksUseCase{linkRepo: linkRepo, logger: logger}
}

func (uc *ListShareLinksUseCase) Execute(ctx context.Context, query ListShareLinksQuery) ([]*dto.ShareLinkDTO, error) {
	uc.logger.Infow("executing list share links use case", "tenant_id", query.TenantID, "item_type", query.ItemType, "item_id", query.ItemID)

	itemType, err := vo.NewKind(query.ItemType)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}
	if query.ItemID == 0 {
		return nil, toAppError(sharelink.ErrInvalidItemID)
	}

	links, err := uc.linkRepo.ListByItem(ctx, query.TenantID, itemType, query.ItemID)
	if err != nil {
		uc.logger.Errorw("failed to list share links", "item_id", query.ItemID, "error", err)
		return nil, fmt.Errorf("failed to list share links: %w", err)
	}
	return dto.ToShareLinkDTOs(links), nil
}

type SweepExpiredUseCase struct {
	linkRepo sharelink.Repository
	now      Clock
	logger   logger.Interface
}

func NewSweepExpiredUseCase(linkRepo sharelink.Repository, logger logger.Interface) *SweepExpiredUseCase {
	return &SweepExpiredUseCase{linkRepo: linkRepo, now: biztime.NowUTC, logger: logger}
}

// WithClock replaces the time source.
func (uc *SweepExpiredUseCase) WithClock(now Clock) *SweepExpiredUseCase {
	uc.now = now
	return uc
}

// Execute deactivates every active link whose expiry has passed.
func (uc *SweepExpiredUseCase) Execute(ctx context.Context) (int64, error) {
	n, err := uc.linkRepo.DeactivateExpired(ctx, uc.now())
	if err != nil {
		uc.logger.Errorw("failed to sweep expired share links", "error", err)
		return 0, fmt.Errorf("failed to sweep expired share links: %w", err)
	}
	if n > 0 {
		uc.logger.Infow("expired share links deactivated", "count", n)
	}
	return n, nil
}
