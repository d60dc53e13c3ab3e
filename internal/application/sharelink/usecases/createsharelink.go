package usecases

import (
	"context"
	"fmt"

	"github.com/niggl1/appsindico/internal/application/sharelink/dto"
	"github.com/niggl1/appsindico/internal/domain/sharelink"
	"github.com/niggl1/appsindico/internal/domain/ticket"
	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
	apperrors "github.com/niggl1/appsindico/internal/shared/errors"
	"github.com/niggl1/appsindico/internal/shared/logger"
)

type CreateShareLinkCommand struct {
	TenantID      uint
	ItemType      string
	ItemID        uint
	Editable      bool
	ExpiryHours   *int
	CreatedByID   *uint
	CreatedByName string
}

type CreateShareLinkUseCase struct {
	linkRepo   sharelink.Repository
	ticketRepo ticket.Repository
	tokens     ticket.TokenGenerator
	policy     ExpiryPolicy
	logger     logger.Interface
}

func NewCreateShareLinkUseCase(
	linkRepo sharelink.Repository,
	ticketRepo ticket.Repository,
	tokens ticket.TokenGenerator,
	policy ExpiryPolicy,
	logger logger.Interface,
) *CreateShareLinkUseCase {
	return &CreateShareLinkUseCase{
		linkRepo:   linkRepo,
		ticketRepo: ticketRepo,
		tokens:     tokens,
		policy:     policy,
		logger:     logger,
	}
}

func (uc *CreateShareLinkUseCase) Execute(ctx context.Context, cmd CreateShareLinkCommand) (*dto.CreateShareLinkResult, error) {
	uc.logger.Infow("executing create share link use case",
		"tenant_id", cmd.TenantID,
		"item_type", cmd.ItemType,
		"item_id", cmd.ItemID,
		"editable", cmd.Editable,
	)

	itemType, err := vo.NewKind(cmd.ItemType)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	hours := uc.policy.DefaultHours
	if cmd.ExpiryHours != nil {
		hours = *cmd.ExpiryHours
	}
	if uc.policy.MaxHours > 0 && hours > uc.policy.MaxHours {
		return nil, apperrors.NewValidationError(fmt.Sprintf("expiry_hours must not exceed %d", uc.policy.MaxHours))
	}

	target, err := uc.ticketRepo.GetByID(ctx, cmd.TenantID, itemType, cmd.ItemID)
	if err != nil {
		uc.logger.Errorw("failed to get share link target", "item_id", cmd.ItemID, "error", err)
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	if target == nil {
		return nil, toAppError(ticket.ErrTicketNotFound)
	}

	token, err := uc.tokens.Generate()
	if err != nil {
		uc.logger.Errorw("failed to generate share token", "error", err)
		return nil, fmt.Errorf("failed to generate share token: %w", err)
	}

	link, err := sharelink.NewShareLink(sharelink.NewShareLinkParams{
		TenantID:      cmd.TenantID,
		ItemType:      itemType,
		ItemID:        target.ID(),
		Token:         token,
		Editable:      cmd.Editable,
		ExpiryHours:   hours,
		CreatedByID:   cmd.CreatedByID,
		CreatedByName: cmd.CreatedByName,
	})
	if err != nil {
		return nil, toAppError(err)
	}

	if err := uc.linkRepo.Create(ctx, link); err != nil {
		uc.logger.Errorw("failed to save share link", "item_id", cmd.ItemID, "error", err)
		return nil, fmt.Errorf("failed to save share link: %w", err)
	}

	uc.logger.Infow("share link created successfully", "share_link_id", link.ID(), "item_id", link.ItemID(), "expiry_hours", hours)
	return &dto.CreateShareLinkResult{
		ID:        link.ID(),
		Token:     link.Token(),
		ExpiresAt: link.ExpiresAt(),
	}, nil
}
