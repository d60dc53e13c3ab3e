package mappers

import (
	"fmt"

	"github.com/niggl1/appsindico/internal/domain/sharelink"
	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
	"github.com/niggl1/appsindico/internal/infrastructure/persistence/models"
)

type ShareLinkMapper interface {
	ToModel(l *sharelink.ShareLink) *models.ShareLinkModel
	ToDomain(model *models.ShareLinkModel) (*sharelink.ShareLink, error)
}

type ShareLinkMapperImpl struct{}

func NewShareLinkMapper() ShareLinkMapper {
	return &ShareLinkMapperImpl{}
}

func (m *ShareLinkMapperImpl) ToModel(l *sharelink.ShareLink) *models.ShareLinkModel {
	return &models.ShareLinkModel{
		ID:             l.ID(),
		TenantID:       l.TenantID(),
		ItemType:       l.ItemType().String(),
		ItemID:         l.ItemID(),
		Token:          l.Token(),
		Editable:       l.Editable(),
		ExpiryHours:    l.ExpiryHours(),
		ExpiresAt:      l.ExpiresAt(),
		AccessCount:    l.AccessCount(),
		CreatedByID:    l.CreatedByID(),
		CreatedByName:  l.CreatedByName(),
		IsActive:       l.IsActive(),
		LastAccessedAt: l.LastAccessedAt(),
		CreatedAt:      l.CreatedAt(),
		UpdatedAt:      l.UpdatedAt(),
	}
}

func (m *ShareLinkMapperImpl) ToDomain(model *models.ShareLinkModel) (*sharelink.ShareLink, error) {
	itemType, err := vo.NewKind(model.ItemType)
	if err != nil {
		return nil, fmt.Errorf("invalid item type on share link %d: %w", model.ID, err)
	}
	return sharelink.ReconstructShareLink(
		model.ID,
		model.TenantID,
		itemType,
		model.ItemID,
		model.Token,
		model.Editable,
		model.ExpiryHours,
		model.AccessCount,
		model.CreatedByID,
		model.CreatedByName,
		model.IsActive,
		utcPtr(model.LastAccessedAt),
		model.CreatedAt.UTC(),
		model.UpdatedAt.UTC(),
	), nil
}
