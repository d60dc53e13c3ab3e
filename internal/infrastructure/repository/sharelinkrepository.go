package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/niggl1/appsindico/internal/domain/sharelink"
	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
	"github.com/niggl1/appsindico/internal/infrastructure/persistence/mappers"
	"github.com/niggl1/appsindico/internal/infrastructure/persistence/models"
	"github.com/niggl1/appsindico/internal/shared/db"
	"github.com/niggl1/appsindico/internal/shared/logger"
)

// ShareLinkRepositoryImpl implements the sharelink.Repository interface.
type ShareLinkRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ShareLinkMapper
	logger logger.Interface
}

func NewShareLinkRepository(gdb *gorm.DB, logger logger.Interface) *ShareLinkRepositoryImpl {
	return &ShareLinkRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewShareLinkMapper(),
		logger: logger,
	}
}

func (r *ShareLinkRepositoryImpl) Create(ctx context.Context, link *sharelink.ShareLink) error {
	model := r.mapper.ToModel(link)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create share link: %w", err)
	}
	link.SetID(model.ID)
	return nil
}

func (r *ShareLinkRepositoryImpl) GetByID(ctx context.Context, tenantID, id uint) (*sharelink.ShareLink, error) {
	var model models.ShareLinkModel
	err := db.GetTxFromContext(ctx, r.db).Scopes(db.ForTenant(tenantID)).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get share link: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *ShareLinkRepositoryImpl) GetByToken(ctx context.Context, token string) (*sharelink.ShareLink, error) {
	var model models.ShareLinkModel
	err := db.GetTxFromContext(ctx, r.db).Where("token = ?", token).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get share link by token: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

// IncrementAccess bumps the counter in SQL so concurrent resolutions never lose a count.
func (r *ShareLinkRepositoryImpl) IncrementAccess(ctx context.Context, id uint, at time.Time) (bool, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ShareLinkModel{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]any{
			"access_count":     gorm.Expr("access_count + 1"),
			"last_accessed_at": at,
			"updated_at":       at,
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to record share link access: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *ShareLinkRepositoryImpl) Deactivate(ctx context.Context, tenantID, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.ShareLinkModel{}).
		Scopes(db.ForTenant(tenantID)).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]any{"is_active": false, "updated_at": time.Now().UTC()})
	if result.Error != nil {
		return fmt.Errorf("failed to deactivate share link: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	existing, err := r.GetByID(ctx, tenantID, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return sharelink.ErrShareLinkNotFound
	}
	return nil
}

func (r *ShareLinkRepositoryImpl) ListByItem(ctx context.Context, tenantID uint, itemType vo.Kind, itemID uint) ([]*sharelink.ShareLink, error) {
	var list []models.ShareLinkModel
	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForTenant(tenantID)).
		Where("item_type = ? AND item_id = ?", itemType.String(), itemID).
		Order("id DESC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list share links: %w", err)
	}

	out := make([]*sharelink.ShareLink, 0, len(list))
	for i := range list {
		l, err := r.mapper.ToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

func (r *ShareLinkRepositoryImpl) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.ShareLinkModel{}).
		Where("is_active = ? AND expires_at IS NOT NULL AND expires_at <= ?", true, now).
		Updates(map[string]any{"is_active": false, "updated_at": now})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to deactivate expired share links: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *ShareLinkRepositoryImpl) DeleteByItem(ctx context.Context, tenantID uint, itemType vo.Kind, itemID uint) error {
	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForTenant(tenantID)).
		Where("item_type = ? AND item_id = ?", itemType.String(), itemID).
		Delete(&models.ShareLinkModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete share links: %w", err)
	}
	return nil
}
