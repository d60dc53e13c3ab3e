package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/niggl1/appsindico/internal/domain/statuscatalog"
	"github.com/niggl1/appsindico/internal/infrastructure/persistence/mappers"
	"github.com/niggl1/appsindico/internal/infrastructure/persistence/models"
	"github.com/niggl1/appsindico/internal/shared/db"
	"github.com/niggl1/appsindico/internal/shared/logger"
)

// StatusRepositoryImpl implements the statuscatalog.Repository interface.
type StatusRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.StatusMapper
	logger logger.Interface
}

// NewStatusRepository creates a new status catalog repository instance.
func NewStatusRepository(gdb *gorm.DB, logger logger.Interface) *StatusRepositoryImpl {
	return &StatusRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewStatusMapper(),
		logger: logger,
	}
}

func (r *StatusRepositoryImpl) ListByTenant(ctx context.Context, tenantID uint, includeInactive bool) ([]*statuscatalog.StatusDefinition, error) {
	query := db.GetTxFromContext(ctx, r.db).Scopes(db.ForTenant(tenantID))
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	var list []models.StatusModel
	if err := query.Order("display_order ASC, id ASC").Find(&list).Error; err != nil {
		r.logger.Errorw("failed to list statuses", "tenant_id", tenantID, "error", err)
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}
	return r.mapper.ToDomainList(list), nil
}

func (r *StatusRepositoryImpl) CountByTenant(ctx context.Context, tenantID uint) (int64, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.StatusModel{}).
		Scopes(db.ForTenant(tenantID)).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count statuses: %w", err)
	}
	return count, nil
}

func (r *StatusRepositoryImpl) GetByID(ctx context.Context, tenantID, id uint) (*statuscatalog.StatusDefinition, error) {
	var model models.StatusModel
	err := db.GetTxFromContext(ctx, r.db).Scopes(db.ForTenant(tenantID)).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get status: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *StatusRepositoryImpl) Create(ctx context.Context, status *statuscatalog.StatusDefinition) error {
	model := r.mapper.ToModel(status)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create status: %w", err)
	}
	status.SetID(model.ID)
	return nil
}

func (r *StatusRepositoryImpl) CreateBatch(ctx context.Context, statuses []*statuscatalog.StatusDefinition) error {
	if len(statuses) == 0 {
		return nil
	}
	list := make([]*models.StatusModel, 0, len(statuses))
	for _, s := range statuses {
		list = append(list, r.mapper.ToModel(s))
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(&list).Error; err != nil {
		return fmt.Errorf("failed to create statuses: %w", err)
	}
	for i, s := range statuses {
		s.SetID(list[i].ID)
	}
	return nil
}

// Update persists status if the stored row is still at Version()-1.
func (r *StatusRepositoryImpl) Update(ctx context.Context, status *statuscatalog.StatusDefinition) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.StatusModel{}).
		Scopes(db.ForTenant(status.TenantID())).
		Where("id = ? AND version = ?", status.ID(), status.Version()-1).
		Updates(map[string]any{
			"name":          status.Name(),
			"display_order": status.DisplayOrder(),
			"active_slot":   mappers.ActiveSlot(status),
			"color":         status.Color(),
			"icon":          status.Icon(),
			"is_terminal":   status.IsTerminal(),
			"is_active":     status.IsActive(),
			"version":       status.Version(),
			"updated_at":    status.UpdatedAt(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	existing, err := r.GetByID(ctx, status.TenantID(), status.ID())
	if err != nil {
		return err
	}
	if existing == nil {
		return statuscatalog.ErrStatusNotFound
	}
	return statuscatalog.ErrVersionConflict
}

// UpdateOrders frees every slot first and then writes the final orders, so
// swaps inside the same batch do not collide on the unique slot index.
func (r *StatusRepositoryImpl) UpdateOrders(ctx context.Context, statuses []*statuscatalog.StatusDefinition) error {
	if len(statuses) == 0 {
		return nil
	}
	return db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		for _, s := range statuses {
			if err := tx.Model(&models.StatusModel{}).
				Scopes(db.ForTenant(s.TenantID())).
				Where("id = ?", s.ID()).
				Update("active_slot", gorm.Expr("NULL")).Error; err != nil {
				return fmt.Errorf("failed to release display order of status %d: %w", s.ID(), err)
			}
		}
		for _, s := range statuses {
			if err := tx.Model(&models.StatusModel{}).
				Scopes(db.ForTenant(s.TenantID())).
				Where("id = ?", s.ID()).
				Updates(map[string]any{
					"display_order": s.DisplayOrder(),
					"active_slot":   mappers.ActiveSlot(s),
					"version":       s.Version(),
					"updated_at":    s.UpdatedAt(),
				}).Error; err != nil {
				return fmt.Errorf("failed to update display order of status %d: %w", s.ID(), err)
			}
		}
		return nil
	})
}
