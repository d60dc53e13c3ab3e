package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/niggl1/appsindico/internal/domain/comment"
	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
	"github.com/niggl1/appsindico/internal/infrastructure/persistence/mappers"
	"github.com/niggl1/appsindico/internal/infrastructure/persistence/models"
	"github.com/niggl1/appsindico/internal/shared/db"
	"github.com/niggl1/appsindico/internal/shared/logger"
)

// CommentRepositoryImpl implements the comment.Repository interface.
type CommentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CommentMapper
	logger logger.Interface
}

func NewCommentRepository(gdb *gorm.DB, logger logger.Interface) *CommentRepositoryImpl {
	return &CommentRepositoryImpl{
		db:     gdb,
		mapper: mappers.NewCommentMapper(),
		logger: logger,
	}
}

func (r *CommentRepositoryImpl) Create(ctx context.Context, c *comment.Comment) error {
	model, err := r.mapper.ToModel(c)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}
	c.SetID(model.ID)
	return nil
}

func (r *CommentRepositoryImpl) GetByID(ctx context.Context, tenantID, id uint) (*comment.Comment, error) {
	var model models.CommentModel
	err := db.GetTxFromContext(ctx, r.db).Scopes(db.ForTenant(tenantID)).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	responses, err := r.loadResponses(ctx, []uint{model.ID})
	if err != nil {
		return nil, err
	}
	return r.mapper.ToDomain(&model, responses[model.ID])
}

func (r *CommentRepositoryImpl) ListByItem(ctx context.Context, tenantID uint, itemType vo.Kind, itemID uint, includeInternal bool) ([]*comment.Comment, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForTenant(tenantID)).
		Where("item_type = ? AND item_id = ?", itemType.String(), itemID)
	if !includeInternal {
		query = query.Where("is_internal = ?", false)
	}

	var list []models.CommentModel
	if err := query.Order("created_at DESC, id DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	if len(list) == 0 {
		return []*comment.Comment{}, nil
	}

	ids := make([]uint, 0, len(list))
	for _, m := range list {
		ids = append(ids, m.ID)
	}
	responses, err := r.loadResponses(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]*comment.Comment, 0, len(list))
	for i := range list {
		c, err := r.mapper.ToDomain(&list[i], responses[list[i].ID])
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *CommentRepositoryImpl) MarkRead(ctx context.Context, c *comment.Comment) error {
	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.CommentModel{}).
		Scopes(db.ForTenant(c.TenantID())).
		Where("id = ? AND is_read = ?", c.ID(), false).
		Updates(map[string]any{
			"is_read":    true,
			"read_by_id": c.ReadByID(),
			"read_at":    c.ReadAt(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark comment read: %w", result.Error)
	}
	return nil
}

func (r *CommentRepositoryImpl) Delete(ctx context.Context, tenantID, id uint) error {
	return db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		result := tx.Scopes(db.ForTenant(tenantID)).Delete(&models.CommentModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete comment: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return comment.ErrCommentNotFound
		}
		if err := tx.Where("comment_id = ?", id).Delete(&models.CommentResponseModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete comment responses: %w", err)
		}
		return nil
	})
}

func (r *CommentRepositoryImpl) DeleteByItem(ctx context.Context, tenantID uint, itemType vo.Kind, itemID uint) error {
	return db.GetTxFromContext(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := tx.Model(&models.CommentModel{}).
			Scopes(db.ForTenant(tenantID)).
			Where("item_type = ? AND item_id = ?", itemType.String(), itemID).
			Pluck("id", &ids).Error; err != nil {
			return fmt.Errorf("failed to find comments: %w", err)
		}
		if len(ids) == 0 {
			return nil
		}
		if err := tx.Where("comment_id IN ?", ids).Delete(&models.CommentResponseModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete comment responses: %w", err)
		}
		if err := tx.Where("id IN ?", ids).Delete(&models.CommentModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete comments: %w", err)
		}
		return nil
	})
}

func (r *CommentRepositoryImpl) CreateResponse(ctx context.Context, resp *comment.Response) error {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.CommentModel{}).
		Scopes(db.ForTenant(resp.TenantID())).
		Where("id = ?", resp.CommentID()).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check comment: %w", err)
	}
	if count == 0 {
		return comment.ErrCommentNotFound
	}

	model := r.mapper.ResponseToModel(resp)
	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment response: %w", err)
	}
	resp.SetID(model.ID)
	return nil
}

// loadResponses returns responses grouped by comment id, oldest first.
func (r *CommentRepositoryImpl) loadResponses(ctx context.Context, commentIDs []uint) (map[uint][]models.CommentResponseModel, error) {
	var list []models.CommentResponseModel
	if err := db.GetTxFromContext(ctx, r.db).
		Where("comment_id IN ?", commentIDs).
		Order("created_at ASC, id ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to load comment responses: %w", err)
	}

	grouped := make(map[uint][]models.CommentResponseModel, len(commentIDs))
	for _, m := range list {
		grouped[m.CommentID] = append(grouped[m.CommentID], m)
	}
	return grouped, nil
}
