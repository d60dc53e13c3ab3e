package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/niggl1/appsindico/internal/domain/ticket"
	"github.com/niggl1/appsindico/internal/infrastructure/persistence/mappers"
	"github.com/niggl1/appsindico/internal/infrastructure/persistence/models"
	"github.com/niggl1/appsindico/internal/shared/db"
	"github.com/niggl1/appsindico/internal/shared/logger"
)

type AttachmentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewAttachmentRepository(gdb *gorm.DB, logger logger.Interface) *AttachmentRepository {
	return &AttachmentRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

func (r *AttachmentRepository) Create(ctx context.Context, a *ticket.Attachment) error {
	model := r.mapper.AttachmentToModel(a)
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save attachment: %w", err)
	}
	a.SetID(model.ID)
	return nil
}

func (r *AttachmentRepository) GetByID(ctx context.Context, tenantID, ticketID, id uint) (*ticket.Attachment, error) {
	var model models.AttachmentModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForTenant(tenantID)).
		Where("ticket_id = ?", ticketID).
		First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attachment: %w", err)
	}
	return r.mapper.AttachmentToDomain(&model), nil
}

func (r *AttachmentRepository) ListByTicket(ctx context.Context, tenantID, ticketID uint) ([]*ticket.Attachment, error) {
	var list []models.AttachmentModel
	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForTenant(tenantID)).
		Where("ticket_id = ?", ticketID).
		Order("position ASC, id ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}

	out := make([]*ticket.Attachment, 0, len(list))
	for i := range list {
		out = append(out, r.mapper.AttachmentToDomain(&list[i]))
	}
	return out, nil
}

func (r *AttachmentRepository) MaxPosition(ctx context.Context, tenantID, ticketID uint) (int, error) {
	var highest int
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.AttachmentModel{}).
		Scopes(db.ForTenant(tenantID)).
		Where("ticket_id = ?", ticketID).
		Select("COALESCE(MAX(position), 0)").
		Scan(&highest).Error; err != nil {
		return 0, fmt.Errorf("failed to get max attachment position: %w", err)
	}
	return highest, nil
}

func (r *AttachmentRepository) Delete(ctx context.Context, tenantID, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForTenant(tenantID)).
		Delete(&models.AttachmentModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete attachment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ticket.ErrAttachmentNotFound
	}
	return nil
}

func (r *AttachmentRepository) DeleteByTicket(ctx context.Context, tenantID, ticketID uint) error {
	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForTenant(tenantID)).
		Where("ticket_id = ?", ticketID).
		Delete(&models.AttachmentModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete attachments: %w", err)
	}
	return nil
}
