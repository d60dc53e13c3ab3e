package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/niggl1/appsindico/internal/domain/ticket"
	"github.com/niggl1/appsindico/internal/infrastructure/persistence/mappers"
	"github.com/niggl1/appsindico/internal/infrastructure/persistence/models"
	"github.com/niggl1/appsindico/internal/shared/db"
	"github.com/niggl1/appsindico/internal/shared/logger"
)

// TimelineRepository stores the append-only audit trail of tickets.
type TimelineRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewTimelineRepository(gdb *gorm.DB, logger logger.Interface) *TimelineRepository {
	return &TimelineRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

func (r *TimelineRepository) Append(ctx context.Context, event *ticket.TimelineEvent) error {
	model, err := r.mapper.EventToModel(event)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to append timeline event: %w", err)
	}
	event.SetID(model.ID)
	return nil
}

func (r *TimelineRepository) ListByTicket(ctx context.Context, tenantID, ticketID uint, includeInternal bool) ([]*ticket.TimelineEvent, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForTenant(tenantID)).
		Where("ticket_id = ?", ticketID)
	if !includeInternal {
		query = query.Where("is_internal = ?", false)
	}

	var list []models.TimelineEventModel
	if err := query.Order("created_at DESC, id DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list timeline events: %w", err)
	}

	events := make([]*ticket.TimelineEvent, 0, len(list))
	for i := range list {
		e, err := r.mapper.EventToDomain(&list[i])
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, nil
}

func (r *TimelineRepository) DeleteByTicket(ctx context.Context, tenantID, ticketID uint) error {
	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForTenant(tenantID)).
		Where("ticket_id = ?", ticketID).
		Delete(&models.TimelineEventModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete timeline events: %w", err)
	}
	return nil
}
