package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/niggl1/appsindico/internal/domain/ticket"
	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
	"github.com/niggl1/appsindico/internal/infrastructure/persistence/mappers"
	"github.com/niggl1/appsindico/internal/infrastructure/persistence/models"
	"github.com/niggl1/appsindico/internal/shared/db"
	"github.com/niggl1/appsindico/internal/shared/logger"
)

// ticketOrderBy maps the allowed sort keys to ORDER BY expressions.
// Priority sorts by rank, not alphabetically.
var ticketOrderBy = map[string]string{
	"created_at":   "created_at",
	"updated_at":   "updated_at",
	"scheduled_at": "scheduled_at",
	"protocol":     "protocol",
	"title":        "title",
	"priority":     "CASE priority WHEN 'low' THEN 1 WHEN 'medium' THEN 2 WHEN 'high' THEN 3 WHEN 'urgent' THEN 4 ELSE 0 END",
}

// TicketRepository implements ticket.Repository on gorm.
type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	logger logger.Interface
}

func NewTicketRepository(gdb *gorm.DB, logger logger.Interface) *TicketRepository {
	return &TicketRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
		logger: logger,
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return err
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}
	t.SetID(model.ID)
	return nil
}

// Update writes every mutable column guarded by the previous version.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model, err := r.mapper.ToModel(t)
	if err != nil {
		return err
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.TicketModel{}).
		Scopes(db.ForTenant(t.TenantID())).
		Where("id = ? AND kind = ? AND version = ?", t.ID(), t.Kind().String(), t.Version()-1).
		Updates(map[string]any{
			"title":         model.Title,
			"description":   model.Description,
			"status_id":     model.StatusID,
			"priority":      model.Priority,
			"assignee_id":   model.AssigneeID,
			"assignee_name": model.AssigneeName,
			"latitude":      model.Latitude,
			"longitude":     model.Longitude,
			"address":       model.Address,
			"scheduled_at":  model.ScheduledAt,
			"performed_at":  model.PerformedAt,
			"closed_at":     model.ClosedAt,
			"details":       model.Details,
			"version":       model.Version,
			"updated_at":    model.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	existing, err := r.GetByID(ctx, t.TenantID(), t.Kind(), t.ID())
	if err != nil {
		return err
	}
	if existing == nil {
		return ticket.ErrTicketNotFound
	}
	return ticket.ErrVersionConflict
}

func (r *TicketRepository) Delete(ctx context.Context, tenantID uint, kind vo.Kind, id uint) error {
	result := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForTenant(tenantID)).
		Where("kind = ?", kind.String()).
		Delete(&models.TicketModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ticket.ErrTicketNotFound
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, tenantID uint, kind vo.Kind, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.ForTenant(tenantID)).
		Where("kind = ?", kind.String()).
		First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) GetByShareToken(ctx context.Context, token string) (*ticket.Ticket, error) {
	return r.getByToken(ctx, "share_token", token)
}

func (r *TicketRepository) GetByChatToken(ctx context.Context, token string) (*ticket.Ticket, error) {
	return r.getByToken(ctx, "chat_token", token)
}

func (r *TicketRepository) getByToken(ctx context.Context, column, token string) (*ticket.Ticket, error) {
	var model models.TicketModel
	err := db.GetTxFromContext(ctx, r.db).Where(column+" = ?", token).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ticket by %s: %w", column, err)
	}
	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) ExistsByProtocol(ctx context.Context, tenantID uint, protocol string) (bool, error) {
	var count int64
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketModel{}).
		Scopes(db.ForTenant(tenantID)).
		Where("protocol = ?", protocol).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check protocol: %w", err)
	}
	return count > 0, nil
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketModel{}).
		Scopes(db.ForTenant(filter.TenantID)).
		Where("kind = ?", filter.Kind.String())

	if filter.StatusID != nil {
		query = query.Where("status_id = ?", *filter.StatusID)
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.AssigneeID != nil {
		query = query.Where("assignee_id = ?", *filter.AssigneeID)
	}
	if filter.Search != "" {
		pattern := "%" + escapeLike(strings.ToLower(filter.Search)) + "%"
		query = query.Where("(LOWER(title) LIKE ? ESCAPE '!' OR protocol LIKE ? ESCAPE '!')", pattern, pattern)
	}
	if filter.ScheduledFrom != nil {
		query = query.Where("scheduled_at >= ?", *filter.ScheduledFrom)
	}
	if filter.ScheduledTo != nil {
		query = query.Where("scheduled_at <= ?", *filter.ScheduledTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	orderBy, ok := ticketOrderBy[filter.SortBy]
	if !ok {
		orderBy = ticketOrderBy["created_at"]
	}
	direction := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		direction = "ASC"
	}
	query = query.Order(orderBy + " " + direction).Order("id " + direction)

	var list []models.TicketModel
	if err := query.Scopes(db.Paginate(filter.Page, filter.PageSize)).Find(&list).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(list))
	for i := range list {
		t, err := r.mapper.ToDomain(&list[i])
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, t)
	}
	return tickets, total, nil
}

func (r *TicketRepository) CountByStatus(ctx context.Context, tenantID uint, kind vo.Kind) (map[uint]int64, error) {
	var rows []struct {
		StatusID uint
		Total    int64
	}
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketModel{}).
		Scopes(db.ForTenant(tenantID)).
		Where("kind = ?", kind.String()).
		Select("status_id, COUNT(*) AS total").
		Group("status_id").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by status: %w", err)
	}

	out := make(map[uint]int64, len(rows))
	for _, row := range rows {
		out[row.StatusID] = row.Total
	}
	return out, nil
}

func (r *TicketRepository) CountByPriority(ctx context.Context, tenantID uint, kind vo.Kind) (map[vo.Priority]int64, error) {
	var rows []struct {
		Priority string
		Total    int64
	}
	if err := db.GetTxFromContext(ctx, r.db).
		Model(&models.TicketModel{}).
		Scopes(db.ForTenant(tenantID)).
		Where("kind = ?", kind.String()).
		Select("priority, COUNT(*) AS total").
		Group("priority").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by priority: %w", err)
	}

	out := make(map[vo.Priority]int64, len(rows))
	for _, row := range rows {
		out[vo.Priority(row.Priority)] = row.Total
	}
	return out, nil
}

// escapeLike keeps user input from acting as LIKE wildcards.
func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}
