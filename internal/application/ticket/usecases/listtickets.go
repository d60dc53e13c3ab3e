package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/niggl1/appsindico/internal/application/ticket/dto"
	"github.com/niggl1/appsindico/internal/domain/ticket"
	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
	"github.com/niggl1/appsindico/internal/shared/constants"
	apperrors "github.com/niggl1/appsindico/internal/shared/errors"
	"github.com/niggl1/appsindico/internal/shared/logger"
)

var allowedSortFields = map[string]bool{
	"created_at":   true,
	"updated_at":   true,
	"scheduled_at": true,
	"priority":     true,
	"protocol":     true,
	"title":        true,
}

type ListTicketsQuery struct {
	TenantID      uint
	Kind          string
	StatusID      *uint
	Priority      string
	AssigneeID    *uint
	Search        string
	ScheduledFrom *time.Time
	ScheduledTo   *time.Time
	Page          int
	PageSize      int
	SortBy        string
	SortOrder     string
}

type ListTicketsResult struct {
	Tickets  []*dto.TicketDTO
	Total    int64
	Page     int
	PageSize int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	catalog    CatalogLoader
	presenter  *Presenter
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	catalog CatalogLoader,
	presenter *Presenter,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		catalog:    catalog,
		presenter:  presenter,
		logger:     logger,
	}
}

// Execute degrades to an empty page when the store cannot be read.
func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	uc.logger.Infow("executing list tickets use case", "tenant_id", query.TenantID, "kind", query.Kind, "page", query.Page)

	filter, err := buildFilter(query)
	if err != nil {
		return nil, err
	}

	result := &ListTicketsResult{
		Tickets:  []*dto.TicketDTO{},
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets, returning empty page", "tenant_id", query.TenantID, "error", err)
		return result, nil
	}

	catalog, err := uc.catalog.Load(ctx, query.TenantID)
	if err != nil {
		uc.logger.Warnw("failed to load status catalog for ticket list", "tenant_id", query.TenantID, "error", err)
	}

	for _, t := range tickets {
		result.Tickets = append(result.Tickets, uc.presenter.Ticket(t, catalog))
	}
	result.Total = total
	return result, nil
}

// buildFilter validates the query and applies pagination and sort defaults.
func buildFilter(query ListTicketsQuery) (ticket.Filter, error) {
	kind, err := parseKind(query.Kind)
	if err != nil {
		return ticket.Filter{}, err
	}

	filter := ticket.Filter{
		TenantID:      query.TenantID,
		Kind:          kind,
		StatusID:      query.StatusID,
		AssigneeID:    query.AssigneeID,
		Search:        strings.TrimSpace(query.Search),
		ScheduledFrom: query.ScheduledFrom,
		ScheduledTo:   query.ScheduledTo,
		Page:          query.Page,
		PageSize:      query.PageSize,
		SortBy:        query.SortBy,
		SortOrder:     strings.ToLower(query.SortOrder),
	}

	if query.Priority != "" {
		p, err := vo.NewPriority(query.Priority)
		if err != nil {
			return ticket.Filter{}, apperrors.NewValidationError(err.Error())
		}
		filter.Priority = &p
	}
	if filter.ScheduledFrom != nil && filter.ScheduledTo != nil && filter.ScheduledTo.Before(*filter.ScheduledFrom) {
		return ticket.Filter{}, apperrors.NewValidationError("scheduled_to must not be before scheduled_from")
	}

	if filter.Page < 1 {
		filter.Page = constants.DefaultPage
	}
	if filter.PageSize < 1 {
		filter.PageSize = constants.DefaultPageSize
	}
	if filter.PageSize > constants.MaxPageSize {
		filter.PageSize = constants.MaxPageSize
	}
	if !allowedSortFields[filter.SortBy] {
		filter.SortBy = "created_at"
	}
	if filter.SortOrder != "asc" {
		filter.SortOrder = "desc"
	}
	return filter, nil
}
