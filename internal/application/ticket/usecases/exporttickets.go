package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/niggl1/appsindico/internal/application/ticket/dto"
	"github.com/niggl1/appsindico/internal/domain/ticket"
	"github.com/niggl1/appsindico/internal/shared/biztime"
	"github.com/niggl1/appsindico/internal/shared/logger"
)

// maxExportRows caps a single workbook.
const maxExportRows = 5000

type ExportTicketsQuery struct {
	ListTicketsQuery
}

type ExportTicketsResult struct {
	FileName string
	Content  []byte
	Rows     int
}

type ExportTicketsUseCase struct {
	ticketRepo ticket.Repository
	catalog    CatalogLoader
	exporter   Exporter
	logger     logger.Interface
}

func NewExportTicketsUseCase(
	ticketRepo ticket.Repository,
	catalog CatalogLoader,
	exporter Exporter,
	logger logger.Interface,
) *ExportTicketsUseCase {
	return &ExportTicketsUseCase{
		ticketRepo: ticketRepo,
		catalog:    catalog,
		exporter:   exporter,
		logger:     logger,
	}
}

func (uc *ExportTicketsUseCase) Execute(ctx context.Context, query ExportTicketsQuery) (*ExportTicketsResult, error) {
	uc.logger.Infow("executing export tickets use case", "tenant_id", query.TenantID, "kind", query.Kind)

	filter, err := buildFilter(query.ListTicketsQuery)
	if err != nil {
		return nil, err
	}
	filter.Page = 1
	filter.PageSize = maxExportRows

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets for export", "tenant_id", query.TenantID, "error", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	if total > maxExportRows {
		uc.logger.Warnw("export truncated", "tenant_id", query.TenantID, "total", total, "limit", maxExportRows)
	}

	catalog, err := uc.catalog.Load(ctx, query.TenantID)
	if err != nil {
		uc.logger.Warnw("failed to load status catalog for export", "tenant_id", query.TenantID, "error", err)
	}

	rows := make([]dto.ExportRow, 0, len(tickets))
	for _, t := range tickets {
		rows = append(rows, dto.ExportRow{
			Protocol:     t.Protocol(),
			Title:        t.Title(),
			Status:       statusName(catalog, t.StatusID()),
			Priority:     t.Priority().String(),
			AssigneeName: t.AssigneeName(),
			ScheduledAt:  t.ScheduledAt(),
			CreatedAt:    t.CreatedAt(),
		})
	}

	content, err := uc.exporter.Export(rows)
	if err != nil {
		uc.logger.Errorw("failed to render export", "tenant_id", query.TenantID, "error", err)
		return nil, fmt.Errorf("failed to render export: %w", err)
	}

	name := fmt.Sprintf("%s-%s.xlsx", filter.Kind, biztime.FormatInBizTimezone(time.Now(), "20060102-1504"))
	uc.logger.Infow("tickets exported successfully", "tenant_id", query.TenantID, "rows", len(rows))
	return &ExportTicketsResult{FileName: name, Content: content, Rows: len(rows)}, nil
}
