package usecases

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/niggl1/appsindico/internal/application/ticket/dto"
	"github.com/niggl1/appsindico/internal/domain/statuscatalog"
	"github.com/niggl1/appsindico/internal/domain/ticket"
	vo "github.com/niggl1/appsindico/internal/domain/ticket/valueobjects"
	"github.com/niggl1/appsindico/internal/shared/logger"
)

type GetTicketStatsQuery struct {
	TenantID uint
	Kind     string
}

type GetTicketStatsUseCase struct {
	ticketRepo ticket.Repository
	catalog    CatalogLoader
	logger     logger.Interface
}

func NewGetTicketStatsUseCase(ticketRepo ticket.Repository, catalog CatalogLoader, logger logger.Interface) *GetTicketStatsUseCase {
	return &GetTicketStatsUseCase{
		ticketRepo: ticketRepo,
		catalog:    catalog,
		logger:     logger,
	}
}

// Execute aggregates on every call. Persistence failures yield zeroed stats.
func (uc *GetTicketStatsUseCase) Execute(ctx context.Context, query GetTicketStatsQuery) (*dto.TicketStatsDTO, error) {
	uc.logger.Infow("executing get ticket stats use case", "tenant_id", query.TenantID, "kind", query.Kind)

	kind, err := parseKind(query.Kind)
	if err != nil {
		return nil, err
	}

	stats := &dto.TicketStatsDTO{
		ByStatus:   []dto.StatusCountDTO{},
		ByPriority: make(map[string]int64, len(vo.AllPriorities())),
	}
	for _, p := range vo.AllPriorities() {
		stats.ByPriority[p.String()] = 0
	}

	var (
		catalog    statuscatalog.Catalog
		byStatus   map[uint]int64
		byPriority map[vo.Priority]int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		catalog, err = uc.catalog.Load(gctx, query.TenantID)
		return err
	})
	g.Go(func() error {
		var err error
		byStatus, err = uc.ticketRepo.CountByStatus(gctx, query.TenantID, kind)
		return err
	})
	g.Go(func() error {
		var err error
		byPriority, err = uc.ticketRepo.CountByPriority(gctx, query.TenantID, kind)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.logger.Errorw("failed to aggregate ticket stats, returning zeroed stats", "tenant_id", query.TenantID, "error", err)
		return stats, nil
	}

	// Active statuses are listed even when empty; inactive ones only if used.
	for _, s := range catalog {
		count := byStatus[s.ID()]
		if !s.IsActive() && count == 0 {
			continue
		}
		stats.ByStatus = append(stats.ByStatus, dto.StatusCountDTO{
			StatusID:   s.ID(),
			Name:       s.Name(),
			Color:      s.Color(),
			IsTerminal: s.IsTerminal(),
			Count:      count,
		})
		stats.Total += count
		if s.IsTerminal() {
			stats.Closed += count
		} else {
			stats.Open += count
		}
	}
	for p, count := range byPriority {
		stats.ByPriority[p.String()] = count
	}

	return stats, nil
}
