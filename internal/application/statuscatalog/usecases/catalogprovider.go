package usecases

import (
	"context"
	"fmt"

	"github.com/niggl1/appsindico/internal/domain/statuscatalog"
	"github.com/niggl1/appsindico/internal/shared/db"
	apperrors "github.com/niggl1/appsindico/internal/shared/errors"
	"github.com/niggl1/appsindico/internal/shared/logger"
)

// CatalogProvider loads a tenant's full catalog, seeding the defaults the
// first time a tenant with no statuses at all is seen.
type CatalogProvider struct {
	repo     statuscatalog.Repository
	defaults statuscatalog.DefaultsProvider
	txMgr    db.Transactor
	logger   logger.Interface
}

func NewCatalogProvider(
	repo statuscatalog.Repository,
	defaults statuscatalog.DefaultsProvider,
	txMgr db.Transactor,
	logger logger.Interface,
) *CatalogProvider {
	return &CatalogProvider{
		repo:     repo,
		defaults: defaults,
		txMgr:    txMgr,
		logger:   logger,
	}
}

// Load returns active and inactive statuses ordered by display order.
func (p *CatalogProvider) Load(ctx context.Context, tenantID uint) (statuscatalog.Catalog, error) {
	if tenantID == 0 {
		return nil, statuscatalog.ErrInvalidTenantID
	}

	statuses, err := p.repo.ListByTenant(ctx, tenantID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}
	if len(statuses) > 0 {
		return statuscatalog.Catalog(statuses), nil
	}

	if err := p.seed(ctx, tenantID); err != nil {
		return nil, err
	}

	statuses, err = p.repo.ListByTenant(ctx, tenantID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list statuses after seeding: %w", err)
	}
	return statuscatalog.Catalog(statuses), nil
}

func (p *CatalogProvider) seed(ctx context.Context, tenantID uint) error {
	templates, err := p.defaults.Defaults()
	if err != nil {
		return fmt.Errorf("failed to load default statuses: %w", err)
	}

	err = p.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		count, err := p.repo.CountByTenant(txCtx, tenantID)
		if err != nil {
			return fmt.Errorf("failed to count statuses: %w", err)
		}
		if count > 0 {
			return nil
		}

		statuses, err := statuscatalog.BuildDefaults(tenantID, templates)
		if err != nil {
			return err
		}
		return p.repo.CreateBatch(txCtx, statuses)
	})
	log := p.logger.WithTenant(tenantID)
	if err != nil {
		// A concurrent request seeded the same tenant first.
		if apperrors.IsDuplicateError(err) {
			log.Debugw("default statuses already seeded concurrently")
			return nil
		}
		log.Errorw("failed to seed default statuses", "error", err)
		return fmt.Errorf("failed to seed default statuses: %w", err)
	}

	log.Infow("seeded default status catalog", "count", len(templates))
	return nil
}
