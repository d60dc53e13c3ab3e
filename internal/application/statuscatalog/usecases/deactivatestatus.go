package usecases

import (
	"context"
	"fmt"

	"github.com/niggl1/appsindico/internal/domain/statuscatalog"
	apperrors "github.com/niggl1/appsindico/internal/shared/errors"
	"github.com/niggl1/appsindico/internal/shared/logger"
)

type DeactivateStatusCommand struct {
	TenantID uint
	StatusID uint
}

type DeactivateStatusUseCase struct {
	repo    statuscatalog.Repository
	catalog *CatalogProvider
	logger  logger.Interface
}

func NewDeactivateStatusUseCase(
	repo statuscatalog.Repository,
	catalog *CatalogProvider,
	logger logger.Interface,
) *DeactivateStatusUseCase {
	return &DeactivateStatusUseCase{
		repo:    repo,
		catalog: catalog,
		logger:  logger,
	}
}

// Execute soft-deletes a status. Tickets already in it keep pointing at it.
func (uc *DeactivateStatusUseCase) Execute(ctx context.Context, cmd DeactivateStatusCommand) error {
	uc.logger.Infow("executing deactivate status use case", "tenant_id", cmd.TenantID, "status_id", cmd.StatusID)

	catalog, err := uc.catalog.Load(ctx, cmd.TenantID)
	if err != nil {
		uc.logger.Errorw("failed to load status catalog", "tenant_id", cmd.TenantID, "error", err)
		return toAppError(err)
	}

	status := catalog.Find(cmd.StatusID)
	if status == nil {
		return toAppError(statuscatalog.ErrStatusNotFound)
	}
	if !status.IsActive() {
		return nil
	}
	if err := catalog.CheckKeepsOpenStatus(status.ID(), status.IsTerminal(), false); err != nil {
		return toAppError(err)
	}

	status.Deactivate()
	if err := uc.repo.Update(ctx, status); err != nil {
		if mapped := toAppError(err); apperrors.IsAppError(mapped) {
			return mapped
		}
		uc.logger.Errorw("failed to deactivate status", "status_id", status.ID(), "error", err)
		return fmt.Errorf("failed to deactivate status: %w", err)
	}

	uc.logger.Infow("status deactivated successfully", "status_id", status.ID())
	return nil
}
