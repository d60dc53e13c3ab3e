package usecases

import (
	"context"
	"fmt"

	"github.com/niggl1/appsindico/internal/application/statuscatalog/dto"
	"github.com/niggl1/appsindico/internal/domain/statuscatalog"
	"github.com/niggl1/appsindico/internal/shared/db"
	apperrors "github.com/niggl1/appsindico/internal/shared/errors"
	"github.com/niggl1/appsindico/internal/shared/logger"
)

type ReorderStatusesCommand struct {
	TenantID uint
	// StatusIDs lists every active status; position i gets display order i+1.
	StatusIDs []uint
}

type ReorderStatusesUseCase struct {
	repo    statuscatalog.Repository
	catalog *CatalogProvider
	txMgr   db.Transactor
	logger  logger.Interface
}

func NewReorderStatusesUseCase(
	repo statuscatalog.Repository,
	catalog *CatalogProvider,
	txMgr db.Transactor,
	logger logger.Interface,
) *ReorderStatusesUseCase {
	return &ReorderStatusesUseCase{
		repo:    repo,
		catalog: catalog,
		txMgr:   txMgr,
		logger:  logger,
	}
}

func (uc *ReorderStatusesUseCase) Execute(ctx context.Context, cmd ReorderStatusesCommand) ([]*dto.StatusDTO, error) {
	if len(cmd.StatusIDs) == 0 {
		return nil, apperrors.NewValidationError("ids is required")
	}

	uc.logger.Infow("executing reorder statuses use case", "tenant_id", cmd.TenantID, "count", len(cmd.StatusIDs))

	var active []*statuscatalog.StatusDefinition
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		catalog, err := uc.catalog.Load(txCtx, cmd.TenantID)
		if err != nil {
			return err
		}

		changed, err := catalog.Reorder(cmd.StatusIDs)
		if err != nil {
			return err
		}
		if len(changed) > 0 {
			if err := uc.repo.UpdateOrders(txCtx, changed); err != nil {
				return fmt.Errorf("failed to update display orders: %w", err)
			}
		}

		active = catalog.Active()
		return nil
	})
	if err != nil {
		mapped := toAppError(err)
		if !apperrors.IsAppError(mapped) {
			uc.logger.Errorw("failed to reorder statuses", "tenant_id", cmd.TenantID, "error", err)
		}
		return nil, mapped
	}

	uc.logger.Infow("statuses reordered successfully", "tenant_id", cmd.TenantID)
	return dto.ToStatusDTOs(active), nil
}
