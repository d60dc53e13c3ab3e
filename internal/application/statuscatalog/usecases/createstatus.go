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

type CreateStatusCommand struct {
	TenantID     uint
	Name         string
	Color        string
	Icon         string
	IsTerminal   bool
	DisplayOrder *int
}

type CreateStatusUseCase struct {
	repo    statuscatalog.Repository
	catalog *CatalogProvider
	txMgr   db.Transactor
	logger  logger.Interface
}

func NewCreateStatusUseCase(
	repo statuscatalog.Repository,
	catalog *CatalogProvider,
	txMgr db.Transactor,
	logger logger.Interface,
) *CreateStatusUseCase {
	return &CreateStatusUseCase{
		repo:    repo,
		catalog: catalog,
		txMgr:   txMgr,
		logger:  logger,
	}
}

func (uc *CreateStatusUseCase) Execute(ctx context.Context, cmd CreateStatusCommand) (*dto.StatusDTO, error) {
	uc.logger.Infow("executing create status use case", "tenant_id", cmd.TenantID, "name", cmd.Name)

	catalog, err := uc.catalog.Load(ctx, cmd.TenantID)
	if err != nil {
		uc.logger.Errorw("failed to load status catalog", "tenant_id", cmd.TenantID, "error", err)
		return nil, toAppError(err)
	}

	order := catalog.NextOrder()
	if cmd.DisplayOrder != nil {
		order = *cmd.DisplayOrder
	}
	if err := catalog.CheckOrder(order, 0); err != nil {
		return nil, toAppError(err)
	}
	if err := catalog.CheckName(cmd.Name, 0); err != nil {
		return nil, toAppError(err)
	}

	status, err := statuscatalog.NewStatusDefinition(cmd.TenantID, cmd.Name, order, cmd.Color, cmd.Icon, cmd.IsTerminal)
	if err != nil {
		return nil, toAppError(err)
	}

	if err := uc.repo.Create(ctx, status); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, toAppError(statuscatalog.ErrOrderTaken)
		}
		uc.logger.Errorw("failed to save status", "tenant_id", cmd.TenantID, "error", err)
		return nil, fmt.Errorf("failed to save status: %w", err)
	}

	uc.logger.Infow("status created successfully", "tenant_id", cmd.TenantID, "status_id", status.ID(), "order", order)
	return dto.ToStatusDTO(status), nil
}
