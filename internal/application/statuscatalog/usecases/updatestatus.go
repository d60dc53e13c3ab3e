package usecases

import (
	"context"
	"fmt"

	"github.com/niggl1/appsindico/internal/application/statuscatalog/dto"
	"github.com/niggl1/appsindico/internal/domain/statuscatalog"
	apperrors "github.com/niggl1/appsindico/internal/shared/errors"
	"github.com/niggl1/appsindico/internal/shared/logger"
)

// UpdateStatusCommand carries a partial update. Nil fields are left untouched.
type UpdateStatusCommand struct {
	TenantID     uint
	StatusID     uint
	Name         *string
	Color        *string
	Icon         *string
	IsTerminal   *bool
	DisplayOrder *int
}

type UpdateStatusUseCase struct {
	repo    statuscatalog.Repository
	catalog *CatalogProvider
	logger  logger.Interface
}

func NewUpdateStatusUseCase(
	repo statuscatalog.Repository,
	catalog *CatalogProvider,
	logger logger.Interface,
) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		repo:    repo,
		catalog: catalog,
		logger:  logger,
	}
}

func (uc *UpdateStatusUseCase) Execute(ctx context.Context, cmd UpdateStatusCommand) (*dto.StatusDTO, error) {
	uc.logger.Infow("executing update status use case", "tenant_id", cmd.TenantID, "status_id", cmd.StatusID)

	catalog, err := uc.catalog.Load(ctx, cmd.TenantID)
	if err != nil {
		uc.logger.Errorw("failed to load status catalog", "tenant_id", cmd.TenantID, "error", err)
		return nil, toAppError(err)
	}

	status := catalog.Find(cmd.StatusID)
	if status == nil {
		return nil, toAppError(statuscatalog.ErrStatusNotFound)
	}
	if !status.IsActive() {
		return nil, toAppError(statuscatalog.ErrStatusInactive)
	}

	before := status.Version()

	if cmd.Name != nil {
		if err := catalog.CheckName(*cmd.Name, status.ID()); err != nil {
			return nil, toAppError(err)
		}
		if err := status.Rename(*cmd.Name); err != nil {
			return nil, toAppError(err)
		}
	}

	if cmd.Color != nil || cmd.Icon != nil {
		color, icon := status.Color(), status.Icon()
		if cmd.Color != nil {
			color = *cmd.Color
		}
		if cmd.Icon != nil {
			icon = *cmd.Icon
		}
		if err := status.SetPresentation(color, icon); err != nil {
			return nil, toAppError(err)
		}
	}

	if cmd.IsTerminal != nil {
		if err := catalog.CheckKeepsOpenStatus(status.ID(), *cmd.IsTerminal, true); err != nil {
			return nil, toAppError(err)
		}
		status.SetTerminal(*cmd.IsTerminal)
	}

	if cmd.DisplayOrder != nil {
		if err := catalog.CheckOrder(*cmd.DisplayOrder, status.ID()); err != nil {
			return nil, toAppError(err)
		}
		if err := status.MoveTo(*cmd.DisplayOrder); err != nil {
			return nil, toAppError(err)
		}
	}

	if status.Version() == before {
		uc.logger.Debugw("status update is a no-op", "status_id", status.ID())
		return dto.ToStatusDTO(status), nil
	}

	if err := uc.repo.Update(ctx, status); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, toAppError(statuscatalog.ErrOrderTaken)
		}
		if mapped := toAppError(err); apperrors.IsAppError(mapped) {
			return nil, mapped
		}
		uc.logger.Errorw("failed to update status", "status_id", status.ID(), "error", err)
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	uc.logger.Infow("status updated successfully", "status_id", status.ID(), "version", status.Version())
	return dto.ToStatusDTO(status), nil
}
