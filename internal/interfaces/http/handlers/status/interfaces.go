package status

import (
	"context"

	"github.com/niggl1/appsindico/internal/application/statuscatalog/dto"
	"github.com/niggl1/appsindico/internal/application/statuscatalog/usecases"
)

// Use case interfaces for StatusHandler

type listStatusesUseCase interface {
	Execute(ctx context.Context, query usecases.ListStatusesQuery) ([]*dto.StatusDTO, error)
}

type createStatusUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateStatusCommand) (*dto.StatusDTO, error)
}

type updateStatusUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateStatusCommand) (*dto.StatusDTO, error)
}

type reorderStatusesUseCase interface {
	Execute(ctx context.Context, cmd usecases.ReorderStatusesCommand) ([]*dto.StatusDTO, error)
}

type deactivateStatusUseCase interface {
	Execute(ctx context.Context, cmd usecases.DeactivateStatusCommand) error
}
