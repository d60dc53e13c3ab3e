package usecases

import (
	"context"

	"github.com/niggl1/appsindico/internal/application/statuscatalog/dto"
	"github.com/niggl1/appsindico/internal/domain/statuscatalog"
	"github.com/niggl1/appsindico/internal/shared/logger"
)

type ListStatusesQuery struct {
	TenantID        uint
	IncludeInactive bool
}

type ListStatusesUseCase struct {
	catalog *CatalogProvider
	logger  logger.Interface
}

func NewListStatusesUseCase(catalog *CatalogProvider, logger logger.Interface) *ListStatusesUseCase {
	return &ListStatusesUseCase{
		catalog: catalog,
		logger:  logger,
	}
}

// Execute never fails on persistence errors: the caller gets an empty list.
func (uc *ListStatusesUseCase) Execute(ctx context.Context, query ListStatusesQuery) ([]*dto.StatusDTO, error) {
	uc.logger.Infow("executing list statuses use case", "tenant_id", query.TenantID, "include_inactive", query.IncludeInactive)

	if query.TenantID == 0 {
		return nil, toAppError(statuscatalog.ErrInvalidTenantID)
	}

	catalog, err := uc.catalog.Load(ctx, query.TenantID)
	if err != nil {
		uc.logger.Errorw("failed to load status catalog, returning empty list", "tenant_id", query.TenantID, "error", err)
		return []*dto.StatusDTO{}, nil
	}

	if query.IncludeInactive {
		all := make([]*statuscatalog.StatusDefinition, len(catalog))
		copy(all, catalog)
		return dto.ToStatusDTOs(all), nil
	}
	return dto.ToStatusDTOs(catalog.Active()), nil
}
