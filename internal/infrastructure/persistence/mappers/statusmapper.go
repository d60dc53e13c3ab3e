package mappers

import (
	"github.com/niggl1/appsindico/internal/domain/statuscatalog"
	"github.com/niggl1/appsindico/internal/infrastructure/persistence/models"
)

// StatusMapper handles the conversion between status definitions and persistence models.
type StatusMapper interface {
	ToModel(s *statuscatalog.StatusDefinition) *models.StatusModel
	ToDomain(model *models.StatusModel) *statuscatalog.StatusDefinition
	ToDomainList(list []models.StatusModel) []*statuscatalog.StatusDefinition
}

type StatusMapperImpl struct{}

func NewStatusMapper() StatusMapper {
	return &StatusMapperImpl{}
}

func (m *StatusMapperImpl) ToModel(s *statuscatalog.StatusDefinition) *models.StatusModel {
	return &models.StatusModel{
		ID:           s.ID(),
		TenantID:     s.TenantID(),
		Name:         s.Name(),
		DisplayOrder: s.DisplayOrder(),
		ActiveSlot:   ActiveSlot(s),
		Color:        s.Color(),
		Icon:         s.Icon(),
		IsTerminal:   s.IsTerminal(),
		IsActive:     s.IsActive(),
		Version:      s.Version(),
		CreatedAt:    s.CreatedAt(),
		UpdatedAt:    s.UpdatedAt(),
	}
}

func (m *StatusMapperImpl) ToDomain(model *models.StatusModel) *statuscatalog.StatusDefinition {
	return statuscatalog.ReconstructStatusDefinition(
		model.ID,
		model.TenantID,
		model.Name,
		model.DisplayOrder,
		model.Color,
		model.Icon,
		model.IsTerminal,
		model.IsActive,
		model.Version,
		model.CreatedAt.UTC(),
		model.UpdatedAt.UTC(),
	)
}

func (m *StatusMapperImpl) ToDomainList(list []models.StatusModel) []*statuscatalog.StatusDefinition {
	out := make([]*statuscatalog.StatusDefinition, 0, len(list))
	for i := range list {
		out = append(out, m.ToDomain(&list[i]))
	}
	return out
}

// ActiveSlot is the value of the active-order unique column for s.
func ActiveSlot(s *statuscatalog.StatusDefinition) *int {
	if !s.IsActive() {
		return nil
	}
	order := s.DisplayOrder()
	return &order
}
