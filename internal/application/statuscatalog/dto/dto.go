package dto

import (
	"time"

	"github.com/niggl1/appsindico/internal/domain/statuscatalog"
)

// StatusDTO represents a status definition in API responses
type StatusDTO struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	DisplayOrder int       `json:"display_order"`
	Color        string    `json:"color"`
	Icon         string    `json:"icon,omitempty"`
	IsTerminal   bool      `json:"is_terminal"`
	IsActive     bool      `json:"is_active"`
	Version      int       `json:"version"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateStatusRequest represents a request to add a status to the catalog
type CreateStatusRequest struct {
	Name         string `json:"name" binding:"required,min=1,max=50"`
	Color        string `json:"color" binding:"omitempty,hexcolor"`
	Icon         string `json:"icon,omitempty" binding:"omitempty,max=50"`
	IsTerminal   bool   `json:"is_terminal"`
	DisplayOrder *int   `json:"display_order,omitempty" binding:"omitempty,min=1"`
}

// UpdateStatusRequest represents a partial update of a status
type UpdateStatusRequest struct {
	Name         *string `json:"name,omitempty" binding:"omitempty,min=1,max=50"`
	Color        *string `json:"color,omitempty" binding:"omitempty,hexcolor"`
	Icon         *string `json:"icon,omitempty" binding:"omitempty,max=50"`
	IsTerminal   *bool   `json:"is_terminal,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty" binding:"omitempty,min=1"`
}

// ReorderStatusesRequest lists every active status id in the new display order
type ReorderStatusesRequest struct {
	IDs []uint `json:"ids" binding:"required,min=1,dive,required"`
}

func ToStatusDTO(s *statuscatalog.StatusDefinition) *StatusDTO {
	if s == nil {
		return nil
	}
	return &StatusDTO{
		ID:           s.ID(),
		Name:         s.Name(),
		DisplayOrder: s.DisplayOrder(),
		Color:        s.Color(),
		Icon:         s.Icon(),
		IsTerminal:   s.IsTerminal(),
		IsActive:     s.IsActive(),
		Version:      s.Version(),
		CreatedAt:    s.CreatedAt(),
		UpdatedAt:    s.UpdatedAt(),
	}
}

func ToStatusDTOs(statuses []*statuscatalog.StatusDefinition) []*StatusDTO {
	out := make([]*StatusDTO, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, ToStatusDTO(s))
	}
	return out
}
