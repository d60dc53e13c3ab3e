package models

import (
	"time"
)

// StatusModel is one entry of a tenant's status catalog.
// ActiveSlot mirrors DisplayOrder while the status is active and is NULL
// otherwise, so the unique index only covers active statuses.
type StatusModel struct {
	ID           uint   `gorm:"primaryKey"`
	TenantID     uint   `gorm:"not null;index:idx_statuses_tenant;uniqueIndex:uk_statuses_tenant_slot,priority:1"`
	Name         string `gorm:"size:50;not null"`
	DisplayOrder int    `gorm:"not null"`
	ActiveSlot   *int   `gorm:"uniqueIndex:uk_statuses_tenant_slot,priority:2"`
	Color        string `gorm:"size:7"`
	Icon         string `gorm:"size:50"`
	IsTerminal   bool   `gorm:"not null;default:false"`
	IsActive     bool   `gorm:"not null;default:true"`
	Version      int    `gorm:"not null;default:1"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (StatusModel) TableName() string {
	return "ticket_statuses"
}
