package models

import (
	"time"
)

// ShareLinkModel stores ExpiresAt next to ExpiryHours so the sweep can
// select expired rows without date arithmetic in SQL.
type ShareLinkModel struct {
	ID             uint       `gorm:"primaryKey"`
	TenantID       uint       `gorm:"not null;index:idx_share_links_item,priority:1"`
	ItemType       string     `gorm:"size:20;not null;index:idx_share_links_item,priority:2"`
	ItemID         uint       `gorm:"not null;index:idx_share_links_item,priority:3"`
	Token          string     `gorm:"size:64;not null;uniqueIndex"`
	Editable       bool       `gorm:"not null;default:false"`
	ExpiryHours    int        `gorm:"not null;default:0"`
	ExpiresAt      *time.Time `gorm:"index"`
	AccessCount    int64      `gorm:"not null;default:0"`
	CreatedByID    *uint
	CreatedByName  string `gorm:"size:100"`
	IsActive       bool   `gorm:"not null;default:true;index"`
	LastAccessedAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (ShareLinkModel) TableName() string {
	return "share_links"
}
