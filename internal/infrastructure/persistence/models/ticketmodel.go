package models

import (
	"time"

	"gorm.io/datatypes"
)

type TicketModel struct {
	ID            uint   `gorm:"primaryKey"`
	TenantID      uint   `gorm:"not null;uniqueIndex:uk_tickets_tenant_protocol,priority:1;index:idx_tickets_tenant_kind,priority:1"`
	Kind          string `gorm:"size:20;not null;index:idx_tickets_tenant_kind,priority:2"`
	Protocol      string `gorm:"size:20;not null;uniqueIndex:uk_tickets_tenant_protocol,priority:2"`
	Title         string `gorm:"size:200;not null"`
	Description   string `gorm:"type:text"`
	StatusID      uint   `gorm:"not null;index"`
	Priority      string `gorm:"size:10;not null;default:medium"`
	AssigneeID    *uint  `gorm:"index"`
	AssigneeName  string `gorm:"size:100"`
	Latitude      *float64
	Longitude     *float64
	Address       string     `gorm:"size:500"`
	ScheduledAt   *time.Time `gorm:"index"`
	PerformedAt   *time.Time
	ClosedAt      *time.Time
	ShareToken    string         `gorm:"size:64;not null;uniqueIndex"`
	ChatToken     string         `gorm:"size:64;not null;uniqueIndex"`
	Details       datatypes.JSON `gorm:"type:json"`
	CreatedByID   *uint
	CreatedByName string    `gorm:"size:100"`
	Version       int       `gorm:"not null;default:1"`
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

// TimelineEventModel is append-only.
type TimelineEventModel struct {
	ID           uint   `gorm:"primaryKey"`
	TenantID     uint   `gorm:"not null;index:idx_timeline_tenant_ticket,priority:1"`
	TicketID     uint   `gorm:"not null;index:idx_timeline_tenant_ticket,priority:2"`
	Kind         string `gorm:"size:30;not null"`
	Description  string `gorm:"size:1000"`
	ActorID      *uint
	ActorName    string `gorm:"size:120;not null"`
	PrevStatusID *uint
	NewStatusID  *uint
	Metadata     datatypes.JSON `gorm:"type:json"`
	IsInternal   bool           `gorm:"not null;default:false"`
	CreatedAt    time.Time      `gorm:"not null;index"`
}

func (TimelineEventModel) TableName() string {
	return "ticket_timeline_events"
}

type AttachmentModel struct {
	ID        uint   `gorm:"primaryKey"`
	TenantID  uint   `gorm:"not null;index:idx_attachments_tenant_ticket,priority:1"`
	TicketID  uint   `gorm:"not null;index:idx_attachments_tenant_ticket,priority:2"`
	URL       string `gorm:"size:2048;not null"`
	Caption   string `gorm:"size:300"`
	Position  int    `gorm:"not null"`
	CreatedAt time.Time
}

func (AttachmentModel) TableName() string {
	return "ticket_attachments"
}
