package models

import (
	"time"

	"gorm.io/datatypes"
)

type CommentModel struct {
	ID            uint   `gorm:"primaryKey"`
	TenantID      uint   `gorm:"not null;index:idx_comments_item,priority:1"`
	ItemType      string `gorm:"size:20;not null;index:idx_comments_item,priority:2"`
	ItemID        uint   `gorm:"not null;index:idx_comments_item,priority:3"`
	AuthorID      *uint
	AuthorName    string         `gorm:"size:100;not null"`
	AuthorContact string         `gorm:"size:150"`
	Text          string         `gorm:"type:text;not null"`
	Attachments   datatypes.JSON `gorm:"type:json"`
	IsInternal    bool           `gorm:"not null;default:false"`
	IsRead        bool           `gorm:"not null;default:false"`
	ReadByID      *uint
	ReadAt        *time.Time
	CreatedAt     time.Time `gorm:"index"`
}

func (CommentModel) TableName() string {
	return "item_comments"
}

type CommentResponseModel struct {
	ID         uint `gorm:"primaryKey"`
	TenantID   uint `gorm:"not null"`
	CommentID  uint `gorm:"not null;index"`
	AuthorID   *uint
	AuthorName string `gorm:"size:100;not null"`
	Text       string `gorm:"type:text;not null"`
	CreatedAt  time.Time
}

func (CommentResponseModel) TableName() string {
	return "item_comment_responses"
}
