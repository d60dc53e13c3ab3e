package dto

import (
	"time"

	ticketdto "github.com/niggl1/appsindico/internal/application/ticket/dto"
	"github.com/niggl1/appsindico/internal/domain/sharelink"
)

type ShareLinkDTO struct {
	ID             uint       `json:"id"`
	ItemType       string     `json:"item_type"`
	ItemID         uint       `json:"item_id"`
	Token          string     `json:"token"`
	Editable       bool       `json:"editable"`
	ExpiryHours    int        `json:"expiry_hours"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	AccessCount    int64      `json:"access_count"`
	CreatedByID    *uint      `json:"created_by_id,omitempty"`
	CreatedByName  string     `json:"created_by_name,omitempty"`
	IsActive       bool       `json:"is_active"`
	LastAccessedAt *time.Time `json:"last_accessed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// SnapshotDTO is what an anonymous visitor sees through a share link
type SnapshotDTO struct {
	Ticket      *ticketdto.TicketDTO          `json:"ticket"`
	Attachments []*ticketdto.AttachmentDTO    `json:"attachments"`
	Timeline    []*ticketdto.TimelineEventDTO `json:"timeline"`
	Editable    bool                          `json:"editable"`
	ExpiresAt   *time.Time                    `json:"expires_at,omitempty"`
}

// CreateShareLinkRequest represents a request to share a ticket
type CreateShareLinkRequest struct {
	ItemType    string `json:"item_type" binding:"required,oneof=inspection maintenance incident checklist service_order"`
	ItemID      uint   `json:"item_id" binding:"required,min=1"`
	Editable    bool   `json:"editable"`
	ExpiryHours *int   `json:"expiry_hours,omitempty" binding:"omitempty,min=0"`
}

type CreateShareLinkResult struct {
	ID        uint       `json:"id"`
	Token     string     `json:"token"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

func ToShareLinkDTO(l *sharelink.ShareLink) *ShareLinkDTO {
	if l == nil {
		return nil
	}
	return &ShareLinkDTO{
		ID:             l.ID(),
		ItemType:       l.ItemType().String(),
		ItemID:         l.ItemID(),
		Token:          l.Token(),
		Editable:       l.Editable(),
		ExpiryHours:    l.ExpiryHours(),
		ExpiresAt:      l.ExpiresAt(),
		AccessCount:    l.AccessCount(),
		CreatedByID:    l.CreatedByID(),
		CreatedByName:  l.CreatedByName(),
		IsActive:       l.IsActive(),
		LastAccessedAt: l.LastAccessedAt(),
		CreatedAt:      l.CreatedAt(),
	}
}

func ToShareLinkDTOs(links []*sharelink.ShareLink) []*ShareLinkDTO {
	out := make([]*ShareLinkDTO, 0, len(links))
	for _, l := range links {
		out = append(out, ToShareLinkDTO(l))
	}
	return out
}
