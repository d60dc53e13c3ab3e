package http

import (
	"github.com/niggl1/appsindico/internal/domain/comment"
	"github.com/niggl1/appsindico/internal/domain/sharelink"
	"github.com/niggl1/appsindico/internal/domain/statuscatalog"
	"github.com/niggl1/appsindico/internal/domain/ticket"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	statusRepo     statuscatalog.Repository
	ticketRepo     ticket.Repository
	timelineRepo   ticket.TimelineRepository
	attachmentRepo ticket.AttachmentRepository
	commentRepo    comment.Repository
	shareLinkRepo  sharelink.Repository
}
