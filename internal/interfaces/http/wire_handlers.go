package http

import (
	"github.com/niggl1/appsindico/internal/interfaces/http/handlers"
	commentHandlers "github.com/niggl1/appsindico/internal/interfaces/http/handlers/comment"
	shareLinkHandlers "github.com/niggl1/appsindico/internal/interfaces/http/handlers/sharelink"
	statusHandlers "github.com/niggl1/appsindico/internal/interfaces/http/handlers/status"
	ticketHandlers "github.com/niggl1/appsindico/internal/interfaces/http/handlers/ticket"
)

// allHandlers holds all HTTP handler instances.
type allHandlers struct {
	healthHandler       *handlers.HealthHandler
	statusHandler       *statusHandlers.StatusHandler
	ticketHandler       *ticketHandlers.TicketHandler
	shareLinkHandler    *shareLinkHandlers.ShareLinkHandler
	publicShareHandler  *shareLinkHandlers.PublicShareHandler
	commentHandler      *commentHandlers.CommentHandler
	shareCommentHandler *commentHandlers.PublicCommentHandler
	chatCommentHandler  *commentHandlers.PublicCommentHandler
}
