package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/niggl1/appsindico/internal/infrastructure/permission"
	tickethandlers "github.com/niggl1/appsindico/internal/interfaces/http/handlers/ticket"
	"github.com/niggl1/appsindico/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler        *tickethandlers.TicketHandler
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupTicketRoutes mounts the same surface for every ticket kind. The kind
// segment is validated by the handlers.
func SetupTicketRoutes(api *gin.RouterGroup, config *TicketRouteConfig) {
	read := config.PermissionMiddleware.RequirePermission(permission.ResourceTicket, permission.ActionRead)
	write := config.PermissionMiddleware.RequirePermission(permission.ResourceTicket, permission.ActionWrite)
	remove := config.PermissionMiddleware.RequirePermission(permission.ResourceTicket, permission.ActionDelete)

	tickets := api.Group("/tickets/:kind")
	{
		// Collection operations
		tickets.GET("", read, config.TicketHandler.ListTickets)
		tickets.POST("", write, config.TicketHandler.CreateTicket)

		// IMPORTANT: static segments must be registered BEFORE /:id
		tickets.GET("/stats", read, config.TicketHandler.GetStats)
		tickets.GET("/export", read, config.TicketHandler.ExportTickets)

		tickets.GET("/:id/timeline", read, config.TicketHandler.GetTimeline)
		tickets.GET("/:id/attachments", read, config.TicketHandler.ListAttachments)
		tickets.POST("/:id/attachments", write, config.TicketHandler.AddAttachment)
		tickets.DELETE("/:id/attachments/:attachment_id", write, config.TicketHandler.RemoveAttachment)

		tickets.GET("/:id", read, config.TicketHandler.GetTicket)
		tickets.PATCH("/:id", write, config.TicketHandler.UpdateTicket)
		tickets.DELETE("/:id", remove, config.TicketHandler.DeleteTicket)
	}
}
