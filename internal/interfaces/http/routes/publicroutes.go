package routes

import (
	"github.com/gin-gonic/gin"

	commenthandlers "github.com/niggl1/appsindico/internal/interfaces/http/handlers/comment"
	sharelinkhandlers "github.com/niggl1/appsindico/internal/interfaces/http/handlers/sharelink"
	"github.com/niggl1/appsindico/internal/interfaces/http/middleware"
)

// PublicRouteConfig wires the unauthenticated surface reached through share
// and chat tokens.
type PublicRouteConfig struct {
	ShareHandler        *sharelinkhandlers.PublicShareHandler
	ShareCommentHandler *commenthandlers.PublicCommentHandler
	ChatCommentHandler  *commenthandlers.PublicCommentHandler
	RateLimitMiddleware *middleware.RateLimiter
}

func SetupPublicRoutes(engine *gin.Engine, config *PublicRouteConfig) {
	public := engine.Group("/public")
	if config.RateLimitMiddleware != nil {
		public.Use(config.RateLimitMiddleware.Limit())
	}

	share := public.Group("/share/:token")
	{
		share.GET("", config.ShareHandler.ResolveShareLink)
		share.PATCH("/ticket", config.ShareHandler.UpdateTicket)
		share.POST("/attachments", config.ShareHandler.AddAttachment)
		share.GET("/comments", config.ShareCommentHandler.ListComments)
		share.POST("/comments", config.ShareCommentHandler.CreateComment)
	}

	chat := public.Group("/chat/:token")
	{
		chat.GET("/comments", config.ChatCommentHandler.ListComments)
		chat.POST("/comments", config.ChatCommentHandler.CreateComment)
	}
}
