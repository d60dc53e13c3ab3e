package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/niggl1/appsindico/internal/infrastructure/permission"
	commenthandlers "github.com/niggl1/appsindico/internal/interfaces/http/handlers/comment"
	"github.com/niggl1/appsindico/internal/interfaces/http/middleware"
)

type CommentRouteConfig struct {
	CommentHandler       *commenthandlers.CommentHandler
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupCommentRoutes(api *gin.RouterGroup, config *CommentRouteConfig) {
	read := config.PermissionMiddleware.RequirePermission(permission.ResourceComment, permission.ActionRead)
	write := config.PermissionMiddleware.RequirePermission(permission.ResourceComment, permission.ActionWrite)
	remove := config.PermissionMiddleware.RequirePermission(permission.ResourceComment, permission.ActionDelete)

	comments := api.Group("/comments")
	{
		comments.GET("", read, config.CommentHandler.ListComments)
		comments.POST("", write, config.CommentHandler.CreateComment)

		comments.POST("/:id/responses", write, config.CommentHandler.ReplyComment)
		comments.POST("/:id/read", write, config.CommentHandler.MarkCommentRead)
		comments.DELETE("/:id", remove, config.CommentHandler.DeleteComment)
	}
}
