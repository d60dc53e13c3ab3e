package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/niggl1/appsindico/internal/infrastructure/permission"
	sharelinkhandlers "github.com/niggl1/appsindico/internal/interfaces/http/handlers/sharelink"
	"github.com/niggl1/appsindico/internal/interfaces/http/middleware"
)

type ShareLinkRouteConfig struct {
	ShareLinkHandler     *sharelinkhandlers.ShareLinkHandler
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupShareLinkRoutes(api *gin.RouterGroup, config *ShareLinkRouteConfig) {
	read := config.PermissionMiddleware.RequirePermission(permission.ResourceShare, permission.ActionRead)
	write := config.PermissionMiddleware.RequirePermission(permission.ResourceShare, permission.ActionWrite)

	links := api.Group("/share-links")
	{
		links.GET("", read, config.ShareLinkHandler.ListShareLinks)
		links.POST("", write, config.ShareLinkHandler.CreateShareLink)
		links.DELETE("/:id", write, config.ShareLinkHandler.DeactivateShareLink)
	}
}
