package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/niggl1/appsindico/internal/infrastructure/permission"
	statushandlers "github.com/niggl1/appsindico/internal/interfaces/http/handlers/status"
	"github.com/niggl1/appsindico/internal/interfaces/http/middleware"
)

type StatusRouteConfig struct {
	StatusHandler        *statushandlers.StatusHandler
	PermissionMiddleware *middleware.PermissionMiddleware
}

func SetupStatusRoutes(api *gin.RouterGroup, config *StatusRouteConfig) {
	read := config.PermissionMiddleware.RequirePermission(permission.ResourceStatus, permission.ActionRead)
	write := config.PermissionMiddleware.RequirePermission(permission.ResourceStatus, permission.ActionWrite)

	statuses := api.Group("/statuses")
	{
		statuses.GET("", read, config.StatusHandler.ListStatuses)
		statuses.POST("", write, config.StatusHandler.CreateStatus)

		// Must come BEFORE /:id
		statuses.PUT("/order", write, config.StatusHandler.ReorderStatuses)

		statuses.PATCH("/:id", write, config.StatusHandler.UpdateStatus)
		statuses.DELETE("/:id", write, config.StatusHandler.DeactivateStatus)
	}
}
