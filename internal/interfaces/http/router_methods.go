package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/niggl1/appsindico/internal/interfaces/http/middleware"
	"github.com/niggl1/appsindico/internal/interfaces/http/routes"
)

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CustomLogger(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(middleware.Metrics(r.metrics))

	r.engine.GET("/health", r.hdlrs.healthHandler.HealthCheck)
	r.engine.GET("/metrics", gin.WrapH(r.metrics.Handler()))
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.setupAPIRoutes()
	r.setupPublicRoutes()
}

// setupAPIRoutes configures the authenticated staff surface
func (r *Router) setupAPIRoutes() {
	api := r.engine.Group("/api/v1")
	api.Use(r.authMiddleware.RequireAuth())

	routes.SetupStatusRoutes(api, &routes.StatusRouteConfig{
		StatusHandler:        r.hdlrs.statusHandler,
		PermissionMiddleware: r.permissionMiddleware,
	})

	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler:        r.hdlrs.ticketHandler,
		PermissionMiddleware: r.permissionMiddleware,
	})

	routes.SetupShareLinkRoutes(api, &routes.ShareLinkRouteConfig{
		ShareLinkHandler:     r.hdlrs.shareLinkHandler,
		PermissionMiddleware: r.permissionMiddleware,
	})

	routes.SetupCommentRoutes(api, &routes.CommentRouteConfig{
		CommentHandler:       r.hdlrs.commentHandler,
		PermissionMiddleware: r.permissionMiddleware,
	})
}

// setupPublicRoutes configures the token-based visitor surface
func (r *Router) setupPublicRoutes() {
	routes.SetupPublicRoutes(r.engine, &routes.PublicRouteConfig{
		ShareHandler:        r.hdlrs.publicShareHandler,
		ShareCommentHandler: r.hdlrs.shareCommentHandler,
		ChatCommentHandler:  r.hdlrs.chatCommentHandler,
		RateLimitMiddleware: r.rateLimiter,
	})
}
