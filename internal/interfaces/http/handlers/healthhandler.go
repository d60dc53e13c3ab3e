package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/niggl1/appsindico/internal/shared/logger"
	"github.com/niggl1/appsindico/internal/shared/version"
)

const healthCheckTimeout = 2 * time.Second

// Pinger reports whether a backing service answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc adapts a function to Pinger.
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

// HealthHandler reports liveness of the API and its dependencies. The
// database is required; every other dependency is reported but does not
// fail the check.
type HealthHandler struct {
	database Pinger
	optional map[string]Pinger
	logger   logger.Interface
}

func NewHealthHandler(database Pinger, optional map[string]Pinger, logger logger.Interface) *HealthHandler {
	return &HealthHandler{
		database: database,
		optional: optional,
		logger:   logger,
	}
}

// HealthCheck handles GET /health
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 503 {object} map[string]any
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	checks := gin.H{}
	status := http.StatusOK
	state := "healthy"

	if err := h.database.Ping(ctx); err != nil {
		h.logger.Errorw("database health check failed", "error", err)
		checks["database"] = "down"
		status = http.StatusServiceUnavailable
		state = "unhealthy"
	} else {
		checks["database"] = "up"
	}

	for name, p := range h.optional {
		if err := p.Ping(ctx); err != nil {
			h.logger.Warnw("dependency health check failed", "dependency", name, "error", err)
			checks[name] = "down"
			if state == "healthy" {
				state = "degraded"
			}
			continue
		}
		checks[name] = "up"
	}

	c.JSON(status, gin.H{
		"status":  state,
		"service": "appsindico",
		"version": version.Current,
		"checks":  checks,
	})
}
