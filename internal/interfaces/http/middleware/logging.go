package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/niggl1/appsindico/internal/shared/constants"
	"github.com/niggl1/appsindico/internal/shared/logger"
)

func CustomLogger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"route", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", latency,
			"client_ip", c.ClientIP(),
			"user_agent", c.Request.UserAgent(),
			"body_size", c.Writer.Size(),
		}

		if requestID := c.GetString(constants.ContextKeyRequestID); requestID != "" {
			args = append(args, "request_id", requestID)
		}

		if userID, exists := c.Get(constants.ContextKeyUserID); exists {
			args = append(args, "user_id", userID)
		}

		if last := c.Errors.Last(); last != nil {
			args = append(args, "error", last.Err)
		}

		reqLog := log
		if tenantID, ok := logger.TenantFromContext(c.Request.Context()); ok {
			reqLog = log.WithTenant(tenantID)
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			reqLog.Errorw("HTTP request completed with server error", args...)
		case status >= 400:
			reqLog.Warnw("HTTP request completed with client error", args...)
		case status >= 300:
			reqLog.Debugw("HTTP request completed with redirect", args...)
		default:
			reqLog.Debugw("HTTP request completed successfully", args...)
		}
	}
}
