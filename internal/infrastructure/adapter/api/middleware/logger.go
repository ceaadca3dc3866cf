package middleware

import (
	"time"

	coreport "github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/core"
	applogger "github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/logger"
	"github.com/gin-gonic/gin"
)

// quietRoutes are polled by probes and scrapers; successful hits log at debug
var quietRoutes = map[string]bool{
	"/":        true,
	"/healthz": true,
	"/metrics": true,
}

// Logger middleware writes one access log entry per request. The level
// follows the response status.
func Logger(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()
		fields := map[string]any{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"route":      route,
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"bytes":      c.Writer.Size(),
			"ip":         c.ClientIP(),
			"request_id": applogger.RequestIDFromContext(c.Request.Context()),
			"user_agent": c.Request.UserAgent(),
		}
		if principal, ok := PrincipalFrom(c); ok {
			fields["user_id"] = principal.UserID
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.Errors()
		}

		switch {
		case status >= 500:
			logger.Error("Request failed", fields)
		case status >= 400:
			logger.Warn("Request rejected", fields)
		case quietRoutes[route]:
			logger.Debug("Request processed", fields)
		default:
			logger.Info("Request processed", fields)
		}
	}
}
