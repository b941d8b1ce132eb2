package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/bookfront/internal/platform/ctxutil"
	"github.com/yungbote/bookfront/internal/platform/logger"
)

// RequestLogger writes one access-log line per request. Redirect targets are
// logged under a *_path key so the logger masks tokens inside them.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if log == nil {
			return
		}

		status := c.Writer.Status()
		fields := []interface{}{
			"method", c.Request.Method,
			"route", routeLabel(c),
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if loc := c.Writer.Header().Get("Location"); loc != "" {
			fields = append(fields, "redirect_path", loc)
		}
		if ri := ctxutil.GetRequestInfo(c.Request.Context()); ri != nil {
			fields = append(fields,
				"trace_id", ri.TraceID,
				"request_id", ri.RequestID,
				"client_ip", ri.ClientIP,
			)
			if ri.UserAgent != "" {
				fields = append(fields, "user_agent", ri.UserAgent)
			}
		}
		if len(c.Errors) > 0 {
			fields = append(fields, "error", c.Errors.String())
		}

		switch {
		case status >= 500:
			log.Error("HTTP request", fields...)
		case status >= 400:
			log.Warn("HTTP request", fields...)
		default:
			log.Info("HTTP request", fields...)
		}
	}
}
