package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/bookfront/internal/observability"
)

// Metrics observes every request under its route template.
func Metrics(m *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		m.ApiInflightInc()
		start := time.Now()
		defer func() {
			m.ApiInflightDec()
			m.ObserveAPI(c.Request.Method, routeLabel(c), strconv.Itoa(c.Writer.Status()), time.Since(start))
		}()
		c.Next()
	}
}

// routeLabel is the matched route template, never the raw path, so tokens in
// URLs stay out of logs and label sets.
func routeLabel(c *gin.Context) string {
	if route := c.FullPath(); route != "" {
		return route
	}
	return "unmatched"
}
