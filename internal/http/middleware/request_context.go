package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/yungbote/bookfront/internal/platform/ctxutil"
)

const (
	HeaderTraceID   = "X-Trace-Id"
	HeaderRequestID = "X-Request-Id"

	maxInboundIDLen = 128
)

// AttachRequestContext stores a RequestInfo on the request context and echoes
// the ids back as response headers. The trace id comes from the active span
// when otelgin started one.
func AttachRequestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		ri := &ctxutil.RequestInfo{
			RequestID: inboundID(c.GetHeader(HeaderRequestID)),
			ClientIP:  c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
			Referer:   c.Request.Referer(),
		}
		if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
			ri.TraceID = sc.TraceID().String()
		} else {
			ri.TraceID = inboundID(c.GetHeader(HeaderTraceID))
		}

		c.Request = c.Request.WithContext(ctxutil.WithRequestInfo(c.Request.Context(), ri))
		c.Writer.Header().Set(HeaderTraceID, ri.TraceID)
		c.Writer.Header().Set(HeaderRequestID, ri.RequestID)
		c.Next()
	}
}

// inboundID keeps a caller-supplied id when it is short and printable,
// otherwise mints a fresh one.
func inboundID(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > maxInboundIDLen {
		return uuid.NewString()
	}
	for _, r := range raw {
		if r < 0x21 || r > 0x7e {
			return uuid.NewString()
		}
	}
	return raw
}
