package handlers

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck probes one optional dependency.
type HealthCheck func(ctx context.Context) error

type HealthHandler struct {
	checks map[string]HealthCheck
}

func NewHealthHandler(checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// HealthCheck answers "ok", or 503 naming every failing dependency.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	if len(h.checks) == 0 {
		c.String(http.StatusOK, "ok")
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	var failing []string
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			_ = c.Error(err)
			failing = append(failing, name)
		}
	}
	if len(failing) > 0 {
		sort.Strings(failing)
		c.String(http.StatusServiceUnavailable, "unavailable: "+strings.Join(failing, ","))
		return
	}
	c.String(http.StatusOK, "ok")
}
