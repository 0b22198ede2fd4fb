package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recommendations/backend/internal/logging"
	"github.com/pageza/recommendations/backend/internal/middleware"
)

// ServiceName and Version are reported by the index endpoint.
const (
	ServiceName = "Recommendations REST API Service"
	Version     = "1.0"
)

// Index returns the service name and version.
func Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":    ServiceName,
		"version": Version,
	})
}

// PingFunc checks that a backing store is reachable.
type PingFunc func(ctx context.Context) error

// HealthHandler reports whether the service can reach its store.
type HealthHandler struct {
	ping    PingFunc
	timeout time.Duration
}

// NewHealthHandler creates a health handler that calls ping on every check.
func NewHealthHandler(ping PingFunc) *HealthHandler {
	return &HealthHandler{ping: ping, timeout: 2 * time.Second}
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	if h.ping != nil {
		if err := h.ping(ctx); err != nil {
			logging.Ctx(ctx).Error().Err(err).Msg("Health check failed")
			c.JSON(http.StatusServiceUnavailable, middleware.NewErrorResponse(
				http.StatusServiceUnavailable, "database unavailable"))
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": Version,
	})
}
