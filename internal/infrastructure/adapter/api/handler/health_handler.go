package handler

import (
	"context"
	"net/http"

	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// Pinger checks that a backing store answers
type Pinger interface {
	Ping(ctx context.Context) error
}

// PoolReporter is implemented by stores that sample their connection pool
type PoolReporter interface {
	PoolStats() map[string]any
}

// HealthHandler answers liveness probes
type HealthHandler struct {
	pinger Pinger
	logger coreport.Logger
}

// NewHealthHandler creates a health handler. A nil pinger always reports healthy.
func NewHealthHandler(pinger Pinger, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		pinger: pinger,
		logger: logger,
	}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	if h.pinger != nil {
		if err := h.pinger.Ping(c.Request.Context()); err != nil {
			h.logger.Warn("Health check failed", map[string]any{
				"error": err.Error(),
			})
			c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{OK: false, Error: "storage unavailable"})
			return
		}
	}

	resp := dto.HealthResponse{OK: true}
	if reporter, ok := h.pinger.(PoolReporter); ok {
		resp.Pool = reporter.PoolStats()
	}
	c.JSON(http.StatusOK, resp)
}
