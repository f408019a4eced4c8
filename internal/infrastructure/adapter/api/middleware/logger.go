package middleware

import (
	"time"

	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// RequestID keeps the caller's X-Request-ID or assigns a new one, and echoes it back
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// Logger writes one line per request. Probes on skipPaths are only logged when they fail.
func Logger(logger coreport.Logger, skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		started := time.Now()
		c.Next()

		status := c.Writer.Status()
		if _, quiet := skip[c.FullPath()]; quiet && status < 400 {
			return
		}

		fields := map[string]any{
			"method":     c.Request.Method,
			"route":      c.FullPath(),
			"path":       c.Request.URL.Path,
			"status":     status,
			"latency_ms": time.Since(started).Milliseconds(),
			"ip":         c.ClientIP(),
			"bytes":      c.Writer.Size(),
			"request_id": c.GetString(requestIDKey),
		}
		if user := CurrentUser(c); user != nil {
			fields["user_id"] = user.ID
		}
		if msgs := c.Errors.ByType(gin.ErrorTypeAny).Errors(); len(msgs) > 0 {
			fields["errors"] = msgs
		}

		switch {
		case status >= 500:
			logger.Error("Request failed", fields)
		case status >= 400:
			// cooldown and not_enough answers are routine for players, keep them out of info
			logger.Debug("Request rejected", fields)
		default:
			logger.Info("Request processed", fields)
		}
	}
}
