package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// RateLimiter takes one token for a key
type RateLimiter interface {
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
}

// RateLimit refuses requests over the limiter's budget with 429 rate_limited.
// Requests pass when the limiter itself fails.
func RateLimit(limiter RateLimiter, scope string, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := scope + ":" + c.ClientIP()

		allowed, retryAfter, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			logger.Warn("Rate limiter unavailable, letting request through", map[string]any{
				"scope": scope,
				"error": err.Error(),
			})
			c.Next()
			return
		}

		if !allowed {
			retryMs := retryAfter.Milliseconds()
			c.Header("Retry-After", strconv.FormatInt((retryMs+999)/1000, 10))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewRateLimitedResponse(retryMs))
			return
		}

		c.Next()
	}
}
