package redis

import (
	"context"
	"time"

	"github.com/go-redis/redis_rate/v10"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimiter is a GCRA limiter shared by every instance through Redis
type RateLimiter struct {
	limiter *redis_rate.Limiter
	limit   redis_rate.Limit
}

// NewRateLimiter creates a limiter that allows perMinute requests per key with the given burst
func NewRateLimiter(client goredis.UniversalClient, perMinute, burst int) *RateLimiter {
	limit := redis_rate.PerMinute(perMinute)
	if burst > 0 {
		limit.Burst = burst
	}
	return &RateLimiter{
		limiter: redis_rate.NewLimiter(client),
		limit:   limit,
	}
}

// Allow takes one token for key. When refused it reports how long to wait for the next one.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	res, err := l.limiter.Allow(ctx, "rate:"+key, l.limit)
	if err != nil {
		return false, 0, err
	}
	if res.Allowed > 0 {
		return true, 0, nil
	}
	return false, res.RetryAfter, nil
}
