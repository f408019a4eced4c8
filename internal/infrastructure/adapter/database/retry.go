package database

import (
	"context"
	"math/rand"
	"time"

	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/repository"
)

// RetryConfig bounds how often and how far apart a statement is retried
type RetryConfig struct {
	MaxRetries    int
	RetryInterval time.Duration
	MaxInterval   time.Duration
	JitterFactor  float64 // share of the backoff added at random, 0 disables jitter
}

// DefaultRetryConfig is used by migrations and the maintenance purge
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    5,
		RetryInterval: 100 * time.Millisecond,
		MaxInterval:   2 * time.Second,
		JitterFactor:  0.2,
	}
}

// RetryOnTransientError runs operation until it succeeds, fails permanently, or
// MaxRetries attempts are used up. The final error goes through errorMapper when one is given.
func RetryOnTransientError(
	ctx context.Context,
	config RetryConfig,
	operation func() error,
	errorMapper *ErrorMapper,
	logger coreport.Logger,
) error {
	finish := func(err error) error {
		if errorMapper != nil {
			return errorMapper.MapError(err, "retry")
		}
		return err
	}

	var lastErr error
	for attempt := 1; attempt <= config.MaxRetries; attempt++ {
		lastErr = operation()
		switch {
		case lastErr == nil:
			return nil
		case !isTransientError(lastErr):
			return finish(lastErr)
		case attempt == config.MaxRetries:
			continue
		}

		wait := calculateBackoffWithJitter(attempt-1, config)
		logger.Warn("Transient database error, retrying operation", map[string]any{
			"attempt":     attempt,
			"max_retries": config.MaxRetries,
			"error":       lastErr.Error(),
			"retry_after": wait.String(),
		})

		if err := sleepCtx(ctx, wait); err != nil {
			logger.Warn("Retry operation canceled by context", map[string]any{
				"attempts": attempt,
				"error":    err.Error(),
			})
			return err
		}
	}

	logger.Error("All retry attempts failed", map[string]any{
		"attempts": config.MaxRetries,
		"error":    lastErr.Error(),
	})
	return finish(lastErr)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// calculateBackoffWithJitter doubles RetryInterval per attempt, caps it at MaxInterval,
// then adds up to JitterFactor of it at random
func calculateBackoffWithJitter(attempt int, config RetryConfig) time.Duration {
	backoff := config.RetryInterval << uint(attempt)
	if backoff <= 0 || backoff > config.MaxInterval {
		backoff = config.MaxInterval
	}
	if config.JitterFactor <= 0 {
		return backoff
	}
	return backoff + time.Duration(rand.Float64()*config.JitterFactor*float64(backoff))
}

var retryClassifier = repository.NewErrorClassifier()

func isTransientError(err error) bool {
	return retryClassifier.IsRetryable(err)
}
