package redis

import (
	"context"
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
	"github.com/amirhossein-jamali/acorn-grove/internal/domain/port/persistence"
	goredis "github.com/redis/go-redis/v9"
)

const cooldownKeyPrefix = "cooldown:"

// the key can vanish between a refused SET NX and the PTTL read
const maxConsumeAttempts = 2

// CooldownRepository keeps cooldowns as expiring Redis keys.
// A key exists exactly while its action is cooling down.
type CooldownRepository struct {
	client goredis.UniversalClient
	logger coreport.Logger
}

var _ persistence.CooldownRepository = (*CooldownRepository)(nil)

// NewCooldownRepository creates a Redis backed cooldown repository
func NewCooldownRepository(client goredis.UniversalClient, logger coreport.Logger) *CooldownRepository {
	return &CooldownRepository{
		client: client,
		logger: logger,
	}
}

// CooldownKey returns the Redis key of a (user, action) cooldown
func CooldownKey(userID, action string) string {
	return cooldownKeyPrefix + userID + ":" + action
}

// TryConsume sets the key with SET NX PX. When the key already exists its PTTL is the remaining wait.
func (r *CooldownRepository) TryConsume(ctx context.Context, userID, action string, now time.Time, cooldown time.Duration) (bool, time.Time, error) {
	key := CooldownKey(userID, action)
	readyAt := now.Add(cooldown)

	for attempt := 0; attempt < maxConsumeAttempts; attempt++ {
		set, err := r.client.SetNX(ctx, key, readyAt.UnixMilli(), cooldown).Result()
		if err != nil {
			return false, time.Time{}, r.failure("try_consume_cooldown", userID, err)
		}
		if set {
			return true, readyAt, nil
		}

		ttl, err := r.client.PTTL(ctx, key).Result()
		if err != nil {
			return false, time.Time{}, r.failure("try_consume_cooldown", userID, err)
		}
		if ttl > 0 {
			return false, now.Add(ttl), nil
		}

		r.logger.Debug("Cooldown key expired during check, retrying", map[string]any{
			"user_id": userID,
			"action":  action,
			"attempt": attempt + 1,
		})
	}

	return false, now.Add(time.Millisecond), nil
}

// PurgeExpired is a no-op, Redis expires cooldown keys on its own
func (r *CooldownRepository) PurgeExpired(ctx context.Context, before time.Time) (int64, error) {
	return 0, nil
}

func (r *CooldownRepository) failure(op, userID string, err error) error {
	r.logger.Error("Redis cooldown operation failed", map[string]any{
		"operation": op,
		"user_id":   userID,
		"error":     err.Error(),
	})
	return errs.NewStorageError(op, userID, fmt.Errorf("redis: %w", err))
}
