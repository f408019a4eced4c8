package persistence

import (
	"context"
	"time"
)

// CooldownRepository stores the instant each (user, action) pair becomes usable again
type CooldownRepository interface {
	// TryConsume atomically checks and advances the cooldown.
	// When the stored ready time is not after now it is set to now+cooldown and allowed is true.
	// Otherwise nothing changes and readyAt reports when the action becomes available.
	TryConsume(ctx context.Context, userID, action string, now time.Time, cooldown time.Duration) (allowed bool, readyAt time.Time, err error)

	// PurgeExpired removes records whose ready time is before the given instant
	PurgeExpired(ctx context.Context, before time.Time) (int64, error)
}
