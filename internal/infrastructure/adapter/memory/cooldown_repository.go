package memory

import (
	"context"
	"time"
)

// CooldownRepository keeps cooldown ready times in a Store
type CooldownRepository struct {
	store *Store
}

// NewCooldownRepository creates a cooldown repository over store
func NewCooldownRepository(store *Store) *CooldownRepository {
	return &CooldownRepository{store: store}
}

func (r *CooldownRepository) TryConsume(ctx context.Context, userID, action string, now time.Time, cooldown time.Duration) (bool, time.Time, error) {
	if err := ctx.Err(); err != nil {
		return false, time.Time{}, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := cooldownKey{userID: userID, action: action}
	readyAt, exists := r.store.cooldowns[key]
	if exists && now.Before(readyAt) {
		return false, readyAt, nil
	}

	next := now.Add(cooldown)
	r.store.cooldowns[key] = next
	return true, next, nil
}

func (r *CooldownRepository) PurgeExpired(ctx context.Context, before time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var removed int64
	for key, readyAt := range r.store.cooldowns {
		if readyAt.Before(before) {
			delete(r.store.cooldowns, key)
			removed++
		}
	}
	return removed, nil
}
