package memory

import (
	"context"
)

// DailyCapRepository keeps per-day award totals in a Store
type DailyCapRepository struct {
	store *Store
}

// NewDailyCapRepository creates a daily cap repository over store
func NewDailyCapRepository(store *Store) *DailyCapRepository {
	return &DailyCapRepository{store: store}
}

func (r *DailyCapRepository) Award(ctx context.Context, userID, day string, requested, dailyCap int64) (int64, int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := awardKey{userID: userID, day: day}
	awarded := r.store.awards[key]
	granted := min(max(0, dailyCap-awarded), requested)
	if granted > 0 {
		awarded += granted
		r.store.awards[key] = awarded
	}
	return granted, awarded, nil
}

func (r *DailyCapRepository) GetAwarded(ctx context.Context, userID, day string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.awards[awardKey{userID: userID, day: day}], nil
}

func (r *DailyCapRepository) PurgeBefore(ctx context.Context, day string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var removed int64
	for key := range r.store.awards {
		if key.day < day {
			delete(r.store.awards, key)
			removed++
		}
	}
	return removed, nil
}
