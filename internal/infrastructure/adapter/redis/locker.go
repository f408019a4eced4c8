package redis

import (
	"context"
	"errors"
	"time"

	"github.com/go-redsync/redsync/v4"
	redsyncpool "github.com/go-redsync/redsync/v4/redis/goredis/v9"
	goredis "github.com/redis/go-redis/v9"
)

// Locker hands out cluster-wide mutexes backed by redsync
type Locker struct {
	rs *redsync.Redsync
}

// NewLocker creates a redsync locker on top of client
func NewLocker(client goredis.UniversalClient) *Locker {
	return &Locker{rs: redsync.New(redsyncpool.NewPool(client))}
}

// TryLock makes a single attempt at name.
// ok is false with a nil error when another holder has the lock.
func (l *Locker) TryLock(ctx context.Context, name string, ttl time.Duration) (unlock func(), ok bool, err error) {
	mutex := l.rs.NewMutex("lock:"+name, redsync.WithExpiry(ttl), redsync.WithTries(1))

	if err := mutex.TryLockContext(ctx); err != nil {
		if errors.Is(err, redsync.ErrFailed) {
			return nil, false, nil
		}
		return nil, false, err
	}

	return func() {
		_, _ = mutex.UnlockContext(context.Background())
	}, true, nil
}
