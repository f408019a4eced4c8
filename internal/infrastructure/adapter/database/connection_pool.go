package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
)

// PoolSnapshot is one sample of the sql.DB pool
type PoolSnapshot struct {
	Open         int
	InUse        int
	Idle         int
	MaxOpen      int
	WaitCount    int64
	WaitDuration time.Duration
	Healthy      bool
	SampledAt    time.Time
}

// ConnectionPoolMonitor samples the pool on an interval and warns about contention.
// Reward claims hold a connection for a whole transaction, so waits show up here first.
type ConnectionPoolMonitor struct {
	db       *Manager
	logger   coreport.Logger
	mu       sync.RWMutex
	last     PoolSnapshot
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewConnectionPoolMonitor creates a new connection pool monitor
func NewConnectionPoolMonitor(db *Manager, logger coreport.Logger) *ConnectionPoolMonitor {
	return &ConnectionPoolMonitor{
		db:       db,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start takes a first sample and keeps sampling every interval until Stop
func (m *ConnectionPoolMonitor) Start(interval time.Duration) error {
	if err := m.sample(); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := m.sample(); err != nil {
					m.logger.Error("Failed to sample connection pool", map[string]any{
						"error": err.Error(),
					})
				}
			case <-m.stopChan:
				return
			}
		}
	}()

	return nil
}

// Stop ends sampling. Safe to call more than once.
func (m *ConnectionPoolMonitor) Stop() {
	m.stopOnce.Do(func() { close(m.stopChan) })
}

// Snapshot returns the latest sample
func (m *ConnectionPoolMonitor) Snapshot() PoolSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.last
}

func (m *ConnectionPoolMonitor) sample() error {
	sqlDB, err := m.db.DB().DB()
	if err != nil {
		return fmt.Errorf("failed to get database connection: %w", err)
	}

	ctx, cancel := m.db.WithTimeout(context.Background())
	defer cancel()
	pingErr := sqlDB.PingContext(ctx)
	if pingErr != nil {
		m.logger.Error("Database ping failed", map[string]any{
			"error": pingErr.Error(),
		})
	}

	stats := sqlDB.Stats()
	current := PoolSnapshot{
		Open:         stats.OpenConnections,
		InUse:        stats.InUse,
		Idle:         stats.Idle,
		MaxOpen:      stats.MaxOpenConnections,
		WaitCount:    stats.WaitCount,
		WaitDuration: stats.WaitDuration,
		Healthy:      pingErr == nil,
		SampledAt:    m.db.timeProvider.Now(),
	}

	m.mu.Lock()
	previous := m.last
	m.last = current
	m.mu.Unlock()

	if newWaits := current.WaitCount - previous.WaitCount; !previous.SampledAt.IsZero() && newWaits > 0 {
		m.logger.Warn("Requests waited for a database connection", map[string]any{
			"waits":        newWaits,
			"waited":       (current.WaitDuration - previous.WaitDuration).String(),
			"in_use":       current.InUse,
			"max_open":     current.MaxOpen,
			"since_sample": current.SampledAt.Sub(previous.SampledAt).String(),
		})
	}

	return nil
}
