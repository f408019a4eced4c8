package time

import (
	"context"
	"sync"
	"time"

	"github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
)

// ManualTimeProvider is a clock that only moves when told to.
// Sleep advances the clock instead of blocking.
type ManualTimeProvider struct {
	mu  sync.RWMutex
	now time.Time
}

var _ core.TimeProvider = (*ManualTimeProvider)(nil)

// NewManualTimeProvider creates a clock frozen at start
func NewManualTimeProvider(start time.Time) *ManualTimeProvider {
	return &ManualTimeProvider{now: start}
}

// Now returns the frozen instant
func (p *ManualTimeProvider) Now() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.now
}

// Set moves the clock to t
func (p *ManualTimeProvider) Set(t time.Time) {
	p.mu.Lock()
	p.now = t
	p.mu.Unlock()
}

// Advance moves the clock forward by d
func (p *ManualTimeProvider) Advance(d time.Duration) {
	p.mu.Lock()
	p.now = p.now.Add(d)
	p.mu.Unlock()
}

func (p *ManualTimeProvider) Since(t time.Time) time.Duration {
	return p.Now().Sub(t)
}

func (p *ManualTimeProvider) Until(t time.Time) time.Duration {
	return t.Sub(p.Now())
}

func (p *ManualTimeProvider) Sleep(d time.Duration) {
	p.Advance(d)
}

// WithTimeout uses the real clock for the deadline
func (p *ManualTimeProvider) WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}
