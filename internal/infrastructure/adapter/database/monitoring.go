package database

import (
	"context"
	"sync"
	"time"

	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
)

// QueryMetrics describes one measured bulk statement
type QueryMetrics struct {
	Operation    string
	Duration     time.Duration
	RowsAffected int64
	Failed       bool
	ErrorMessage string
}

// OperationTotals accumulates every measurement of one operation since start
type OperationTotals struct {
	Runs     int
	Failures int
	Rows     int64
	Slowest  time.Duration
}

// MetricsCollector times bulk statements such as the maintenance purges
type MetricsCollector struct {
	logger        coreport.Logger
	timeProvider  coreport.TimeProvider
	slowThreshold time.Duration

	mu     sync.Mutex
	totals map[string]OperationTotals
}

// NewMetricsCollector creates a collector that warns above slowThreshold, 0 disables the warning
func NewMetricsCollector(logger coreport.Logger, timeProvider coreport.TimeProvider, slowThreshold time.Duration) *MetricsCollector {
	return &MetricsCollector{
		logger:        logger,
		timeProvider:  timeProvider,
		slowThreshold: slowThreshold,
		totals:        make(map[string]OperationTotals),
	}
}

// MeasureQuery runs fn, records it under operation and logs the outcome.
// The returned metrics are never nil, even when fn fails.
func (c *MetricsCollector) MeasureQuery(ctx context.Context, operation string, fn func(ctx context.Context) (int64, error)) (*QueryMetrics, error) {
	started := c.timeProvider.Now()
	rows, err := fn(ctx)
	m := &QueryMetrics{
		Operation:    operation,
		Duration:     c.timeProvider.Since(started),
		RowsAffected: rows,
		Failed:       err != nil,
	}
	if err != nil {
		m.ErrorMessage = err.Error()
	}
	c.record(m)

	fields := map[string]any{
		"operation":     operation,
		"duration_ms":   m.Duration.Milliseconds(),
		"rows_affected": rows,
		"failed":        m.Failed,
	}
	if m.Failed {
		fields["error_message"] = m.ErrorMessage
	}

	if c.slowThreshold > 0 && m.Duration > c.slowThreshold {
		c.logger.Warn("Slow database operation detected", fields)
	} else {
		c.logger.Debug("Database operation measured", fields)
	}
	return m, err
}

func (c *MetricsCollector) record(m *QueryMetrics) {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.totals[m.Operation]
	t.Runs++
	t.Rows += m.RowsAffected
	if m.Failed {
		t.Failures++
	}
	if m.Duration > t.Slowest {
		t.Slowest = m.Duration
	}
	c.totals[m.Operation] = t
}

// Totals returns the accumulated figures for operation
func (c *MetricsCollector) Totals(operation string) OperationTotals {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totals[operation]
}
