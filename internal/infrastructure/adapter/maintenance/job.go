package maintenance

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
	"github.com/amirhossein-jamali/acorn-grove/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/database"
	"github.com/robfig/cron/v3"
)

const lockName = "maintenance:purge"

// Locker grants a cluster-wide lock to one caller at a time
type Locker interface {
	TryLock(ctx context.Context, name string, ttl time.Duration) (unlock func(), ok bool, err error)
}

// Config controls what the purge removes and when it runs
type Config struct {
	Schedule                string
	CooldownRetention       time.Duration
	DailyAwardRetentionDays int
	LockTTL                 time.Duration
	DayPolicy               entity.DayPolicy
}

// Result reports what one purge pass removed
type Result struct {
	Skipped         bool
	CooldownsPurged int64
	AwardsPurged    int64
}

// Job periodically purges cooldown records and daily award rows nobody reads anymore
type Job struct {
	cooldowns    persistence.CooldownRepository
	awards       persistence.DailyCapRepository
	locker       Locker
	metrics      *database.MetricsCollector
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	config       Config
	retry        database.RetryConfig

	cron *cron.Cron
}

// NewJob creates a purge job. locker may be nil when a single instance runs.
func NewJob(
	cooldowns persistence.CooldownRepository,
	awards persistence.DailyCapRepository,
	locker Locker,
	metrics *database.MetricsCollector,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	config Config,
) *Job {
	if config.LockTTL <= 0 {
		config.LockTTL = 5 * time.Minute
	}
	return &Job{
		cooldowns:    cooldowns,
		awards:       awards,
		locker:       locker,
		metrics:      metrics,
		timeProvider: timeProvider,
		logger:       logger,
		config:       config,
		retry:        database.DefaultRetryConfig(),
	}
}

// Start schedules the job on its cron expression
func (j *Job) Start() error {
	j.cron = cron.New(cron.WithLocation(j.config.DayPolicy.Location()))

	_, err := j.cron.AddFunc(j.config.Schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.config.LockTTL)
		defer cancel()

		if _, err := j.RunOnce(ctx); err != nil {
			j.logger.Error("Maintenance pass failed", map[string]any{
				"error": err.Error(),
			})
		}
	})
	if err != nil {
		return fmt.Errorf("invalid maintenance schedule %q: %w", j.config.Schedule, err)
	}

	j.cron.Start()
	j.logger.Info("Maintenance scheduled", map[string]any{
		"schedule":                   j.config.Schedule,
		"cooldown_retention":         j.config.CooldownRetention.String(),
		"daily_award_retention_days": j.config.DailyAwardRetentionDays,
	})
	return nil
}

// Stop waits for a running pass to finish or ctx to end
func (j *Job) Stop(ctx context.Context) {
	if j.cron == nil {
		return
	}
	select {
	case <-j.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// RunOnce purges stale rows. Another instance holding the lock makes it a no-op.
func (j *Job) RunOnce(ctx context.Context) (Result, error) {
	if j.locker != nil {
		unlock, ok, err := j.locker.TryLock(ctx, lockName, j.config.LockTTL)
		if err != nil {
			return Result{}, fmt.Errorf("acquire maintenance lock: %w", err)
		}
		if !ok {
			j.logger.Debug("Maintenance lock held elsewhere, skipping pass", nil)
			return Result{Skipped: true}, nil
		}
		defer unlock()
	}

	now := j.timeProvider.Now()
	var res Result

	cooldownCutoff := now.Add(-j.config.CooldownRetention)
	n, err := j.measure(ctx, "purge_cooldowns", func(ctx context.Context) (int64, error) {
		return j.cooldowns.PurgeExpired(ctx, cooldownCutoff)
	})
	if err != nil {
		return res, err
	}
	res.CooldownsPurged = n

	dayCutoff := entity.DayKey(now.AddDate(0, 0, -j.config.DailyAwardRetentionDays), j.config.DayPolicy)
	n, err = j.measure(ctx, "purge_daily_awards", func(ctx context.Context) (int64, error) {
		return j.awards.PurgeBefore(ctx, dayCutoff)
	})
	if err != nil {
		return res, err
	}
	res.AwardsPurged = n

	fields := map[string]any{
		"cooldowns_purged": res.CooldownsPurged,
		"awards_purged":    res.AwardsPurged,
		"cooldown_cutoff":  cooldownCutoff,
		"day_cutoff":       dayCutoff,
	}
	if j.metrics != nil {
		fields["cooldown_rows_total"] = j.metrics.Totals("purge_cooldowns").Rows
		fields["award_rows_total"] = j.metrics.Totals("purge_daily_awards").Rows
	}
	j.logger.Info("Maintenance pass completed", fields)
	return res, nil
}

// measure retries transient failures of fn and records its duration
func (j *Job) measure(ctx context.Context, operation string, fn func(ctx context.Context) (int64, error)) (int64, error) {
	var rows int64
	err := database.RetryOnTransientError(ctx, j.retry, func() error {
		if j.metrics == nil {
			var err error
			rows, err = fn(ctx)
			return err
		}
		m, err := j.metrics.MeasureQuery(ctx, operation, fn)
		rows = m.RowsAffected
		return err
	}, nil, j.logger)
	return rows, err
}
