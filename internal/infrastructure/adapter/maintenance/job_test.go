package maintenance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/memory"
	clock "github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/time"
	persistencemocks "github.com/amirhossein-jamali/acorn-grove/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stubLocker struct {
	ok       bool
	err      error
	unlocked bool
}

func (l *stubLocker) TryLock(context.Context, string, time.Duration) (func(), bool, error) {
	if l.err != nil || !l.ok {
		return nil, l.ok, l.err
	}
	return func() { l.unlocked = true }, true, nil
}

func testConfig() Config {
	return Config{
		Schedule:                "@hourly",
		CooldownRetention:       24 * time.Hour,
		DailyAwardRetentionDays: 30,
		LockTTL:                 time.Minute,
		DayPolicy:               entity.UTCDayPolicy(),
	}
}

func TestJob_RunOnce_PurgesStaleRows(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	tp := clock.NewManualTimeProvider(start)
	store := memory.NewStore()
	cooldowns := memory.NewCooldownRepository(store)
	awards := memory.NewDailyCapRepository(store)
	ctx := context.Background()

	_, _, err := cooldowns.TryConsume(ctx, "u1", "fishing", start, 3*time.Second)
	require.NoError(t, err)
	_, _, err = awards.Award(ctx, "u1", entity.DayKey(start, entity.UTCDayPolicy()), 10, 300)
	require.NoError(t, err)

	tp.Advance(45 * 24 * time.Hour)
	_, _, err = cooldowns.TryConsume(ctx, "u2", "fishing", tp.Now(), 3*time.Second)
	require.NoError(t, err)
	_, _, err = awards.Award(ctx, "u2", entity.DayKey(tp.Now(), entity.UTCDayPolicy()), 10, 300)
	require.NoError(t, err)

	log := logger.NewNoopLogger()
	job := NewJob(cooldowns, awards, nil, database.NewMetricsCollector(log, tp, time.Second), tp, log, testConfig())

	res, err := job.RunOnce(ctx)

	require.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.Equal(t, int64(1), res.CooldownsPurged)
	assert.Equal(t, int64(1), res.AwardsPurged)

	awarded, err := awards.GetAwarded(ctx, "u2", entity.DayKey(tp.Now(), entity.UTCDayPolicy()))
	require.NoError(t, err)
	assert.Equal(t, int64(10), awarded)
}

func TestJob_RunOnce_CutoffsAndLock(t *testing.T) {
	now := time.Date(2025, 3, 31, 8, 0, 0, 0, time.UTC)
	tp := clock.NewManualTimeProvider(now)

	t.Run("PassesCutoffs", func(t *testing.T) {
		cooldowns := persistencemocks.NewMockCooldownRepository(t)
		awards := persistencemocks.NewMockDailyCapRepository(t)
		locker := &stubLocker{ok: true}

		cooldowns.EXPECT().PurgeExpired(mock.Anything, now.Add(-24*time.Hour)).Return(int64(3), nil)
		awards.EXPECT().PurgeBefore(mock.Anything, "2025-03-01").Return(int64(7), nil)

		job := NewJob(cooldowns, awards, locker, nil, tp, logger.NewNoopLogger(), testConfig())
		res, err := job.RunOnce(context.Background())

		require.NoError(t, err)
		assert.Equal(t, Result{CooldownsPurged: 3, AwardsPurged: 7}, res)
		assert.True(t, locker.unlocked)
	})

	t.Run("LockHeldElsewhere", func(t *testing.T) {
		cooldowns := persistencemocks.NewMockCooldownRepository(t)
		awards := persistencemocks.NewMockDailyCapRepository(t)

		job := NewJob(cooldowns, awards, &stubLocker{ok: false}, nil, tp, logger.NewNoopLogger(), testConfig())
		res, err := job.RunOnce(context.Background())

		require.NoError(t, err)
		assert.True(t, res.Skipped)
		cooldowns.AssertNotCalled(t, "PurgeExpired", mock.Anything, mock.Anything)
	})

	t.Run("LockError", func(t *testing.T) {
		cooldowns := persistencemocks.NewMockCooldownRepository(t)
		awards := persistencemocks.NewMockDailyCapRepository(t)

		job := NewJob(cooldowns, awards, &stubLocker{err: errors.New("redis down")}, nil, tp, logger.NewNoopLogger(), testConfig())
		_, err := job.RunOnce(context.Background())

		assert.Error(t, err)
	})

	t.Run("PermanentErrorStopsPass", func(t *testing.T) {
		cooldowns := persistencemocks.NewMockCooldownRepository(t)
		awards := persistencemocks.NewMockDailyCapRepository(t)
		cooldowns.EXPECT().PurgeExpired(mock.Anything, mock.Anything).Return(int64(0), errors.New("permission denied")).Once()

		job := NewJob(cooldowns, awards, nil, nil, tp, logger.NewNoopLogger(), testConfig())
		_, err := job.RunOnce(context.Background())

		assert.Error(t, err)
		awards.AssertNotCalled(t, "PurgeBefore", mock.Anything, mock.Anything)
	})
}

func TestJob_StartRejectsBadSchedule(t *testing.T) {
	cfg := testConfig()
	cfg.Schedule = "not a schedule"
	job := NewJob(nil, nil, nil, nil, clock.NewManualTimeProvider(time.Now()), logger.NewNoopLogger(), cfg)

	assert.Error(t, job.Start())
}

func TestJob_StartStop(t *testing.T) {
	job := NewJob(nil, nil, nil, nil, clock.NewManualTimeProvider(time.Now()), logger.NewNoopLogger(), testConfig())

	require.NoError(t, job.Start())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	job.Stop(ctx)
}
