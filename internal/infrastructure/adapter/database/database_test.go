package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/logger"
	clock "github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/time"
	coremocks "github.com/amirhossein-jamali/acorn-grove/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxRetries:    3,
		RetryInterval: time.Millisecond,
		MaxInterval:   2 * time.Millisecond,
	}
}

func TestErrorMapper_MapError(t *testing.T) {
	mapper := NewErrorMapper()
	cooldown := errs.NewCooldownError("u1", "fishing", time.Second)

	testCases := []struct {
		name  string
		err   error
		check func(t *testing.T, mapped error)
	}{
		{"Nil", nil, func(t *testing.T, mapped error) { assert.NoError(t, mapped) }},
		{"NotFound", gorm.ErrRecordNotFound, func(t *testing.T, mapped error) {
			assert.ErrorIs(t, mapped, errs.ErrUserNotFound)
		}},
		{"Duplicate", errors.New(`ERROR: duplicate key value violates unique constraint "users_pkey"`), func(t *testing.T, mapped error) {
			assert.ErrorIs(t, mapped, errs.ErrDuplicateUser)
		}},
		{"DomainPassesThrough", cooldown, func(t *testing.T, mapped error) {
			assert.Same(t, cooldown, mapped)
		}},
		{"Unknown", errors.New("connection refused"), func(t *testing.T, mapped error) {
			assert.ErrorIs(t, mapped, errs.ErrStorageUnavailable)
			var se *errs.StorageError
			require.True(t, errors.As(mapped, &se))
			assert.Equal(t, "purge", se.Operation)
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.check(t, mapper.MapError(tc.err, "purge"))
		})
	}
}

func TestRetryOnTransientError(t *testing.T) {
	ctx := context.Background()
	log := logger.NewNoopLogger()

	t.Run("RecoversAfterTransientFailure", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(ctx, fastRetry(), func() error {
			calls++
			if calls == 1 {
				return errors.New("pq: deadlock detected")
			}
			return nil
		}, nil, log)

		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("StopsOnPermanentError", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(ctx, fastRetry(), func() error {
			calls++
			return errors.New("syntax error at or near")
		}, NewErrorMapper(), log)

		assert.ErrorIs(t, err, errs.ErrStorageUnavailable)
		assert.Equal(t, 1, calls)
	})

	t.Run("GivesUpAfterMaxRetries", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(ctx, fastRetry(), func() error {
			calls++
			return errors.New("read: connection reset by peer")
		}, nil, log)

		assert.Error(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("DuplicateKeyIsNotRetried", func(t *testing.T) {
		calls := 0
		err := RetryOnTransientError(ctx, fastRetry(), func() error {
			calls++
			return errors.New("duplicate key value violates unique constraint")
		}, NewErrorMapper(), log)

		assert.ErrorIs(t, err, errs.ErrDuplicateUser)
		assert.Equal(t, 1, calls)
	})

	t.Run("HonorsCanceledContext", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		cfg := fastRetry()
		cfg.RetryInterval = time.Hour
		cfg.MaxInterval = time.Hour
		err := RetryOnTransientError(cctx, cfg, func() error {
			return errors.New("i/o timeout")
		}, nil, log)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCalculateBackoffWithJitter(t *testing.T) {
	cfg := RetryConfig{RetryInterval: 100 * time.Millisecond, MaxInterval: time.Second}

	assert.Equal(t, 100*time.Millisecond, calculateBackoffWithJitter(0, cfg))
	assert.Equal(t, 400*time.Millisecond, calculateBackoffWithJitter(2, cfg))
	assert.Equal(t, time.Second, calculateBackoffWithJitter(10, cfg))

	cfg.JitterFactor = 0.5
	for i := 0; i < 20; i++ {
		backoff := calculateBackoffWithJitter(1, cfg)
		assert.GreaterOrEqual(t, backoff, 200*time.Millisecond)
		assert.LessOrEqual(t, backoff, 300*time.Millisecond)
	}
}

func TestParseIsolationLevel(t *testing.T) {
	testCases := []struct {
		in       string
		expected sql.IsolationLevel
		wantErr  bool
	}{
		{"", sql.LevelReadCommitted, false},
		{"read committed", sql.LevelReadCommitted, false},
		{" Repeatable Read ", sql.LevelRepeatableRead, false},
		{"SERIALIZABLE", sql.LevelSerializable, false},
		{"read uncommitted", sql.LevelDefault, true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			level, err := ParseIsolationLevel(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, level)
		})
	}
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		cfg := DefaultConfig()
		cfg.Host = "localhost"
		cfg.Username = "grove"
		cfg.Database = "grove"
		return cfg
	}

	require.NoError(t, valid().Validate())
	assert.Equal(t, "host=localhost port=5432 user=grove password= dbname=grove sslmode=disable", valid().DSN())

	testCases := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"MissingHost", func(c *Config) { c.Host = "" }},
		{"BadPort", func(c *Config) { c.Port = 70000 }},
		{"BadSSLMode", func(c *Config) { c.SSLMode = "sometimes" }},
		{"NoRetries", func(c *Config) { c.RetryAttempts = 0 }},
		{"BadIsolation", func(c *Config) { c.IsolationLevel = "chaos" }},
		{"BadLogLevel", func(c *Config) { c.LogLevel = "loud" }},
		{"IdleAboveOpen", func(c *Config) { c.MaxIdleConns = c.MaxOpenConns + 1 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	t.Run("ReportsEveryProblem", func(t *testing.T) {
		cfg := valid()
		cfg.Host = ""
		cfg.SSLMode = "sometimes"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database host is required")
		assert.Contains(t, err.Error(), "invalid SSL mode: sometimes")
	})
}

func TestMetricsCollector_MeasureQuery(t *testing.T) {
	tp := clock.NewManualTimeProvider(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	mockLogger := coremocks.NewMockLogger(t)
	collector := NewMetricsCollector(mockLogger, tp, 100*time.Millisecond)

	mockLogger.EXPECT().Warn("Slow database operation detected", mock.Anything).Once()
	metrics, err := collector.MeasureQuery(context.Background(), "purge_cooldowns", func(context.Context) (int64, error) {
		tp.Advance(250 * time.Millisecond)
		return 12, nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), metrics.RowsAffected)
	assert.Equal(t, 250*time.Millisecond, metrics.Duration)
	assert.False(t, metrics.Failed)

	mockLogger.EXPECT().Debug("Database operation measured", mock.Anything).Once()
	metrics, err = collector.MeasureQuery(context.Background(), "purge_awards", func(context.Context) (int64, error) {
		return 0, fmt.Errorf("boom")
	})
	assert.Error(t, err)
	require.NotNil(t, metrics)
	assert.True(t, metrics.Failed)
	assert.Equal(t, "boom", metrics.ErrorMessage)

	totals := collector.Totals("purge_cooldowns")
	assert.Equal(t, 1, totals.Runs)
	assert.Equal(t, int64(12), totals.Rows)
	assert.Equal(t, 250*time.Millisecond, totals.Slowest)
	assert.Equal(t, 1, collector.Totals("purge_awards").Failures)
}

func TestExtractQueryParts(t *testing.T) {
	testCases := []struct {
		sql   string
		kind  string
		table string
	}{
		{`SELECT * FROM "wallets" WHERE user_id = $1`, "SELECT", "wallets"},
		{`INSERT INTO inventory_items (user_id,item,qty) VALUES ($1,$2,$3)`, "INSERT", "inventory_items"},
		{`UPDATE "inventory_items" SET qty = qty - $1`, "UPDATE", "inventory_items"},
		{`DELETE FROM cooldowns WHERE ready_at < $1`, "DELETE", "cooldowns"},
		{`BEGIN`, "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.sql, func(t *testing.T) {
			assert.Equal(t, tc.kind, extractQueryType(tc.sql))
			assert.Equal(t, tc.table, extractTableName(tc.sql))
		})
	}
}

func TestDatabaseLogger_TraceSkipsRecordNotFound(t *testing.T) {
	tp := clock.NewManualTimeProvider(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().With(mock.Anything).Return(mockLogger).Once()
	dbLogger := NewDatabaseLogger(mockLogger, tp, "warn", 100*time.Millisecond)

	// no expectations: a missing row below the slow threshold logs nothing at warn level
	dbLogger.Trace(context.Background(), tp.Now(), func() (string, int64) {
		return `SELECT * FROM "wallets"`, 0
	}, gorm.ErrRecordNotFound)

	mockLogger.EXPECT().Error("SQL Error", mock.Anything).Once()
	dbLogger.Trace(context.Background(), tp.Now(), func() (string, int64) {
		return `SELECT * FROM "wallets"`, 0
	}, errors.New("connection refused"))
}

func TestUnitOfWork_CommitWithoutTransaction(t *testing.T) {
	uow, err := NewUnitOfWork(nil, logger.NewNoopLogger(), clock.NewManualTimeProvider(time.Now()), "")
	require.NoError(t, err)

	assert.Error(t, uow.Commit(context.Background()))
	assert.Error(t, uow.Rollback(context.Background()))

	_, err = NewUnitOfWork(nil, logger.NewNoopLogger(), clock.NewManualTimeProvider(time.Now()), "chaos")
	assert.Error(t, err)
}
