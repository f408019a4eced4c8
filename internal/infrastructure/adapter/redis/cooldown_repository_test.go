package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/logger"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCooldownRepository_TryConsume(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	cooldown := 3 * time.Second
	key := CooldownKey("u1", "fishing")

	tests := []struct {
		name        string
		setupMock   func(mock redismock.ClientMock)
		wantAllowed bool
		wantReadyAt time.Time
		wantErr     bool
	}{
		{
			name: "key absent",
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectSetNX(key, now.Add(cooldown).UnixMilli(), cooldown).SetVal(true)
			},
			wantAllowed: true,
			wantReadyAt: now.Add(cooldown),
		},
		{
			name: "key cooling down",
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectSetNX(key, now.Add(cooldown).UnixMilli(), cooldown).SetVal(false)
				mock.ExpectPTTL(key).SetVal(1200 * time.Millisecond)
			},
			wantAllowed: false,
			wantReadyAt: now.Add(1200 * time.Millisecond),
		},
		{
			name: "key expired between set and ttl",
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectSetNX(key, now.Add(cooldown).UnixMilli(), cooldown).SetVal(false)
				mock.ExpectPTTL(key).SetVal(time.Duration(-2))
				mock.ExpectSetNX(key, now.Add(cooldown).UnixMilli(), cooldown).SetVal(true)
			},
			wantAllowed: true,
			wantReadyAt: now.Add(cooldown),
		},
		{
			name: "redis error",
			setupMock: func(mock redismock.ClientMock) {
				mock.ExpectSetNX(key, now.Add(cooldown).UnixMilli(), cooldown).SetErr(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, mock := redismock.NewClientMock()
			tt.setupMock(mock)

			repo := NewCooldownRepository(client, logger.NewNoopLogger())
			allowed, readyAt, err := repo.TryConsume(context.Background(), "u1", "fishing", now, cooldown)

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrStorageUnavailable)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantAllowed, allowed)
				assert.True(t, tt.wantReadyAt.Equal(readyAt), "ready at %s, want %s", readyAt, tt.wantReadyAt)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCooldownRepository_PurgeExpiredIsNoop(t *testing.T) {
	client, mock := redismock.NewClientMock()
	repo := NewCooldownRepository(client, logger.NewNoopLogger())

	n, err := repo.PurgeExpired(context.Background(), time.Now())

	require.NoError(t, err)
	assert.Zero(t, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCooldownKey(t *testing.T) {
	assert.Equal(t, "cooldown:u1:fishing", CooldownKey("u1", "fishing"))
}
