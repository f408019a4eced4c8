package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("GROVE_ENV", "unittest")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "unittest", cfg.Environment)
	assert.Equal(t, 8787, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Equal(t, 5*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowThreshold)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, int64(300), cfg.Reward.DailyCap)
	assert.Equal(t, int64(10), cfg.Reward.PerCatch)
	assert.Equal(t, 3000*time.Millisecond, cfg.Reward.FishingCooldown)
	assert.Equal(t, "UTC", cfg.Reward.DayTimezone)
	assert.Equal(t, int64(10), cfg.Market.Prices["fish"])
	assert.Equal(t, int64(3), cfg.Market.Prices["algae"])
	assert.Equal(t, "storage", cfg.Cooldown.Backend)
	assert.Equal(t, "raw", cfg.Auth.TokenCodec)
	assert.Equal(t, 24*time.Hour, cfg.Maintenance.CooldownRetention)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("GROVE_ENV", "unittest")
	t.Setenv("GROVE_STORAGE_DRIVER", "memory")
	t.Setenv("GROVE_DAILY_CAP", "50")
	t.Setenv("GROVE_FISHING_COOLDOWN_MS", "1500")
	t.Setenv("GROVE_TOKEN_CODEC", "jwt")
	t.Setenv("GROVE_JWT_SECRET", "s3cret")
	t.Setenv("GROVE_SERVER_PORT", "9000")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, int64(50), cfg.Reward.DailyCap)
	assert.Equal(t, 1500*time.Millisecond, cfg.Reward.FishingCooldown)
	assert.Equal(t, "jwt", cfg.Auth.TokenCodec)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, 9000, cfg.Server.Port)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Storage:  StorageConfig{Driver: "memory"},
			Cooldown: CooldownConfig{Backend: "storage"},
			Auth:     AuthConfig{TokenCodec: "raw"},
			Reward:   RewardConfig{DailyCap: 300, PerCatch: 10, FishingCooldown: 3 * time.Second},
		}
	}

	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"Valid", func(c *Config) {}, false},
		{"UnknownDriver", func(c *Config) { c.Storage.Driver = "sqlite" }, true},
		{"RedisCooldownWithoutAddr", func(c *Config) { c.Cooldown.Backend = "redis" }, true},
		{"RedisCooldownWithAddr", func(c *Config) {
			c.Cooldown.Backend = "redis"
			c.Redis.Addr = "localhost:6379"
		}, false},
		{"JWTWithoutSecret", func(c *Config) { c.Auth.TokenCodec = "jwt" }, true},
		{"ZeroPerCatch", func(c *Config) { c.Reward.PerCatch = 0 }, true},
		{"ZeroCapAllowed", func(c *Config) { c.Reward.DailyCap = 0 }, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
