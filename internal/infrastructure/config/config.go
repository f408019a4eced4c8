package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string            `mapstructure:"environment"`
	Server      ServerConfig      `mapstructure:"server"`
	Storage     StorageConfig     `mapstructure:"storage"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Logger      LoggerConfig      `mapstructure:"logger"`
	Auth        AuthConfig        `mapstructure:"auth"`
	Reward      RewardConfig      `mapstructure:"reward"`
	Market      MarketConfig      `mapstructure:"market"`
	Cooldown    CooldownConfig    `mapstructure:"cooldown"`
	RateLimit   RateLimitConfig   `mapstructure:"rateLimit"`
	Maintenance MaintenanceConfig `mapstructure:"maintenance"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
}

// StorageConfig selects the ledger store
type StorageConfig struct {
	Driver string `mapstructure:"driver"` // postgres | memory
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	SlowThreshold   time.Duration `mapstructure:"slowThreshold"`   // milliseconds
	LogLevel        string        `mapstructure:"logLevel"`
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	IsolationLevel  string        `mapstructure:"isolationLevel"`
	AutoMigrate     bool          `mapstructure:"autoMigrate"`
}

// RedisConfig contains Redis connection settings. An empty address disables Redis.
type RedisConfig struct {
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"poolSize"`
	DialTimeout  time.Duration `mapstructure:"dialTimeout"`  // seconds
	ReadTimeout  time.Duration `mapstructure:"readTimeout"`  // seconds
	WriteTimeout time.Duration `mapstructure:"writeTimeout"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// AuthConfig selects the bearer token codec
type AuthConfig struct {
	TokenCodec string        `mapstructure:"tokenCodec"` // raw | jwt
	JWTSecret  string        `mapstructure:"jwtSecret"`
	TokenTTL   time.Duration `mapstructure:"tokenTTL"` // hours, 0 never expires
}

// RewardConfig describes the fishing reward
type RewardConfig struct {
	DailyCap        int64         `mapstructure:"dailyCap"`
	PerCatch        int64         `mapstructure:"perCatch"`
	FishingCooldown time.Duration `mapstructure:"fishingCooldown"` // milliseconds
	DayTimezone     string        `mapstructure:"dayTimezone"`
}

// MarketConfig holds the sale price of each item
type MarketConfig struct {
	Prices map[string]int64 `mapstructure:"prices"`
}

// CooldownConfig selects where cooldowns are stored
type CooldownConfig struct {
	Backend string `mapstructure:"backend"` // storage | redis
}

// RateLimitConfig limits guest sign-ups per client IP. Requires Redis.
type RateLimitConfig struct {
	GuestPerMinute int `mapstructure:"guestPerMinute"`
	GuestBurst     int `mapstructure:"guestBurst"`
}

// MaintenanceConfig schedules the purge of stale cooldown and daily cap rows
type MaintenanceConfig struct {
	Enabled                 bool          `mapstructure:"enabled"`
	Schedule                string        `mapstructure:"schedule"`
	CooldownRetention       time.Duration `mapstructure:"cooldownRetention"` // hours
	DailyAwardRetentionDays int           `mapstructure:"dailyAwardRetentionDays"`
	LockTTL                 time.Duration `mapstructure:"lockTTL"` // seconds
}
