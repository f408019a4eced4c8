package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "GROVE"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment.
// A missing config file is not an error, defaults and environment variables still apply.
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env

	processDurations(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks settings that would otherwise fail at first use
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "postgres", "memory":
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	switch c.Cooldown.Backend {
	case "storage":
	case "redis":
		if c.Redis.Addr == "" {
			return errors.New("cooldown backend redis needs redis.addr")
		}
	default:
		return fmt.Errorf("unknown cooldown backend %q", c.Cooldown.Backend)
	}

	switch c.Auth.TokenCodec {
	case "raw":
	case "jwt":
		if c.Auth.JWTSecret == "" {
			return errors.New("jwt token codec needs auth.jwtSecret")
		}
	default:
		return fmt.Errorf("unknown token codec %q", c.Auth.TokenCodec)
	}

	if c.Reward.DailyCap < 0 || c.Reward.PerCatch <= 0 || c.Reward.FishingCooldown <= 0 {
		return errors.New("reward settings must be positive")
	}

	return nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return nil
			} else {
				lastError = err
			}
		}
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}

	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8787)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 15)      // seconds
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.allowedOrigins", []string{"*"})

	v.SetDefault("storage.driver", "postgres")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.username", "grove")
	v.SetDefault("database.database", "grove")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.slowThreshold", 200)  // milliseconds
	v.SetDefault("database.logLevel", "warn")
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds
	v.SetDefault("database.isolationLevel", "read committed")
	v.SetDefault("database.autoMigrate", true)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.poolSize", 20)
	v.SetDefault("redis.dialTimeout", 5)  // seconds
	v.SetDefault("redis.readTimeout", 3)  // seconds
	v.SetDefault("redis.writeTimeout", 3) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)

	v.SetDefault("auth.tokenCodec", "raw")
	v.SetDefault("auth.tokenTTL", 0) // hours

	v.SetDefault("reward.dailyCap", 300)
	v.SetDefault("reward.perCatch", 10)
	v.SetDefault("reward.fishingCooldown", 3000) // milliseconds
	v.SetDefault("reward.dayTimezone", "UTC")

	v.SetDefault("market.prices", map[string]int64{"fish": 10, "algae": 3})

	v.SetDefault("cooldown.backend", "storage")

	v.SetDefault("rateLimit.guestPerMinute", 30)
	v.SetDefault("rateLimit.guestBurst", 10)

	v.SetDefault("maintenance.enabled", true)
	v.SetDefault("maintenance.schedule", "@hourly")
	v.SetDefault("maintenance.cooldownRetention", 24) // hours
	v.SetDefault("maintenance.dailyAwardRetentionDays", 30)
	v.SetDefault("maintenance.lockTTL", 300) // seconds
}

// getEnvironment determines the environment to use based on GROVE_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values.
// Keys whose env name does not follow the dotted path are mapped here explicitly.
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"GROVE_DB_HOST":          "database.host",
		"GROVE_DB_USERNAME":      "database.username",
		"GROVE_DB_PASSWORD":      "database.password",
		"GROVE_DB_NAME":          "database.database",
		"GROVE_DB_SSL_MODE":      "database.sslMode",
		"GROVE_DB_ISOLATION":     "database.isolationLevel",
		"GROVE_STORAGE_DRIVER":   "storage.driver",
		"GROVE_REDIS_ADDR":       "redis.addr",
		"GROVE_REDIS_PASSWORD":   "redis.password",
		"GROVE_JWT_SECRET":       "auth.jwtSecret",
		"GROVE_TOKEN_CODEC":      "auth.tokenCodec",
		"GROVE_COOLDOWN_BACKEND": "cooldown.backend",
		"GROVE_DAY_TIMEZONE":     "reward.dayTimezone",
		"GROVE_SERVER_HOST":      "server.host",
		"GROVE_LOGGER_LEVEL":     "logger.level",
	}
	for env, key := range stringOverrides {
		if val := os.Getenv(env); val != "" {
			v.Set(key, val)
		}
	}

	intOverrides := map[string]string{
		"GROVE_DB_PORT":             "database.port",
		"GROVE_DB_MAX_OPEN_CONNS":   "database.maxOpenConns",
		"GROVE_DB_MAX_IDLE_CONNS":   "database.maxIdleConns",
		"GROVE_SERVER_PORT":         "server.port",
		"GROVE_REDIS_DB":            "redis.db",
		"GROVE_DAILY_CAP":           "reward.dailyCap",
		"GROVE_FISHING_COOLDOWN_MS": "reward.fishingCooldown",
	}
	for env, key := range intOverrides {
		if val := getEnvInt(env, -1); val >= 0 {
			v.Set(key, val)
		}
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.SlowThreshold = time.Duration(config.Database.SlowThreshold) * time.Millisecond
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.Redis.DialTimeout = time.Duration(config.Redis.DialTimeout) * time.Second
	config.Redis.ReadTimeout = time.Duration(config.Redis.ReadTimeout) * time.Second
	config.Redis.WriteTimeout = time.Duration(config.Redis.WriteTimeout) * time.Second

	config.Auth.TokenTTL = time.Duration(config.Auth.TokenTTL) * time.Hour

	config.Reward.FishingCooldown = time.Duration(config.Reward.FishingCooldown) * time.Millisecond

	config.Maintenance.CooldownRetention = time.Duration(config.Maintenance.CooldownRetention) * time.Hour
	config.Maintenance.LockTTL = time.Duration(config.Maintenance.LockTTL) * time.Second
}
