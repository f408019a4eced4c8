package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config represents database configuration
type Config struct {
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	QueryTimeout    time.Duration
	SlowThreshold   time.Duration
	LogLevel        string
	RetryAttempts   int
	RetryDelay      time.Duration
	IsolationLevel  string
}

// DefaultConfig returns a Config with default values.
// Credentials are left empty and must come from configuration.
func DefaultConfig() *Config {
	return &Config{
		Port:            5432,
		SSLMode:         "disable",
		MaxOpenConns:    25,
		MaxIdleConns:    25,
		ConnMaxLifetime: 5 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
		QueryTimeout:    10 * time.Second,
		SlowThreshold:   200 * time.Millisecond,
		LogLevel:        "warn",
		RetryAttempts:   3,
		RetryDelay:      time.Second,
		IsolationLevel:  "read committed",
	}
}

var sslModes = map[string]bool{
	"disable":     true,
	"prefer":      true,
	"require":     true,
	"verify-ca":   true,
	"verify-full": true,
}

// Validate reports every problem in the configuration at once
func (c *Config) Validate() error {
	var problems []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Errorf(format, args...))
		}
	}

	check(c.Host != "", "database host is required")
	check(c.Port > 0 && c.Port <= 65535, "invalid port number: %d", c.Port)
	check(c.Username != "", "database username is required")
	check(c.Database != "", "database name is required")
	check(sslModes[c.SSLMode], "invalid SSL mode: %s", c.SSLMode)
	check(c.MaxOpenConns > 0, "max open connections must be positive, got: %d", c.MaxOpenConns)
	check(c.MaxIdleConns > 0 && c.MaxIdleConns <= c.MaxOpenConns,
		"max idle connections must be between 1 and %d, got: %d", c.MaxOpenConns, c.MaxIdleConns)
	check(c.QueryTimeout > 0, "query timeout must be positive")
	check(c.RetryAttempts >= 1, "retry attempts must be at least 1, got: %d", c.RetryAttempts)
	check(c.RetryDelay >= 0, "retry delay must be non-negative, got: %s", c.RetryDelay)
	_, known := gormLevels[c.LogLevel]
	check(known, "invalid log level: %s", c.LogLevel)
	if _, err := ParseIsolationLevel(c.IsolationLevel); err != nil {
		problems = append(problems, err)
	}

	return errors.Join(problems...)
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
	)
}

// ParseIsolationLevel converts a configured isolation level name
func ParseIsolationLevel(level string) (sql.IsolationLevel, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "read committed":
		return sql.LevelReadCommitted, nil
	case "repeatable read":
		return sql.LevelRepeatableRead, nil
	case "serializable":
		return sql.LevelSerializable, nil
	default:
		return sql.LevelDefault, fmt.Errorf("unsupported isolation level: %s", level)
	}
}
