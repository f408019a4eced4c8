package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var gormLevels = map[string]logger.LogLevel{
	"silent": logger.Silent,
	"error":  logger.Error,
	"warn":   logger.Warn,
	"info":   logger.Info,
	"debug":  logger.Info,
}

// DatabaseLogger routes gorm output into the application logger
type DatabaseLogger struct {
	log           coreport.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
	timeProvider  coreport.TimeProvider
}

// NewDatabaseLogger creates a gorm logger. Unknown levels fall back to warn.
func NewDatabaseLogger(log coreport.Logger, timeProvider coreport.TimeProvider, level string, slowThreshold time.Duration) logger.Interface {
	lvl, ok := gormLevels[strings.ToLower(level)]
	if !ok {
		lvl = logger.Warn
	}
	return &DatabaseLogger{
		log:           log.With(map[string]any{"source": "database"}),
		level:         lvl,
		slowThreshold: slowThreshold,
		timeProvider:  timeProvider,
	}
}

// LogMode returns a copy at level
func (l *DatabaseLogger) LogMode(level logger.LogLevel) logger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *DatabaseLogger) Info(_ context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Info {
		l.log.Info(fmt.Sprintf(msg, data...), nil)
	}
}

func (l *DatabaseLogger) Warn(_ context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Warn {
		l.log.Warn(fmt.Sprintf(msg, data...), nil)
	}
}

func (l *DatabaseLogger) Error(_ context.Context, msg string, data ...interface{}) {
	if l.level >= logger.Error {
		l.log.Error(fmt.Sprintf(msg, data...), nil)
	}
}

// Trace logs failed statements at error, slow ones at warn and the rest at debug.
// gorm.ErrRecordNotFound is an ordinary miss for wallet and stack lookups and is not an error here.
func (l *DatabaseLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= logger.Silent {
		return
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		err = nil
	}

	elapsed := l.timeProvider.Since(begin)
	failed := err != nil && l.level >= logger.Error
	slow := l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn
	if !failed && !slow && l.level < logger.Info {
		return
	}

	stmt, rows := fc()
	fields := map[string]any{
		"elapsed": elapsed.String(),
		"rows":    rows,
		"sql":     stmt,
	}
	if kind := extractQueryType(stmt); kind != "" {
		fields["type"] = kind
	}
	if table := extractTableName(stmt); table != "" {
		fields["table"] = table
	}

	switch {
	case failed:
		fields["error"] = err.Error()
		l.log.Error("SQL Error", fields)
	case slow:
		l.log.Warn("Slow SQL Query", fields)
	default:
		l.log.Debug("SQL Query", fields)
	}
}

// extractQueryType returns SELECT, INSERT, UPDATE or DELETE, or "" for anything else
func extractQueryType(stmt string) string {
	words := strings.Fields(stmt)
	if len(words) == 0 {
		return ""
	}
	switch kind := strings.ToUpper(words[0]); kind {
	case "SELECT", "INSERT", "UPDATE", "DELETE":
		return kind
	}
	return ""
}

// extractTableName returns the first table a statement names, lowercased and unquoted
func extractTableName(stmt string) string {
	words := strings.Fields(stmt)
	for i, w := range words {
		upper := strings.ToUpper(w)
		next := i + 1 < len(words)
		if next && (upper == "FROM" || upper == "INTO" || (i == 0 && upper == "UPDATE")) {
			return strings.ToLower(strings.Trim(words[i+1], `"`))
		}
	}
	return ""
}
