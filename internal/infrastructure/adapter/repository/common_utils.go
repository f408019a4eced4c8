package repository

import (
	"context"
	"errors"
	"strings"

	errs "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	LockError         ErrorType = "lock"
	TransientError    ErrorType = "transient"
	ConstraintError   ErrorType = "constraint"
)

// classification order matters: a unique violation also mentions "constraint"
var errorPatterns = []struct {
	kind     ErrorType
	patterns []string
}{
	{DuplicateKeyError, []string{"duplicate key", "unique constraint"}},
	{LockError, []string{"deadlock", "lock timeout", "could not serialize access", "serialization"}},
	{TransientError, []string{"connection reset", "connection refused", "too many connections", "i/o timeout", "eof", "server closed", "broken pipe"}},
	{ConstraintError, []string{"violates check constraint", "violates foreign key", "violates not-null"}},
}

// ErrorClassifier sorts postgres driver errors by message
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of err, or "" when it matches nothing known
func (c *ErrorClassifier) Classify(err error) ErrorType {
	if err == nil {
		return ""
	}

	msg := strings.ToLower(err.Error())
	for _, group := range errorPatterns {
		for _, p := range group.patterns {
			if strings.Contains(msg, p) {
				return group.kind
			}
		}
	}
	return ""
}

// IsRetryable reports lock conflicts and dropped connections, which a second attempt can clear
func (c *ErrorClassifier) IsRetryable(err error) bool {
	kind := c.Classify(err)
	return kind == LockError || kind == TransientError
}

// IsDuplicateKeyError checks if the error is a unique violation
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	return c.Classify(err) == DuplicateKeyError
}

var classifier = NewErrorClassifier()

// storageFailure logs a failed statement and wraps it as a StorageError
func storageFailure(logger coreport.Logger, operation, userID string, err error) error {
	fields := map[string]any{
		"operation": operation,
		"user_id":   userID,
		"error":     err.Error(),
	}
	if kind := classifier.Classify(err); kind != "" {
		fields["error_kind"] = string(kind)
	}

	if isContextError(err) {
		logger.Warn("Database operation cancelled", fields)
	} else {
		logger.Error("Database operation failed", fields)
	}
	return errs.NewStorageError(operation, userID, err)
}

// isContextError checks if an error is related to context timeout or cancellation
func isContextError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}

	msg := err.Error()
	return strings.Contains(msg, "context deadline exceeded") ||
		strings.Contains(msg, "context canceled")
}
