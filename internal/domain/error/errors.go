package error

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"
)

// Error codes for standardized API responses
const (
	CodeUnauthenticated = "unauthenticated"
	CodeBadParams       = "bad_params"
	CodeCooldown        = "cooldown"
	CodeNotEnough       = "not_enough"
	CodeRateLimited     = "rate_limited"
	CodeInternal        = "internal"
)

// Base error types
var (
	// ErrUnauthenticated is returned when the bearer credential is missing or unknown
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrValidation is the parent of every request validation failure
	ErrValidation = errors.New("invalid parameters")

	// ErrInvalidQuantity is returned when a quantity is not a positive whole number
	ErrInvalidQuantity = fmt.Errorf("%w: quantity must be a positive whole number", ErrValidation)

	// ErrInvalidItem is returned when an item name is empty or too long
	ErrInvalidItem = fmt.Errorf("%w: invalid item name", ErrValidation)

	// ErrInvalidMessage is returned when a chat message is empty or too long
	ErrInvalidMessage = fmt.Errorf("%w: invalid chat message", ErrValidation)

	// ErrRateLimited is returned when an action is attempted before it is allowed again
	ErrRateLimited = errors.New("rate limited")

	// ErrInsufficientStock is returned when a user holds fewer items than requested
	ErrInsufficientStock = errors.New("not enough items")

	// ErrStorageUnavailable is returned when the ledger store cannot complete an operation
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateUser is returned when trying to create a user that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns the API error code for known errors
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrUserNotFound):
		return CodeUnauthenticated
	case errors.Is(err, ErrValidation):
		return CodeBadParams
	case errors.Is(err, ErrInsufficientStock):
		return CodeNotEnough
	case errors.Is(err, ErrRateLimited):
		if IsCooldownError(err) {
			return CodeCooldown
		}
		return CodeRateLimited
	default:
		return CodeInternal
	}
}

// HTTPStatus returns the HTTP status that corresponds to err
func HTTPStatus(err error) int {
	switch ErrorCode(err) {
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	case CodeBadParams, CodeNotEnough:
		return http.StatusBadRequest
	case CodeCooldown, CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// CooldownError carries the remaining wait of a denied cooldown check
type CooldownError struct {
	UserID  string
	Action  string
	RetryIn time.Duration
}

// Error implements the error interface
func (e *CooldownError) Error() string {
	return fmt.Sprintf("action %s for user %s is cooling down, retry in %dms",
		e.Action, e.UserID, e.RetryInMs())
}

// Is checks if the target error is an ErrRateLimited
func (e *CooldownError) Is(target error) bool {
	return target == ErrRateLimited
}

// RetryInMs returns the remaining wait in whole milliseconds
func (e *CooldownError) RetryInMs() int64 {
	return e.RetryIn.Milliseconds()
}

// RetryInSeconds returns the remaining wait rounded up to whole seconds
func (e *CooldownError) RetryInSeconds() int64 {
	return int64(math.Ceil(e.RetryIn.Seconds()))
}

// LogFields returns a map of fields for structured logging
func (e *CooldownError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "cooldown",
		"user_id":     e.UserID,
		"action":      e.Action,
		"retry_in_ms": e.RetryInMs(),
		"error_code":  CodeCooldown,
	}
}

// NewCooldownError creates a new cooldown error
func NewCooldownError(userID, action string, retryIn time.Duration) error {
	return &CooldownError{
		UserID:  userID,
		Action:  action,
		RetryIn: retryIn,
	}
}

// InsufficientStockError provides detailed error information for an inventory underflow
type InsufficientStockError struct {
	UserID    string
	Item      string
	Requested int64
	Have      int64
}

// Error implements the error interface
func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough %s for user %s: requested %d, have %d",
		e.Item, e.UserID, e.Requested, e.Have)
}

// Is checks if the target error is an ErrInsufficientStock
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientStockError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_stock",
		"user_id":    e.UserID,
		"item":       e.Item,
		"requested":  e.Requested,
		"have":       e.Have,
		"error_code": CodeNotEnough,
	}
}

// NewInsufficientStockError creates a new detailed insufficient stock error
func NewInsufficientStockError(userID, item string, requested, have int64) error {
	return &InsufficientStockError{
		UserID:    userID,
		Item:      item,
		Requested: requested,
		Have:      have,
	}
}

// StorageError wraps a failed ledger store operation
type StorageError struct {
	Operation string
	UserID    string
	Err       error
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return fmt.Sprintf("storage operation %s failed for user %s: %v", e.Operation, e.UserID, e.Err)
}

// Unwrap returns the underlying error
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrStorageUnavailable
func (e *StorageError) Is(target error) bool {
	return target == ErrStorageUnavailable
}

// LogFields returns a map of fields for structured logging
func (e *StorageError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "storage",
		"operation":  e.Operation,
		"user_id":    e.UserID,
		"error":      e.Err.Error(),
		"error_code": CodeInternal,
	}
}

// NewStorageError creates a storage error for the given operation
func NewStorageError(operation, userID string, err error) error {
	return &StorageError{
		Operation: operation,
		UserID:    userID,
		Err:       err,
	}
}

// IsCooldownError checks if the error is a cooldown denial
func IsCooldownError(err error) bool {
	var cd *CooldownError
	return errors.As(err, &cd)
}

// IsInsufficientStockError checks if the error is an inventory underflow
func IsInsufficientStockError(err error) bool {
	return errors.Is(err, ErrInsufficientStock)
}

// IsValidationError checks if the error is a request validation failure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}
