package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
		status   int
	}{
		{"Unauthenticated", ErrUnauthenticated, CodeUnauthenticated, http.StatusUnauthorized},
		{"UserNotFound", ErrUserNotFound, CodeUnauthenticated, http.StatusUnauthorized},
		{"InvalidQuantity", ErrInvalidQuantity, CodeBadParams, http.StatusBadRequest},
		{"InvalidItem", ErrInvalidItem, CodeBadParams, http.StatusBadRequest},
		{"Cooldown", NewCooldownError("u1", "fishing", time.Second), CodeCooldown, http.StatusTooManyRequests},
		{"PlainRateLimit", ErrRateLimited, CodeRateLimited, http.StatusTooManyRequests},
		{"NotEnough", NewInsufficientStockError("u1", "fish", 2, 1), CodeNotEnough, http.StatusBadRequest},
		{"Storage", NewStorageError("credit_wallet", "u1", errors.New("conn reset")), CodeInternal, http.StatusInternalServerError},
		{"Unknown", errors.New("boom"), CodeInternal, http.StatusInternalServerError},
		{"Wrapped", fmt.Errorf("sell: %w", ErrInvalidQuantity), CodeBadParams, http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ErrorCode(tc.err))
			assert.Equal(t, tc.status, HTTPStatus(tc.err))
		})
	}
}

func TestCooldownError(t *testing.T) {
	err := NewCooldownError("u1", "fishing", 2100*time.Millisecond)

	assert.ErrorIs(t, err, ErrRateLimited)
	assert.True(t, IsCooldownError(err))
	assert.True(t, IsCooldownError(fmt.Errorf("claim: %w", err)))
	assert.False(t, IsCooldownError(ErrRateLimited))

	var cd *CooldownError
	assert.True(t, errors.As(err, &cd))
	assert.Equal(t, int64(2100), cd.RetryInMs())
	assert.Equal(t, int64(3), cd.RetryInSeconds())
	assert.Equal(t, "fishing", cd.LogFields()["action"])
}

func TestCooldownErrorRetryInSecondsRoundsUp(t *testing.T) {
	testCases := []struct {
		retryIn  time.Duration
		expected int64
	}{
		{time.Millisecond, 1},
		{999 * time.Millisecond, 1},
		{time.Second, 1},
		{1001 * time.Millisecond, 2},
		{3 * time.Second, 3},
	}

	for _, tc := range testCases {
		t.Run(tc.retryIn.String(), func(t *testing.T) {
			cd := &CooldownError{RetryIn: tc.retryIn}
			assert.Equal(t, tc.expected, cd.RetryInSeconds())
		})
	}
}

func TestInsufficientStockError(t *testing.T) {
	err := NewInsufficientStockError("u1", "fish", 5, 2)

	assert.ErrorIs(t, err, ErrInsufficientStock)
	assert.True(t, IsInsufficientStockError(err))
	assert.Equal(t, "not enough fish for user u1: requested 5, have 2", err.Error())

	var se *InsufficientStockError
	assert.True(t, errors.As(err, &se))
	assert.Equal(t, int64(2), se.Have)
	assert.Equal(t, int64(2), se.LogFields()["have"])
}

func TestStorageError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStorageError("add_item", "u1", cause)

	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "add_item")
}

func TestValidationHierarchy(t *testing.T) {
	assert.True(t, IsValidationError(ErrInvalidQuantity))
	assert.True(t, IsValidationError(ErrInvalidItem))
	assert.True(t, IsValidationError(ErrInvalidMessage))
	assert.False(t, IsValidationError(ErrRateLimited))
}
