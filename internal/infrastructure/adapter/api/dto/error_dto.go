package dto

import (
	"errors"

	domainerr "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
)

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Error          string `json:"error"`
	Message        string `json:"message"`
	RetryInMs      *int64 `json:"retryInMs,omitempty"`
	RetryInSeconds *int64 `json:"retryInSeconds,omitempty"`
	Have           *int64 `json:"have,omitempty"`
}

// NewErrorResponse builds the response body for err.
// Internal failures get a generic message.
func NewErrorResponse(err error) ErrorResponse {
	code := domainerr.ErrorCode(err)
	resp := ErrorResponse{
		Error:   code,
		Message: err.Error(),
	}

	switch code {
	case domainerr.CodeInternal:
		resp.Message = "Internal server error"
	case domainerr.CodeUnauthenticated:
		resp.Message = "Missing or invalid bearer token"
	}

	var cd *domainerr.CooldownError
	if errors.As(err, &cd) {
		ms, secs := cd.RetryInMs(), cd.RetryInSeconds()
		resp.RetryInMs = &ms
		resp.RetryInSeconds = &secs
		resp.Message = "Action is cooling down"
	}

	var se *domainerr.InsufficientStockError
	if errors.As(err, &se) {
		have := se.Have
		resp.Have = &have
		resp.Message = "Not enough " + se.Item
	}

	return resp
}

// NewRateLimitedResponse builds the body for a request refused by the rate limiter
func NewRateLimitedResponse(retryInMs int64) ErrorResponse {
	secs := (retryInMs + 999) / 1000
	return ErrorResponse{
		Error:          domainerr.CodeRateLimited,
		Message:        "Too many requests",
		RetryInMs:      &retryInMs,
		RetryInSeconds: &secs,
	}
}
