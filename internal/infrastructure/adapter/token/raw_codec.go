package token

import (
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
)

// RawCodec uses the user id itself as the bearer token
type RawCodec struct{}

var _ coreport.TokenCodec = RawCodec{}

// NewRawCodec creates a pass-through codec
func NewRawCodec() RawCodec {
	return RawCodec{}
}

// Encode returns the user id
func (RawCodec) Encode(userID string) (string, error) {
	if userID == "" {
		return "", fmt.Errorf("%w: empty user id", errs.ErrValidation)
	}
	return userID, nil
}

// Decode returns the trimmed token
func (RawCodec) Decode(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", errs.ErrUnauthenticated
	}
	return token, nil
}
