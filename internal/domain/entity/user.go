package entity

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
)

const (
	// GuestHandlePrefix starts every generated guest handle
	GuestHandlePrefix = "guest_"

	guestHandleSuffixLen = 6
	base36Alphabet       = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// User is a guest player
type User struct {
	ID        string
	Handle    string
	CreatedAt time.Time
}

// NewUser creates a user with the given id and handle
func NewUser(id, handle string, timeProvider coreport.TimeProvider) (*User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: user id cannot be empty", errs.ErrValidation)
	}
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return nil, fmt.Errorf("%w: handle cannot be empty", errs.ErrValidation)
	}

	return &User{
		ID:        id,
		Handle:    handle,
		CreatedAt: timeProvider.Now(),
	}, nil
}

// GenerateGuestHandle returns "guest_" followed by six random base36 characters
func GenerateGuestHandle() (string, error) {
	var sb strings.Builder
	sb.WriteString(GuestHandlePrefix)

	max := big.NewInt(int64(len(base36Alphabet)))
	for i := 0; i < guestHandleSuffixLen; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate guest handle: %w", err)
		}
		sb.WriteByte(base36Alphabet[n.Int64()])
	}

	return sb.String(), nil
}
