package entity

import (
	"fmt"
	"math"
	"strings"

	errs "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
)

// Known item kinds
const (
	ItemFish  = "fish"
	ItemAlgae = "algae"
)

const (
	// MaxItemNameLength bounds item names accepted from clients
	MaxItemNameLength = 32

	// MaxQuantity bounds a single sale so that price * qty cannot overflow
	MaxQuantity = 1_000_000
)

// InventoryItem is one stack of items owned by a user
type InventoryItem struct {
	Item string
	Qty  int64
}

// Wallet is the acorn balance of a user
type Wallet struct {
	UserID string
	Acorns int64
}

// ValidateItemName trims and checks an item name
func ValidateItemName(item string) (string, error) {
	item = strings.ToLower(strings.TrimSpace(item))
	if item == "" {
		return "", fmt.Errorf("%w: empty value", errs.ErrInvalidItem)
	}
	if len(item) > MaxItemNameLength {
		return "", fmt.Errorf("%w: longer than %d characters", errs.ErrInvalidItem, MaxItemNameLength)
	}
	return item, nil
}

// ValidateQuantity converts a client supplied quantity into a positive whole number.
// JSON numbers arrive as float64, so fractional, non-finite and non-positive values are all rejected here.
func ValidateQuantity(qty float64) (int64, error) {
	switch {
	case math.IsNaN(qty) || math.IsInf(qty, 0):
		return 0, fmt.Errorf("%w: not a finite number", errs.ErrInvalidQuantity)
	case qty <= 0:
		return 0, fmt.Errorf("%w: must be greater than zero", errs.ErrInvalidQuantity)
	case qty != math.Trunc(qty):
		return 0, fmt.Errorf("%w: must be a whole number", errs.ErrInvalidQuantity)
	case qty > MaxQuantity:
		return 0, fmt.Errorf("%w: must not exceed %d", errs.ErrInvalidQuantity, MaxQuantity)
	}
	return int64(qty), nil
}
