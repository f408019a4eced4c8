package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
)

// LedgerSource identifies what produced a ledger entry
type LedgerSource string

// Ledger sources
const (
	SourceFishing LedgerSource = "fishing"
	SourceMarket  LedgerSource = "market"
)

// LedgerEntry is an append-only audit record of one wallet and inventory mutation
type LedgerEntry struct {
	ID           uint64
	UserID       string
	Source       LedgerSource
	Item         string
	ItemDelta    int64
	AcornDelta   int64
	BalanceAfter int64
	CreatedAt    time.Time
}

// NewLedgerEntry creates a validated ledger entry
func NewLedgerEntry(
	userID string,
	source LedgerSource,
	item string,
	itemDelta, acornDelta, balanceAfter int64,
	timeProvider coreport.TimeProvider,
) (*LedgerEntry, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: ledger entry without user", errs.ErrValidation)
	}
	if source != SourceFishing && source != SourceMarket {
		return nil, fmt.Errorf("%w: unknown ledger source %q", errs.ErrValidation, source)
	}
	if balanceAfter < 0 {
		return nil, fmt.Errorf("%w: negative balance %d", errs.ErrValidation, balanceAfter)
	}

	return &LedgerEntry{
		UserID:       userID,
		Source:       source,
		Item:         item,
		ItemDelta:    itemDelta,
		AcornDelta:   acornDelta,
		BalanceAfter: balanceAfter,
		CreatedAt:    timeProvider.Now(),
	}, nil
}
