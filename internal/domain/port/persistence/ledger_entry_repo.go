package persistence

import (
	"context"

	"github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"
)

// LedgerEntryRepository appends audit records of ledger mutations
type LedgerEntryRepository interface {
	Append(ctx context.Context, entry *entity.LedgerEntry) error
	ListByUser(ctx context.Context, userID string, limit int) ([]*entity.LedgerEntry, error)
}
