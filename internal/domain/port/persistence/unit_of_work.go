package persistence

import (
	"context"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetLedgerRepository returns a ledger repository bound to the current transaction
	GetLedgerRepository(ctx context.Context) LedgerRepository

	// GetDailyCapRepository returns a daily cap repository bound to the current transaction
	GetDailyCapRepository(ctx context.Context) DailyCapRepository

	// GetLedgerEntryRepository returns an audit repository bound to the current transaction
	GetLedgerEntryRepository(ctx context.Context) LedgerEntryRepository
}
