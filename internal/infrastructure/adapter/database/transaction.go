package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
	"github.com/amirhossein-jamali/acorn-grove/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

type txContextKey struct{}

var errNoTransaction = errors.New("no transaction found in context")

// UnitOfWork runs a claim or a sale in one postgres transaction carried by the context
type UnitOfWork struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	isolation    sql.IsolationLevel
}

// NewUnitOfWork creates a UnitOfWork whose transactions use isolationLevel
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider, isolationLevel string) (persistence.UnitOfWork, error) {
	isolation, err := ParseIsolationLevel(isolationLevel)
	if err != nil {
		return nil, err
	}
	return &UnitOfWork{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
		isolation:    isolation,
	}, nil
}

func txFrom(ctx context.Context) *gorm.DB {
	tx, _ := ctx.Value(txContextKey{}).(*gorm.DB)
	return tx
}

// Begin opens a transaction and returns a context carrying it
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	tx := u.db.WithContext(ctx).Begin(&sql.TxOptions{Isolation: u.isolation})
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{
			"error":     tx.Error.Error(),
			"isolation": u.isolation.String(),
		})
		return ctx, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	return context.WithValue(ctx, txContextKey{}, tx), nil
}

// Commit commits the transaction carried by ctx
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx := txFrom(ctx)
	if tx == nil {
		return errNoTransaction
	}
	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Rollback aborts the transaction carried by ctx.
// Use cases defer it after Commit, so a finished transaction is not an error.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx := txFrom(ctx)
	if tx == nil {
		return errNoTransaction
	}

	err := tx.Rollback().Error
	switch {
	case err == nil, errors.Is(err, sql.ErrTxDone):
		return nil
	default:
		u.logger.Error("Failed to rollback transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
}

// GetLedgerRepository returns a ledger repository bound to the transaction in ctx
func (u *UnitOfWork) GetLedgerRepository(ctx context.Context) persistence.LedgerRepository {
	return repository.NewLedgerRepository(u.conn(ctx), u.timeProvider, u.logger)
}

// GetDailyCapRepository returns a daily cap repository bound to the transaction in ctx
func (u *UnitOfWork) GetDailyCapRepository(ctx context.Context) persistence.DailyCapRepository {
	return repository.NewDailyCapRepository(u.conn(ctx), u.timeProvider, u.logger)
}

// GetLedgerEntryRepository returns an audit repository bound to the transaction in ctx
func (u *UnitOfWork) GetLedgerEntryRepository(ctx context.Context) persistence.LedgerEntryRepository {
	return repository.NewLedgerEntryRepository(u.conn(ctx), u.logger)
}

// conn falls back to a plain session outside a transaction
func (u *UnitOfWork) conn(ctx context.Context) *gorm.DB {
	if tx := txFrom(ctx); tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
