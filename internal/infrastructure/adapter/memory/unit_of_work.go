package memory

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/acorn-grove/internal/domain/port/persistence"
)

type txKey struct{}

type memTx struct {
	snap *snapshot
	done bool
}

// UnitOfWork runs one transaction at a time against a Store and undoes it on rollback
type UnitOfWork struct {
	store *Store
}

// NewUnitOfWork creates a unit of work over store
func NewUnitOfWork(store *Store) persistence.UnitOfWork {
	return &UnitOfWork{store: store}
}

// Begin waits for any running transaction and starts a new one
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if err := ctx.Err(); err != nil {
		return ctx, err
	}
	u.store.txMu.Lock()
	return context.WithValue(ctx, txKey{}, &memTx{snap: u.store.takeSnapshot()}), nil
}

// Commit keeps the changes made since Begin
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, err := u.activeTx(ctx)
	if err != nil {
		return err
	}
	tx.done = true
	u.store.txMu.Unlock()
	return nil
}

// Rollback discards the changes made since Begin.
// Rolling back a finished transaction is a no-op.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey{}).(*memTx)
	if !ok || tx == nil {
		return errors.New("no transaction found in context")
	}
	if tx.done {
		return nil
	}
	u.store.restore(tx.snap)
	tx.done = true
	u.store.txMu.Unlock()
	return nil
}

func (u *UnitOfWork) GetLedgerRepository(context.Context) persistence.LedgerRepository {
	return NewLedgerRepository(u.store)
}

func (u *UnitOfWork) GetDailyCapRepository(context.Context) persistence.DailyCapRepository {
	return NewDailyCapRepository(u.store)
}

func (u *UnitOfWork) GetLedgerEntryRepository(context.Context) persistence.LedgerEntryRepository {
	return NewLedgerEntryRepository(u.store)
}

func (u *UnitOfWork) activeTx(ctx context.Context) (*memTx, error) {
	tx, ok := ctx.Value(txKey{}).(*memTx)
	if !ok || tx == nil {
		return nil, errors.New("no transaction found in context")
	}
	if tx.done {
		return nil, errors.New("transaction has already been committed or rolled back")
	}
	return tx, nil
}
