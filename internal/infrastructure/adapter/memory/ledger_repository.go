package memory

import (
	"context"
	"sort"

	"github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"
	errs "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
)

// LedgerRepository keeps wallets and inventory in a Store
type LedgerRepository struct {
	store *Store
}

// NewLedgerRepository creates a ledger repository over store
func NewLedgerRepository(store *Store) *LedgerRepository {
	return &LedgerRepository{store: store}
}

func (r *LedgerRepository) CreditWallet(ctx context.Context, userID string, delta int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	balance := r.store.wallets[userID] + delta
	if balance < 0 {
		return 0, errs.NewStorageError("credit_wallet", userID, errs.ErrInternalServer)
	}
	r.store.wallets[userID] = balance
	return balance, nil
}

func (r *LedgerRepository) GetWallet(ctx context.Context, userID string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.wallets[userID], nil
}

func (r *LedgerRepository) AddItem(ctx context.Context, userID, item string, qty int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := itemKey{userID: userID, item: item}
	r.store.inventory[key] += qty
	return r.store.inventory[key], nil
}

func (r *LedgerRepository) RemoveItem(ctx context.Context, userID, item string, qty int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := itemKey{userID: userID, item: item}
	have := r.store.inventory[key]
	if have < qty {
		return 0, errs.NewInsufficientStockError(userID, item, qty, have)
	}
	r.store.inventory[key] = have - qty
	return have - qty, nil
}

func (r *LedgerRepository) GetItemQty(ctx context.Context, userID, item string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.inventory[itemKey{userID: userID, item: item}], nil
}

func (r *LedgerRepository) ListInventory(ctx context.Context, userID string) ([]entity.InventoryItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	items := make([]entity.InventoryItem, 0)
	for key, qty := range r.store.inventory {
		if key.userID == userID {
			items = append(items, entity.InventoryItem{Item: key.item, Qty: qty})
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Item < items[j].Item })
	return items, nil
}
