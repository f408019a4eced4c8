package persistence

import (
	"context"

	"github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"
)

// LedgerRepository owns wallet balances and inventory quantities.
// Every mutation is a single atomic statement that creates the row when it is absent.
type LedgerRepository interface {
	// CreditWallet adds delta acorns and returns the new balance.
	// A zero delta still creates the wallet.
	CreditWallet(ctx context.Context, userID string, delta int64) (int64, error)

	// GetWallet returns the balance, 0 when the wallet does not exist yet
	GetWallet(ctx context.Context, userID string) (int64, error)

	// AddItem adds qty units of item and returns the new quantity
	AddItem(ctx context.Context, userID, item string, qty int64) (int64, error)

	// RemoveItem takes qty units of item and returns the remaining quantity.
	//
	// Possible errors:
	// - InsufficientStockError: the user holds fewer than qty; nothing is changed
	// - ErrStorageUnavailable: If the store cannot be reached
	RemoveItem(ctx context.Context, userID, item string, qty int64) (int64, error)

	// GetItemQty returns the quantity of item, 0 when absent
	GetItemQty(ctx context.Context, userID, item string) (int64, error)

	// ListInventory returns all stacks of the user ordered by item name
	ListInventory(ctx context.Context, userID string) ([]entity.InventoryItem, error)
}
