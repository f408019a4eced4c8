package repository

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"
	errs "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// LedgerRepository keeps wallets and inventory stacks in PostgreSQL.
// Each mutation is one upsert or conditional update so concurrent requests never lose an increment.
type LedgerRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewLedgerRepository creates a new LedgerRepository instance
func NewLedgerRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *LedgerRepository {
	return &LedgerRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreditWallet adds delta to the wallet, creating it on first use
func (r *LedgerRepository) CreditWallet(ctx context.Context, userID string, delta int64) (int64, error) {
	r.logger.Debug("Crediting wallet", map[string]any{
		"user_id": userID,
		"delta":   delta,
	})

	var acorns int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO wallets (user_id, acorns, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE
		SET acorns = wallets.acorns + EXCLUDED.acorns,
		    updated_at = EXCLUDED.updated_at
		RETURNING acorns`,
		userID, delta, r.timeProvider.Now(),
	).Scan(&acorns).Error
	if err != nil {
		return 0, storageFailure(r.logger, "credit_wallet", userID, err)
	}

	r.logger.Debug("Wallet credited", map[string]any{
		"user_id": userID,
		"acorns":  acorns,
	})
	return acorns, nil
}

// GetWallet returns the balance or 0 when the wallet does not exist
func (r *LedgerRepository) GetWallet(ctx context.Context, userID string) (int64, error) {
	var wallet model.Wallet
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Take(&wallet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, storageFailure(r.logger, "get_wallet", userID, err)
	}
	return wallet.Acorns, nil
}

// AddItem adds qty units to the stack, creating it on first use
func (r *LedgerRepository) AddItem(ctx context.Context, userID, item string, qty int64) (int64, error) {
	r.logger.Debug("Adding item", map[string]any{
		"user_id": userID,
		"item":    item,
		"qty":     qty,
	})

	var total int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO inventory_items (user_id, item, qty, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id, item) DO UPDATE
		SET qty = inventory_items.qty + EXCLUDED.qty,
		    updated_at = EXCLUDED.updated_at
		RETURNING qty`,
		userID, item, qty, r.timeProvider.Now(),
	).Scan(&total).Error
	if err != nil {
		return 0, storageFailure(r.logger, "add_item", userID, err)
	}
	return total, nil
}

// RemoveItem takes qty units only when the stack holds at least qty
func (r *LedgerRepository) RemoveItem(ctx context.Context, userID, item string, qty int64) (int64, error) {
	r.logger.Debug("Removing item", map[string]any{
		"user_id": userID,
		"item":    item,
		"qty":     qty,
	})

	var remaining []int64
	err := r.db.WithContext(ctx).Raw(`
		UPDATE inventory_items
		SET qty = qty - ?, updated_at = ?
		WHERE user_id = ? AND item = ? AND qty >= ?
		RETURNING qty`,
		qty, r.timeProvider.Now(), userID, item, qty,
	).Scan(&remaining).Error
	if err != nil {
		return 0, storageFailure(r.logger, "remove_item", userID, err)
	}

	if len(remaining) == 0 {
		have, err := r.GetItemQty(ctx, userID, item)
		if err != nil {
			return 0, err
		}
		r.logger.Warn("Insufficient stock", map[string]any{
			"user_id":   userID,
			"item":      item,
			"requested": qty,
			"have":      have,
		})
		return 0, errs.NewInsufficientStockError(userID, item, qty, have)
	}

	return remaining[0], nil
}

// GetItemQty returns the stack size or 0 when absent
func (r *LedgerRepository) GetItemQty(ctx context.Context, userID, item string) (int64, error) {
	var stack model.InventoryItem
	err := r.db.WithContext(ctx).Where("user_id = ? AND item = ?", userID, item).Take(&stack).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, storageFailure(r.logger, "get_item_qty", userID, err)
	}
	return stack.Qty, nil
}

// ListInventory returns non-empty stacks ordered by item name
func (r *LedgerRepository) ListInventory(ctx context.Context, userID string) ([]entity.InventoryItem, error) {
	var stacks []model.InventoryItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND qty > 0", userID).
		Order("item ASC").
		Find(&stacks).Error
	if err != nil {
		return nil, storageFailure(r.logger, "list_inventory", userID, err)
	}

	items := make([]entity.InventoryItem, 0, len(stacks))
	for _, s := range stacks {
		items = append(items, entity.InventoryItem{Item: s.Item, Qty: s.Qty})
	}
	return items, nil
}
