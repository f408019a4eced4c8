package market

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"
	errs "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
	"github.com/amirhossein-jamali/acorn-grove/internal/domain/port/persistence"
)

// Exchange converts inventory into acorns at fixed prices.
// Sales are neither capped nor rate limited.
type Exchange struct {
	uow          persistence.UnitOfWork
	prices       *entity.PriceTable
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewExchange creates a new market exchange
func NewExchange(
	uow persistence.UnitOfWork,
	prices *entity.PriceTable,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Exchange {
	return &Exchange{
		uow:          uow,
		prices:       prices,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Sell removes qty units of item and credits their value.
// The decrement is conditional so the inventory can never go negative.
func (e *Exchange) Sell(ctx context.Context, userID, item string, qty float64) (*entity.SaleResult, error) {
	item, err := entity.ValidateItemName(item)
	if err != nil {
		return nil, err
	}
	units, err := entity.ValidateQuantity(qty)
	if err != nil {
		return nil, err
	}

	txCtx, err := e.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	result, err := e.applySale(txCtx, userID, item, units)
	if err != nil {
		e.rollback(txCtx, userID, err)
		return nil, err
	}

	if err := e.uow.Commit(txCtx); err != nil {
		e.rollback(txCtx, userID, err)
		return nil, err
	}

	e.logger.Info("Items sold", map[string]any{
		"user_id":   userID,
		"item":      item,
		"qty":       units,
		"gained":    result.Gained,
		"acorns":    result.Acorns,
		"remaining": result.Item.Qty,
	})
	return result, nil
}

// Prices returns a copy of the price table
func (e *Exchange) Prices() map[string]int64 {
	return e.prices.Snapshot()
}

func (e *Exchange) applySale(txCtx context.Context, userID, item string, units int64) (*entity.SaleResult, error) {
	ledger := e.uow.GetLedgerRepository(txCtx)

	remaining, err := ledger.RemoveItem(txCtx, userID, item, units)
	if err != nil {
		return nil, err
	}

	gained := e.prices.SaleValue(item, units)
	acorns, err := ledger.CreditWallet(txCtx, userID, gained)
	if err != nil {
		return nil, err
	}

	entry, err := entity.NewLedgerEntry(userID, entity.SourceMarket, item, -units, gained, acorns, e.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := e.uow.GetLedgerEntryRepository(txCtx).Append(txCtx, entry); err != nil {
		return nil, err
	}

	return &entity.SaleResult{
		Gained: gained,
		Acorns: acorns,
		Item:   entity.InventoryItem{Item: item, Qty: remaining},
	}, nil
}

func (e *Exchange) rollback(txCtx context.Context, userID string, cause error) {
	var stockErr *errs.InsufficientStockError
	if errors.As(cause, &stockErr) {
		e.logger.Warn("Sale rejected", stockErr.LogFields())
	} else {
		e.logger.Error("Sale failed, rolling back", map[string]any{
			"user_id": userID,
			"error":   cause.Error(),
		})
	}

	if err := e.uow.Rollback(txCtx); err != nil {
		e.logger.Error("Failed to roll back sale", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}
