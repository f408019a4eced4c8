package market

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"
	errs "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
	"github.com/amirhossein-jamali/acorn-grove/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/memory"
	clock "github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/time"
	persistencemocks "github.com/amirhossein-jamali/acorn-grove/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMemoryExchange(t *testing.T) (*Exchange, persistence.UnitOfWork, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	uow := memory.NewUnitOfWork(store)
	prices, err := entity.NewPriceTable(entity.DefaultPrices())
	require.NoError(t, err)

	tp := clock.NewManualTimeProvider(time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC))
	return NewExchange(uow, prices, tp, logger.NewNoopLogger()), uow, store
}

func TestExchange_SellAfterCatch(t *testing.T) {
	ctx := context.Background()
	exchange, uow, store := newMemoryExchange(t)
	ledger := uow.GetLedgerRepository(ctx)

	_, err := ledger.AddItem(ctx, "u1", entity.ItemFish, 1)
	require.NoError(t, err)
	_, err = ledger.CreditWallet(ctx, "u1", 10)
	require.NoError(t, err)

	result, err := exchange.Sell(ctx, "u1", " Fish ", 1)

	require.NoError(t, err)
	assert.Equal(t, int64(10), result.Gained)
	assert.Equal(t, int64(20), result.Acorns)
	assert.Equal(t, entity.InventoryItem{Item: entity.ItemFish, Qty: 0}, result.Item)

	entries, err := memory.NewLedgerEntryRepository(store).ListByUser(ctx, "u1", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.SourceMarket, entries[0].Source)
	assert.Equal(t, int64(-1), entries[0].ItemDelta)
	assert.Equal(t, int64(20), entries[0].BalanceAfter)
}

func TestExchange_UnderflowIsRejectedWithoutMutation(t *testing.T) {
	ctx := context.Background()
	exchange, uow, _ := newMemoryExchange(t)
	ledger := uow.GetLedgerRepository(ctx)

	_, err := ledger.AddItem(ctx, "u1", entity.ItemFish, 1)
	require.NoError(t, err)

	result, err := exchange.Sell(ctx, "u1", entity.ItemFish, 2)

	assert.Nil(t, result)
	var stockErr *errs.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, int64(1), stockErr.Have)
	assert.Equal(t, int64(2), stockErr.Requested)
	assert.Equal(t, errs.CodeNotEnough, errs.ErrorCode(err))

	qty, err := ledger.GetItemQty(ctx, "u1", entity.ItemFish)
	require.NoError(t, err)
	assert.Equal(t, int64(1), qty)
	acorns, err := ledger.GetWallet(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, acorns)
}

func TestExchange_UnpricedItemSellsForNothing(t *testing.T) {
	ctx := context.Background()
	exchange, uow, _ := newMemoryExchange(t)

	_, err := uow.GetLedgerRepository(ctx).AddItem(ctx, "u1", "boot", 2)
	require.NoError(t, err)

	result, err := exchange.Sell(ctx, "u1", "boot", 2)

	require.NoError(t, err)
	assert.Zero(t, result.Gained)
	assert.Zero(t, result.Acorns)
	assert.Zero(t, result.Item.Qty)
}

func TestExchange_InvalidArgumentsNeverOpenTransaction(t *testing.T) {
	testCases := []struct {
		name     string
		item     string
		qty      float64
		expected error
	}{
		{"Zero", entity.ItemFish, 0, errs.ErrInvalidQuantity},
		{"Negative", entity.ItemFish, -3, errs.ErrInvalidQuantity},
		{"Fractional", entity.ItemFish, 1.5, errs.ErrInvalidQuantity},
		{"NaN", entity.ItemFish, math.NaN(), errs.ErrInvalidQuantity},
		{"Infinite", entity.ItemFish, math.Inf(1), errs.ErrInvalidQuantity},
		{"EmptyItem", "  ", 1, errs.ErrInvalidItem},
		{"LongItem", "abcdefghijklmnopqrstuvwxyz0123456789", 1, errs.ErrInvalidItem},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			mockUow := persistencemocks.NewMockUnitOfWork(t)
			prices, err := entity.NewPriceTable(entity.DefaultPrices())
			require.NoError(t, err)
			exchange := NewExchange(mockUow, prices, clock.NewManualTimeProvider(time.Now()), logger.NewNoopLogger())

			// Act
			result, err := exchange.Sell(context.Background(), "u1", tc.item, tc.qty)

			// Assert
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tc.expected)
			assert.Equal(t, errs.CodeBadParams, errs.ErrorCode(err))
			mockUow.AssertNotCalled(t, "Begin", mock.Anything)
		})
	}
}

func TestExchange_RollsBackWhenCreditFails(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := persistencemocks.NewMockUnitOfWork(t)
	mockLedger := persistencemocks.NewMockLedgerRepository(t)
	creditErr := errs.NewStorageError("credit_wallet", "u1", errors.New("connection reset"))

	mockUow.EXPECT().Begin(ctx).Return(ctx, nil)
	mockUow.EXPECT().GetLedgerRepository(ctx).Return(mockLedger)
	mockLedger.EXPECT().RemoveItem(ctx, "u1", entity.ItemAlgae, int64(3)).Return(int64(0), nil)
	mockLedger.EXPECT().CreditWallet(ctx, "u1", int64(9)).Return(int64(0), creditErr)
	mockUow.EXPECT().Rollback(ctx).Return(nil)

	prices, err := entity.NewPriceTable(entity.DefaultPrices())
	require.NoError(t, err)
	exchange := NewExchange(mockUow, prices, clock.NewManualTimeProvider(time.Now()), logger.NewNoopLogger())

	// Act
	result, err := exchange.Sell(ctx, "u1", entity.ItemAlgae, 3)

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, errs.ErrStorageUnavailable)
	mockUow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestExchange_Prices(t *testing.T) {
	exchange, _, _ := newMemoryExchange(t)

	prices := exchange.Prices()
	assert.Equal(t, int64(10), prices[entity.ItemFish])
	assert.Equal(t, int64(3), prices[entity.ItemAlgae])

	prices[entity.ItemFish] = 1000
	assert.Equal(t, int64(10), exchange.Prices()[entity.ItemFish])
}
