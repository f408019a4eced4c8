package account

import (
	"context"
	"errors"
	"testing"

	"github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"
	errs "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/acorn-grove/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/acorn-grove/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestService_Wallet(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockLedger := persistencemocks.NewMockLedgerRepository(t)
		mockLogger := coremocks.NewMockLogger(t)
		mockLedger.EXPECT().GetWallet(ctx, "u1").Return(int64(25), nil)

		service := NewService(mockLedger, mockLogger)

		// Act
		wallet, err := service.Wallet(ctx, "u1")

		// Assert
		require.NoError(t, err)
		assert.Equal(t, &entity.Wallet{UserID: "u1", Acorns: 25}, wallet)
	})

	t.Run("Storage failure", func(t *testing.T) {
		// Arrange
		mockLedger := persistencemocks.NewMockLedgerRepository(t)
		mockLogger := coremocks.NewMockLogger(t)
		storageErr := errs.NewStorageError("get_wallet", "u1", errors.New("timeout"))
		mockLedger.EXPECT().GetWallet(ctx, "u1").Return(int64(0), storageErr)
		mockLogger.EXPECT().Error("Failed to read wallet", mock.Anything).Return()

		service := NewService(mockLedger, mockLogger)

		// Act
		wallet, err := service.Wallet(ctx, "u1")

		// Assert
		assert.Nil(t, wallet)
		assert.ErrorIs(t, err, errs.ErrStorageUnavailable)
	})
}

func TestService_Inventory(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty inventory is not nil", func(t *testing.T) {
		mockLedger := persistencemocks.NewMockLedgerRepository(t)
		mockLedger.EXPECT().ListInventory(ctx, "u1").Return(nil, nil)

		items, err := NewService(mockLedger, coremocks.NewMockLogger(t)).Inventory(ctx, "u1")

		require.NoError(t, err)
		assert.NotNil(t, items)
		assert.Empty(t, items)
	})

	t.Run("Returns stacks", func(t *testing.T) {
		mockLedger := persistencemocks.NewMockLedgerRepository(t)
		stacks := []entity.InventoryItem{{Item: entity.ItemAlgae, Qty: 2}, {Item: entity.ItemFish, Qty: 7}}
		mockLedger.EXPECT().ListInventory(ctx, "u1").Return(stacks, nil)

		items, err := NewService(mockLedger, coremocks.NewMockLogger(t)).Inventory(ctx, "u1")

		require.NoError(t, err)
		assert.Equal(t, stacks, items)
	})
}
