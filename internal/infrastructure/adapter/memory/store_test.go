package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"
	errs "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewLedgerRepository(NewStore())

	t.Run("Credit creates the wallet lazily", func(t *testing.T) {
		balance, err := repo.GetWallet(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance)

		balance, err = repo.CreditWallet(ctx, "u1", 0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance)

		balance, err = repo.CreditWallet(ctx, "u1", 15)
		require.NoError(t, err)
		assert.Equal(t, int64(15), balance)
	})

	t.Run("Remove never underflows", func(t *testing.T) {
		_, err := repo.AddItem(ctx, "u2", entity.ItemFish, 1)
		require.NoError(t, err)

		_, err = repo.RemoveItem(ctx, "u2", entity.ItemFish, 2)
		var stockErr *errs.InsufficientStockError
		require.True(t, errors.As(err, &stockErr))
		assert.Equal(t, int64(1), stockErr.Have)

		qty, err := repo.GetItemQty(ctx, "u2", entity.ItemFish)
		require.NoError(t, err)
		assert.Equal(t, int64(1), qty, "failed remove must not mutate")

		qty, err = repo.RemoveItem(ctx, "u2", entity.ItemFish, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(0), qty)
	})

	t.Run("Inventory is ordered by item", func(t *testing.T) {
		_, _ = repo.AddItem(ctx, "u3", entity.ItemFish, 2)
		_, _ = repo.AddItem(ctx, "u3", entity.ItemAlgae, 5)

		items, err := repo.ListInventory(ctx, "u3")
		require.NoError(t, err)
		assert.Equal(t, []entity.InventoryItem{
			{Item: entity.ItemAlgae, Qty: 5},
			{Item: entity.ItemFish, Qty: 2},
		}, items)
	})
}

func TestDailyCapRepositoryClamps(t *testing.T) {
	ctx := context.Background()
	repo := NewDailyCapRepository(NewStore())

	granted, awarded, err := repo.Award(ctx, "u1", "2024-01-01", 295, 300)
	require.NoError(t, err)
	assert.Equal(t, int64(295), granted)
	assert.Equal(t, int64(295), awarded)

	granted, awarded, err = repo.Award(ctx, "u1", "2024-01-01", 10, 300)
	require.NoError(t, err)
	assert.Equal(t, int64(5), granted)
	assert.Equal(t, int64(300), awarded)

	granted, _, err = repo.Award(ctx, "u1", "2024-01-01", 10, 300)
	require.NoError(t, err)
	assert.Equal(t, int64(0), granted)

	granted, _, err = repo.Award(ctx, "u1", "2024-01-02", 10, 300)
	require.NoError(t, err)
	assert.Equal(t, int64(10), granted, "a new day key starts a fresh budget")

	removed, err := repo.PurgeBefore(ctx, "2024-01-02")
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
}

func TestDailyCapRepositoryConcurrentAwardsNeverExceedCap(t *testing.T) {
	ctx := context.Background()
	repo := NewDailyCapRepository(NewStore())

	var wg sync.WaitGroup
	var mu sync.Mutex
	var total int64
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			granted, _, err := repo.Award(ctx, "u1", "2024-01-01", 7, 300)
			assert.NoError(t, err)
			mu.Lock()
			total += granted
			mu.Unlock()
		}()
	}
	wg.Wait()

	awarded, err := repo.GetAwarded(ctx, "u1", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, int64(300), awarded)
	assert.Equal(t, int64(300), total)
}

func TestCooldownRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCooldownRepository(NewStore())
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	allowed, readyAt, err := repo.TryConsume(ctx, "u1", "fishing", now, 3*time.Second)
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, now.Add(3*time.Second), readyAt)

	allowed, readyAt, err = repo.TryConsume(ctx, "u1", "fishing", now.Add(2999*time.Millisecond), 3*time.Second)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, now.Add(3*time.Second), readyAt)

	allowed, _, err = repo.TryConsume(ctx, "u1", "fishing", now.Add(3*time.Second), 3*time.Second)
	require.NoError(t, err)
	assert.True(t, allowed)

	removed, err := repo.PurgeExpired(ctx, now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
}

func TestUnitOfWorkRollback(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	uow := NewUnitOfWork(store)

	txCtx, err := uow.Begin(ctx)
	require.NoError(t, err)
	_, err = uow.GetLedgerRepository(txCtx).AddItem(txCtx, "u1", entity.ItemFish, 1)
	require.NoError(t, err)
	_, err = uow.GetLedgerRepository(txCtx).CreditWallet(txCtx, "u1", 10)
	require.NoError(t, err)
	require.NoError(t, uow.Rollback(txCtx))

	ledger := NewLedgerRepository(store)
	qty, _ := ledger.GetItemQty(ctx, "u1", entity.ItemFish)
	acorns, _ := ledger.GetWallet(ctx, "u1")
	assert.Equal(t, int64(0), qty)
	assert.Equal(t, int64(0), acorns)

	// a second rollback and a commit after rollback are handled
	assert.NoError(t, uow.Rollback(txCtx))
	assert.Error(t, uow.Commit(txCtx))
	assert.Error(t, uow.Commit(ctx))
}

func TestUnitOfWorkCommit(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	uow := NewUnitOfWork(store)

	txCtx, err := uow.Begin(ctx)
	require.NoError(t, err)
	_, err = uow.GetLedgerRepository(txCtx).CreditWallet(txCtx, "u1", 10)
	require.NoError(t, err)
	require.NoError(t, uow.Commit(txCtx))
	require.NoError(t, uow.Rollback(txCtx))

	acorns, _ := NewLedgerRepository(store).GetWallet(ctx, "u1")
	assert.Equal(t, int64(10), acorns)
}

func TestChatRepositoryListRecent(t *testing.T) {
	ctx := context.Background()
	repo := NewChatRepository(NewStore())

	for _, text := range []string{"one", "two", "three"} {
		require.NoError(t, repo.Append(ctx, &entity.ChatMessage{Channel: "global", UserID: "u1", Text: text}))
	}
	require.NoError(t, repo.Append(ctx, &entity.ChatMessage{Channel: "other", UserID: "u1", Text: "x"}))

	msgs, err := repo.ListRecent(ctx, "global", 2)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "two", msgs[0].Text)
	assert.Equal(t, "three", msgs[1].Text)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())

	require.NoError(t, repo.Create(ctx, &entity.User{ID: "u1", Handle: "guest_abcdef"}))
	assert.ErrorIs(t, repo.Create(ctx, &entity.User{ID: "u1", Handle: "guest_zzzzzz"}), errs.ErrDuplicateUser)

	user, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "guest_abcdef", user.Handle)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}
