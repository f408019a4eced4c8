package reward

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"
	errs "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
	"github.com/amirhossein-jamali/acorn-grove/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/acorn-grove/internal/domain/usecase/cooldown"
	"github.com/amirhossein-jamali/acorn-grove/internal/domain/usecase/dailycap"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/memory"
	clock "github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/time"
	persistencemocks "github.com/amirhossein-jamali/acorn-grove/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

type txMarker struct{}

type fixture struct {
	issuer *Issuer
	clock  *clock.ManualTimeProvider
	uow    persistence.UnitOfWork
	store  *memory.Store
}

func newFixture(dailyCap int64) *fixture {
	store := memory.NewStore()
	tp := clock.NewManualTimeProvider(testNow)
	uow := memory.NewUnitOfWork(store)
	log := logger.NewNoopLogger()

	gate := cooldown.NewGate(memory.NewCooldownRepository(store), tp, log)
	tracker := dailycap.NewTracker(uow, tp, entity.UTCDayPolicy(), dailyCap, log)

	return &fixture{
		issuer: NewIssuer(gate, tracker, uow, tp, log, DefaultConfig()),
		clock:  tp,
		uow:    uow,
		store:  store,
	}
}

func TestIssuer_FirstCatchOfTheDay(t *testing.T) {
	f := newFixture(dailycap.DefaultDailyCap)

	result, err := f.issuer.ClaimFishingReward(context.Background(), "u1", true)

	require.NoError(t, err)
	assert.Equal(t, int64(10), result.Gained)
	assert.Equal(t, int64(10), result.Acorns)
	assert.Equal(t, entity.InventoryItem{Item: entity.ItemFish, Qty: 1}, result.Item)
	assert.Equal(t, int64(290), result.RemainingToday)
	assert.False(t, result.Capped)
}

func TestIssuer_SecondCatchWithinCooldown(t *testing.T) {
	ctx := context.Background()
	f := newFixture(dailycap.DefaultDailyCap)

	_, err := f.issuer.ClaimFishingReward(ctx, "u1", true)
	require.NoError(t, err)

	f.clock.Advance(1800 * time.Millisecond)
	_, err = f.issuer.ClaimFishingReward(ctx, "u1", true)

	require.Error(t, err)
	var cd *errs.CooldownError
	require.True(t, errors.As(err, &cd))
	assert.Equal(t, int64(1200), cd.RetryInMs())
	assert.Equal(t, int64(2), cd.RetryInSeconds())
	assert.Equal(t, errs.CodeCooldown, errs.ErrorCode(err))

	// nothing was credited by the rejected claim
	acorns, err := f.uow.GetLedgerRepository(ctx).GetWallet(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), acorns)

	f.clock.Advance(1200 * time.Millisecond)
	result, err := f.issuer.ClaimFishingReward(ctx, "u1", true)
	require.NoError(t, err)
	assert.Equal(t, int64(20), result.Acorns)
	assert.Equal(t, int64(2), result.Item.Qty)
}

func TestIssuer_CapClampsReward(t *testing.T) {
	ctx := context.Background()
	f := newFixture(dailycap.DefaultDailyCap)

	_, _, err := memory.NewDailyCapRepository(f.store).Award(ctx, "u1", "2024-06-01", 295, dailycap.DefaultDailyCap)
	require.NoError(t, err)

	result, err := f.issuer.ClaimFishingReward(ctx, "u1", true)
	require.NoError(t, err)
	assert.Equal(t, int64(5), result.Gained)
	assert.Equal(t, int64(0), result.RemainingToday)
	assert.True(t, result.Capped)

	f.clock.Advance(3 * time.Second)
	result, err = f.issuer.ClaimFishingReward(ctx, "u1", true)
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Gained)
	assert.Equal(t, int64(5), result.Acorns)
	assert.Equal(t, int64(2), result.Item.Qty, "the catch itself is still credited")
	assert.True(t, result.Capped)

	// the budget resets on the next day
	f.clock.Set(time.Date(2024, 6, 2, 0, 0, 1, 0, time.UTC))
	result, err = f.issuer.ClaimFishingReward(ctx, "u1", true)
	require.NoError(t, err)
	assert.Equal(t, int64(10), result.Gained)
	assert.Equal(t, int64(290), result.RemainingToday)
}

func TestIssuer_ConcurrentClaimsOnlyOneSucceeds(t *testing.T) {
	ctx := context.Background()
	f := newFixture(dailycap.DefaultDailyCap)

	const callers = 32
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		cooled    int
	)
	start := make(chan struct{})

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := f.issuer.ClaimFishingReward(ctx, "u1", true)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errs.IsCooldownError(err):
				cooled++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, callers-1, cooled)

	acorns, err := f.uow.GetLedgerRepository(ctx).GetWallet(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), acorns)
}

func TestIssuer_FailedCatchWritesNothing(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := persistencemocks.NewMockUnitOfWork(t)
	mockLedger := persistencemocks.NewMockLedgerRepository(t)
	mockCap := persistencemocks.NewMockDailyCapRepository(t)
	mockCooldown := persistencemocks.NewMockCooldownRepository(t)
	tp := clock.NewManualTimeProvider(testNow)
	log := logger.NewNoopLogger()

	mockUow.EXPECT().GetLedgerRepository(ctx).Return(mockLedger)
	mockUow.EXPECT().GetDailyCapRepository(ctx).Return(mockCap)
	mockLedger.EXPECT().GetWallet(ctx, "u1").Return(int64(40), nil)
	mockLedger.EXPECT().GetItemQty(ctx, "u1", entity.ItemFish).Return(int64(4), nil)
	mockCap.EXPECT().GetAwarded(ctx, "u1", "2024-06-01").Return(int64(40), nil)

	issuer := NewIssuer(
		cooldown.NewGate(mockCooldown, tp, log),
		dailycap.NewTracker(mockUow, tp, entity.UTCDayPolicy(), 300, log),
		mockUow, tp, log, DefaultConfig(),
	)

	// Act
	result, err := issuer.ClaimFishingReward(ctx, "u1", false)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &entity.FishingClaimResult{
		Gained:         0,
		Acorns:         40,
		Item:           entity.InventoryItem{Item: entity.ItemFish, Qty: 4},
		RemainingToday: 260,
		Capped:         false,
	}, result)
	mockCooldown.AssertNotCalled(t, "TryConsume", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockUow.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestIssuer_RollsBackWhenAuditFails(t *testing.T) {
	// Arrange
	ctx := context.Background()
	txCtx := context.WithValue(ctx, txMarker{}, "tx")
	mockUow := persistencemocks.NewMockUnitOfWork(t)
	mockLedger := persistencemocks.NewMockLedgerRepository(t)
	mockCap := persistencemocks.NewMockDailyCapRepository(t)
	mockEntries := persistencemocks.NewMockLedgerEntryRepository(t)
	mockCooldown := persistencemocks.NewMockCooldownRepository(t)
	tp := clock.NewManualTimeProvider(testNow)
	log := logger.NewNoopLogger()
	auditErr := errs.NewStorageError("append_ledger_entry", "u1", errors.New("disk full"))

	mockCooldown.EXPECT().TryConsume(ctx, "u1", "fishing", testNow, 3*time.Second).Return(true, testNow.Add(3*time.Second), nil)
	mockUow.EXPECT().Begin(ctx).Return(txCtx, nil)
	mockUow.EXPECT().GetLedgerRepository(txCtx).Return(mockLedger)
	mockUow.EXPECT().GetDailyCapRepository(txCtx).Return(mockCap)
	mockUow.EXPECT().GetLedgerEntryRepository(txCtx).Return(mockEntries)
	mockLedger.EXPECT().AddItem(txCtx, "u1", entity.ItemFish, int64(1)).Return(int64(1), nil)
	mockCap.EXPECT().Award(txCtx, "u1", "2024-06-01", int64(10), int64(300)).Return(int64(10), int64(10), nil)
	mockLedger.EXPECT().CreditWallet(txCtx, "u1", int64(10)).Return(int64(10), nil)
	mockEntries.EXPECT().Append(txCtx, mock.AnythingOfType("*entity.LedgerEntry")).Return(auditErr)
	mockUow.EXPECT().Rollback(txCtx).Return(nil)

	issuer := NewIssuer(
		cooldown.NewGate(mockCooldown, tp, log),
		dailycap.NewTracker(mockUow, tp, entity.UTCDayPolicy(), 300, log),
		mockUow, tp, log, DefaultConfig(),
	)

	// Act
	result, err := issuer.ClaimFishingReward(ctx, "u1", true)

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, errs.ErrStorageUnavailable)
	mockUow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestIssuer_RollbackLeavesMemoryStoreUntouched(t *testing.T) {
	ctx := context.Background()
	f := newFixture(dailycap.DefaultDailyCap)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()

	_, err := f.issuer.ClaimFishingReward(cancelled, "u1", true)
	require.Error(t, err)

	acorns, err := f.uow.GetLedgerRepository(ctx).GetWallet(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, acorns)
	qty, err := f.uow.GetLedgerRepository(ctx).GetItemQty(ctx, "u1", entity.ItemFish)
	require.NoError(t, err)
	assert.Zero(t, qty)
}
