package dailycap

import (
	"context"
	"testing"
	"time"

	"github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"
	errs "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/memory"
	clock "github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/time"
	persistencemocks "github.com/amirhossein-jamali/acorn-grove/mocks/port/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

func newMemoryTracker() (*Tracker, *clock.ManualTimeProvider) {
	tp := clock.NewManualTimeProvider(testNow)
	uow := memory.NewUnitOfWork(memory.NewStore())
	return NewTracker(uow, tp, entity.UTCDayPolicy(), DefaultDailyCap, logger.NewNoopLogger()), tp
}

func TestTracker_AwardClamps(t *testing.T) {
	ctx := context.Background()
	tracker, _ := newMemoryTracker()
	day := tracker.Today()

	award, err := tracker.Award(ctx, "u1", day, 295)
	require.NoError(t, err)
	assert.Equal(t, entity.CapAward{Granted: 295, Remaining: 5}, award)

	award, err = tracker.Award(ctx, "u1", day, 10)
	require.NoError(t, err)
	assert.Equal(t, entity.CapAward{Granted: 5, Remaining: 0}, award)

	award, err = tracker.Award(ctx, "u1", day, 10)
	require.NoError(t, err)
	assert.Equal(t, entity.CapAward{Granted: 0, Remaining: 0}, award)
}

func TestTracker_AwardedNeverDecreasesWithinDay(t *testing.T) {
	ctx := context.Background()
	tracker, _ := newMemoryTracker()
	day := tracker.Today()

	previous := int64(0)
	for _, requested := range []int64{10, 0, -5, 120, 200, 10} {
		_, err := tracker.Award(ctx, "u1", day, requested)
		require.NoError(t, err)

		limits, err := tracker.Limits(ctx, "u1")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, limits.AwardedToday, previous)
		assert.LessOrEqual(t, limits.AwardedToday, DefaultDailyCap)
		previous = limits.AwardedToday
	}
	assert.Equal(t, DefaultDailyCap, previous)
}

func TestTracker_NonPositiveRequestIsNoop(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockUow := persistencemocks.NewMockUnitOfWork(t)
	mockRepo := persistencemocks.NewMockDailyCapRepository(t)
	mockUow.EXPECT().GetDailyCapRepository(mock.Anything).Return(mockRepo)
	mockRepo.EXPECT().GetAwarded(ctx, "u1", "2024-06-01").Return(int64(120), nil)

	tracker := NewTracker(mockUow, clock.NewManualTimeProvider(testNow), entity.UTCDayPolicy(), 300, logger.NewNoopLogger())

	// Act
	award, err := tracker.Award(ctx, "u1", "2024-06-01", 0)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, entity.CapAward{Granted: 0, Remaining: 180}, award)
	mockRepo.AssertNotCalled(t, "Award", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTracker_NewDayResetsBudget(t *testing.T) {
	ctx := context.Background()
	tracker, tp := newMemoryTracker()

	_, err := tracker.Award(ctx, "u1", tracker.Today(), 300)
	require.NoError(t, err)

	limits, err := tracker.Limits(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), limits.RemainingToday)

	tp.Set(time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC))
	limits, err = tracker.Limits(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-02", limits.Day)
	assert.Equal(t, int64(300), limits.RemainingToday)
}

func TestTracker_RejectsMissingKeys(t *testing.T) {
	tracker, _ := newMemoryTracker()
	_, err := tracker.Award(context.Background(), "", "2024-06-01", 10)
	assert.ErrorIs(t, err, errs.ErrValidation)
}
