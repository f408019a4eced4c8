package entity

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/acorn-grove/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLedgerEntry(t *testing.T) {
	fixedTime := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	entry, err := NewLedgerEntry("u1", SourceMarket, ItemFish, -2, 20, 35, mockTime)
	require.NoError(t, err)
	assert.Equal(t, int64(-2), entry.ItemDelta)
	assert.Equal(t, int64(20), entry.AcornDelta)
	assert.Equal(t, fixedTime, entry.CreatedAt)

	_, err = NewLedgerEntry("", SourceFishing, ItemFish, 1, 10, 10, mockTime)
	assert.ErrorIs(t, err, errs.ErrValidation)

	_, err = NewLedgerEntry("u1", LedgerSource("quest"), ItemFish, 1, 10, 10, mockTime)
	assert.ErrorIs(t, err, errs.ErrValidation)
}
