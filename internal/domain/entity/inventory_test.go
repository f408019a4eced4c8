package entity

import (
	"math"
	"testing"

	errs "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateQuantity(t *testing.T) {
	t.Run("Valid quantities", func(t *testing.T) {
		testCases := []struct {
			input    float64
			expected int64
		}{
			{1, 1},
			{2, 2},
			{250, 250},
			{MaxQuantity, MaxQuantity},
		}

		for _, tc := range testCases {
			qty, err := ValidateQuantity(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, qty)
		}
	})

	t.Run("Invalid quantities", func(t *testing.T) {
		testCases := []struct {
			input       float64
			description string
		}{
			{0, "Zero"},
			{-1, "Negative"},
			{1.5, "Fractional"},
			{math.NaN(), "NaN"},
			{math.Inf(1), "Positive infinity"},
			{math.Inf(-1), "Negative infinity"},
			{MaxQuantity + 1, "Too large"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ValidateQuantity(tc.input)
				assert.ErrorIs(t, err, errs.ErrInvalidQuantity)
				assert.ErrorIs(t, err, errs.ErrValidation)
			})
		}
	})
}

func TestValidateItemName(t *testing.T) {
	item, err := ValidateItemName("  Fish ")
	require.NoError(t, err)
	assert.Equal(t, ItemFish, item)

	_, err = ValidateItemName("")
	assert.ErrorIs(t, err, errs.ErrInvalidItem)

	_, err = ValidateItemName("an_item_name_that_is_far_too_long_to_store")
	assert.ErrorIs(t, err, errs.ErrInvalidItem)
}
