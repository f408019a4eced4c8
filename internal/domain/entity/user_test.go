package entity

import (
	"regexp"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/acorn-grove/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser(" 6f1c ", "guest_abc123", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "6f1c", user.ID)
		assert.Equal(t, "guest_abc123", user.Handle)
		assert.Equal(t, fixedTime, user.CreatedAt)
	})

	t.Run("Empty ID should return error", func(t *testing.T) {
		user, err := NewUser("", "guest_abc123", mockTime)

		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Nil(t, user)
	})

	t.Run("Empty handle should return error", func(t *testing.T) {
		user, err := NewUser("6f1c", "  ", mockTime)

		assert.ErrorIs(t, err, errs.ErrValidation)
		assert.Nil(t, user)
	})
}

func TestGenerateGuestHandle(t *testing.T) {
	pattern := regexp.MustCompile(`^guest_[0-9a-z]{6}$`)
	seen := make(map[string]struct{})

	for i := 0; i < 50; i++ {
		handle, err := GenerateGuestHandle()
		require.NoError(t, err)
		assert.Regexp(t, pattern, handle)
		seen[handle] = struct{}{}
	}

	// 36^6 combinations make a collision in 50 draws practically impossible
	assert.Greater(t, len(seen), 45)
}
