package usecase

import (
	"context"

	"github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"
)

// RewardUseCase issues minigame rewards
type RewardUseCase interface {
	// ClaimFishingReward credits a reported catch.
	//
	// Possible errors:
	// - CooldownError: the previous accepted catch was less than the cooldown ago
	// - ErrStorageUnavailable: If the store cannot be reached
	ClaimFishingReward(ctx context.Context, userID string, success bool) (*entity.FishingClaimResult, error)

	// Limits reports the user's reward budget for the current day
	Limits(ctx context.Context, userID string) (*entity.DailyLimits, error)
}

// MarketUseCase sells inventory for acorns
type MarketUseCase interface {
	// Sell exchanges qty units of item for acorns at the configured price.
	//
	// Possible errors:
	// - ErrInvalidQuantity, ErrInvalidItem: bad parameters
	// - InsufficientStockError: the user holds fewer than qty
	Sell(ctx context.Context, userID, item string, qty float64) (*entity.SaleResult, error)

	// Prices returns a copy of the price table
	Prices() map[string]int64
}

// ChatUseCase relays and stores chat messages
type ChatUseCase interface {
	Send(ctx context.Context, userID, channel, text string) (*entity.ChatMessage, error)
	History(ctx context.Context, channel string, limit int) ([]*entity.ChatMessage, error)
}
