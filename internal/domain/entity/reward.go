package entity

import "time"

// CooldownDecision is the outcome of a cooldown check
type CooldownDecision struct {
	Allowed bool
	RetryIn time.Duration
}

// CapAward is the outcome of a daily cap award
type CapAward struct {
	Granted   int64
	Remaining int64
}

// DailyLimits describes a user's reward budget for one day
type DailyLimits struct {
	Day            string
	DailyCap       int64
	AwardedToday   int64
	RemainingToday int64
}

// FishingClaimResult is returned for every accepted fishing claim
type FishingClaimResult struct {
	Gained         int64
	Acorns         int64
	Item           InventoryItem
	RemainingToday int64
	Capped         bool
}

// SaleResult is returned for every completed sale
type SaleResult struct {
	Gained int64
	Acorns int64
	Item   InventoryItem
}
