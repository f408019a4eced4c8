package dto

import "github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"

// ItemDTO is one inventory stack
type ItemDTO struct {
	Item string `json:"item"`
	Qty  int64  `json:"qty"`
}

// FishingClaimRequest is the body of POST /jobs/fishing/claim.
// A missing success flag counts as a failed catch.
type FishingClaimRequest struct {
	Success bool `json:"success"`
}

// FishingClaimResponse is returned for a processed claim
type FishingClaimResponse struct {
	OK             bool    `json:"ok"`
	Gained         int64   `json:"gained"`
	Acorns         int64   `json:"acorns"`
	Item           ItemDTO `json:"item"`
	RemainingToday int64   `json:"remainingToday"`
	Capped         bool    `json:"capped"`
}

// LimitsResponse is returned by GET /limits
type LimitsResponse struct {
	DailyCap       int64 `json:"dailyCap"`
	AwardedToday   int64 `json:"awardedToday"`
	RemainingToday int64 `json:"remainingToday"`
}

// NewItemDTO converts an inventory stack
func NewItemDTO(item entity.InventoryItem) ItemDTO {
	return ItemDTO{Item: item.Item, Qty: item.Qty}
}

// NewFishingClaimResponse converts a claim result
func NewFishingClaimResponse(r *entity.FishingClaimResult) FishingClaimResponse {
	return FishingClaimResponse{
		OK:             true,
		Gained:         r.Gained,
		Acorns:         r.Acorns,
		Item:           NewItemDTO(r.Item),
		RemainingToday: r.RemainingToday,
		Capped:         r.Capped,
	}
}
