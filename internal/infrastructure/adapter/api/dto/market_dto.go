package dto

import "github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"

// SellRequest is the body of POST /market/sell
type SellRequest struct {
	Item string  `json:"item"`
	Qty  float64 `json:"qty"`
}

// SellResponse is returned for a completed sale
type SellResponse struct {
	OK     bool    `json:"ok"`
	Gained int64   `json:"gained"`
	Acorns int64   `json:"acorns"`
	Item   ItemDTO `json:"item"`
}

// NewSellResponse converts a sale result
func NewSellResponse(r *entity.SaleResult) SellResponse {
	return SellResponse{
		OK:     true,
		Gained: r.Gained,
		Acorns: r.Acorns,
		Item:   NewItemDTO(r.Item),
	}
}
