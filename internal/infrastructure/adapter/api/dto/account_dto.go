package dto

import "github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"

// WalletResponse is returned by GET /wallet
type WalletResponse struct {
	Acorns int64 `json:"acorns"`
}

// NewInventoryResponse converts inventory stacks, never returning nil
func NewInventoryResponse(items []entity.InventoryItem) []ItemDTO {
	out := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, NewItemDTO(item))
	}
	return out
}
