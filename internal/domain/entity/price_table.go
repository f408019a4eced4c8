package entity

import (
	"fmt"

	errs "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
)

// PriceTable maps item kinds to their acorn sale price.
// It is immutable once built and safe for concurrent reads.
type PriceTable struct {
	prices map[string]int64
}

// DefaultPrices are used when no price table is configured
func DefaultPrices() map[string]int64 {
	return map[string]int64{
		ItemFish:  10,
		ItemAlgae: 3,
	}
}

// NewPriceTable copies prices into a new table
func NewPriceTable(prices map[string]int64) (*PriceTable, error) {
	table := make(map[string]int64, len(prices))
	for item, price := range prices {
		name, err := ValidateItemName(item)
		if err != nil {
			return nil, err
		}
		if price < 0 {
			return nil, fmt.Errorf("%w: negative price %d for %s", errs.ErrValidation, price, name)
		}
		table[name] = price
	}
	return &PriceTable{prices: table}, nil
}

// Price returns the unit price of item, 0 for unknown items
func (p *PriceTable) Price(item string) int64 {
	return p.prices[item]
}

// SaleValue returns the acorns paid for qty units of item
func (p *PriceTable) SaleValue(item string, qty int64) int64 {
	return p.Price(item) * qty
}

// Snapshot returns a copy of the table
func (p *PriceTable) Snapshot() map[string]int64 {
	out := make(map[string]int64, len(p.prices))
	for k, v := range p.prices {
		out[k] = v
	}
	return out
}
