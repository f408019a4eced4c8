package model

import (
	"time"
)

// Wallet holds the acorn balance of one user
type Wallet struct {
	UserID    string    `gorm:"primaryKey;type:varchar(36)"`
	Acorns    int64     `gorm:"not null;default:0;check:chk_wallets_acorns_non_negative,acorns >= 0"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Wallet
func (Wallet) TableName() string {
	return "wallets"
}

// InventoryItem is one (user, item) stack
type InventoryItem struct {
	UserID    string    `gorm:"primaryKey;type:varchar(36)"`
	Item      string    `gorm:"primaryKey;size:32"`
	Qty       int64     `gorm:"not null;default:0;check:chk_inventory_items_qty_non_negative,qty >= 0"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for InventoryItem
func (InventoryItem) TableName() string {
	return "inventory_items"
}
