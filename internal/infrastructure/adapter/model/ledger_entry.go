package model

import (
	"time"
)

// LedgerEntry represents the audit row written for every wallet and inventory mutation
type LedgerEntry struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	UserID       string    `gorm:"not null;type:varchar(36)"`
	Source       string    `gorm:"not null;size:20"`
	Item         string    `gorm:"not null;size:32"`
	ItemDelta    int64     `gorm:"not null"`
	AcornDelta   int64     `gorm:"not null"`
	BalanceAfter int64     `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for LedgerEntry
func (LedgerEntry) TableName() string {
	return "ledger_entries"
}

// ChatMessage is one persisted chat line
type ChatMessage struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Channel   string    `gorm:"not null;size:32"`
	UserID    string    `gorm:"not null;type:varchar(36)"`
	Text      string    `gorm:"not null;type:text"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for ChatMessage
func (ChatMessage) TableName() string {
	return "chat_messages"
}
