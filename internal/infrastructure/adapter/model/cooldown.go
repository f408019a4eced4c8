package model

import (
	"time"
)

// Cooldown records when an action becomes usable again for a user
type Cooldown struct {
	UserID    string    `gorm:"primaryKey;type:varchar(36)"`
	Action    string    `gorm:"primaryKey;size:32"`
	ReadyAt   time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Cooldown
func (Cooldown) TableName() string {
	return "cooldowns"
}

// DailyAward counts the capped acorns a user earned on one day key
type DailyAward struct {
	UserID    string    `gorm:"primaryKey;type:varchar(36)"`
	Day       string    `gorm:"primaryKey;type:char(10);index"`
	Awarded   int64     `gorm:"not null;default:0;check:chk_daily_awards_awarded_non_negative,awarded >= 0"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for DailyAward
func (DailyAward) TableName() string {
	return "daily_awards"
}
