package model

import (
	"time"
)

// User represents the database model for guest users
type User struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	Handle    string    `gorm:"not null;size:32;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
