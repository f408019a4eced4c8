package model

import "time"

// MigrationVersion is one applied schema version
type MigrationVersion struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Version   string    `gorm:"type:varchar(20);not null;index"`
	AppliedAt time.Time `gorm:"not null;index"`
	Steps     string    `gorm:"type:text;not null;default:''"` // comma separated step names
	Details   string    `gorm:"type:text"`
}

func (MigrationVersion) TableName() string {
	return "migration_versions"
}
