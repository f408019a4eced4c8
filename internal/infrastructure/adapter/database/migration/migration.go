package migration

import (
	"context"
	"errors"
	"fmt"
	"strings"

	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

type step struct {
	name string
	run  func(db *gorm.DB) error
}

// schemaVersion is applied once, in order, inside one transaction
type schemaVersion struct {
	version string
	details string
	steps   []step
}

// MigrationManager brings the schema up to the latest version
type MigrationManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	versions     []schemaVersion
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	m := &MigrationManager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
	m.versions = []schemaVersion{
		{"1.0.0", "Ledger, cooldown and chat tables", []step{
			{"auto_migrate_models", autoMigrateModels},
			{"create_indexes", createIndexes},
		}},
		{"1.1.0", "Partial and BRIN indexes", []step{
			{"create_advanced_indexes", m.createAdvancedIndexes},
		}},
		{"1.2.0", "Fillfactor and statistics tuning", []step{
			{"apply_performance_tweaks", m.applyPerformanceTweaks},
		}},
	}
	return m
}

// LatestVersion is the version MigrateAll converges to
func (m *MigrationManager) LatestVersion() string {
	return m.versions[len(m.versions)-1].version
}

// pending returns the versions newer than current
func (m *MigrationManager) pending(current string) ([]schemaVersion, error) {
	if current == "" {
		return m.versions, nil
	}
	for i, v := range m.versions {
		if v.version == current {
			return m.versions[i+1:], nil
		}
	}
	return nil, fmt.Errorf("database reports unknown schema version %q", current)
}

// MigrateAll applies every pending version and records each one
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	if err := m.db.WithContext(ctx).AutoMigrate(&model.MigrationVersion{}); err != nil {
		return fmt.Errorf("create migration version table: %w", err)
	}

	current, err := m.GetCurrentVersion(ctx)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	todo, err := m.pending(current)
	if err != nil {
		return err
	}
	if len(todo) == 0 {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": current,
		})
		return nil
	}

	for _, v := range todo {
		if err := m.apply(ctx, v); err != nil {
			m.logger.Error("Schema migration failed", map[string]any{
				"from":    current,
				"version": v.version,
				"error":   err.Error(),
			})
			return err
		}
		current = v.version
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": current,
	})
	return nil
}

func (m *MigrationManager) apply(ctx context.Context, v schemaVersion) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		names := make([]string, 0, len(v.steps))
		for _, s := range v.steps {
			m.logger.Info("Running migration step", map[string]any{
				"version": v.version,
				"step":    s.name,
			})
			if err := s.run(tx); err != nil {
				return fmt.Errorf("migration %s step %s: %w", v.version, s.name, err)
			}
			names = append(names, s.name)
		}

		return tx.Create(&model.MigrationVersion{
			Version:   v.version,
			AppliedAt: m.timeProvider.Now(),
			Steps:     strings.Join(names, ","),
			Details:   v.details,
		}).Error
	})
}

// GetCurrentVersion returns the last applied version, "" on a fresh database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	var row model.MigrationVersion
	err := m.db.WithContext(ctx).Order("applied_at desc").Order("id desc").Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return row.Version, nil
}

func autoMigrateModels(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Wallet{},
		&model.InventoryItem{},
		&model.Cooldown{},
		&model.DailyAward{},
		&model.LedgerEntry{},
		&model.ChatMessage{},
	)
}

// createIndexes covers the purge cutoffs and the newest-first history reads
func createIndexes(db *gorm.DB) error {
	return execAll(db, []string{
		"CREATE INDEX IF NOT EXISTS idx_cooldowns_ready_at ON cooldowns (ready_at)",
		"CREATE INDEX IF NOT EXISTS idx_daily_awards_day ON daily_awards (day)",
		"CREATE INDEX IF NOT EXISTS idx_ledger_entries_user_id_id ON ledger_entries (user_id, id DESC)",
		"CREATE INDEX IF NOT EXISTS idx_chat_messages_channel_id ON chat_messages (channel, id DESC)",
	})
}

func execAll(db *gorm.DB, statements []string) error {
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}
	return nil
}
