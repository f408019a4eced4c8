package repository

import (
	"context"

	"github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// LedgerEntryRepository implements the audit log using GORM
type LedgerEntryRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewLedgerEntryRepository creates a new LedgerEntryRepository instance
func NewLedgerEntryRepository(db *gorm.DB, logger coreport.Logger) *LedgerEntryRepository {
	return &LedgerEntryRepository{
		db:     db,
		logger: logger,
	}
}

// entityToModel converts a ledger entry entity to a database model
func (r *LedgerEntryRepository) entityToModel(entry *entity.LedgerEntry) model.LedgerEntry {
	return model.LedgerEntry{
		UserID:       entry.UserID,
		Source:       string(entry.Source),
		Item:         entry.Item,
		ItemDelta:    entry.ItemDelta,
		AcornDelta:   entry.AcornDelta,
		BalanceAfter: entry.BalanceAfter,
		CreatedAt:    entry.CreatedAt,
	}
}

// modelToEntity converts a ledger entry model to an entity
func (r *LedgerEntryRepository) modelToEntity(m *model.LedgerEntry) *entity.LedgerEntry {
	return &entity.LedgerEntry{
		ID:           m.ID,
		UserID:       m.UserID,
		Source:       entity.LedgerSource(m.Source),
		Item:         m.Item,
		ItemDelta:    m.ItemDelta,
		AcornDelta:   m.AcornDelta,
		BalanceAfter: m.BalanceAfter,
		CreatedAt:    m.CreatedAt,
	}
}

// Append stores a new entry and sets its ID
func (r *LedgerEntryRepository) Append(ctx context.Context, entry *entity.LedgerEntry) error {
	entryModel := r.entityToModel(entry)

	if err := r.db.WithContext(ctx).Create(&entryModel).Error; err != nil {
		return storageFailure(r.logger, "append_ledger_entry", entry.UserID, err)
	}
	entry.ID = entryModel.ID

	r.logger.Debug("Ledger entry appended", map[string]any{
		"entry_id":      entry.ID,
		"user_id":       entry.UserID,
		"source":        entry.Source,
		"acorn_delta":   entry.AcornDelta,
		"balance_after": entry.BalanceAfter,
	})
	return nil
}

// ListByUser returns the newest entries of a user first
func (r *LedgerEntryRepository) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.LedgerEntry, error) {
	var models []model.LedgerEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, storageFailure(r.logger, "list_ledger_entries", userID, err)
	}

	entries := make([]*entity.LedgerEntry, 0, len(models))
	for i := range models {
		entries = append(entries, r.modelToEntity(&models[i]))
	}
	return entries, nil
}
