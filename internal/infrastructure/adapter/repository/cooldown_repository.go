package repository

import (
	"context"
	"errors"
	"time"

	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// CooldownRepository implements per-action cooldowns using GORM
type CooldownRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewCooldownRepository creates a new CooldownRepository instance
func NewCooldownRepository(db *gorm.DB, logger coreport.Logger) *CooldownRepository {
	return &CooldownRepository{
		db:     db,
		logger: logger,
	}
}

// TryConsume advances the cooldown when it has elapsed.
// The conditional upsert touches exactly one row when the caller wins and none otherwise.
func (r *CooldownRepository) TryConsume(ctx context.Context, userID, action string, now time.Time, cooldown time.Duration) (bool, time.Time, error) {
	r.logger.Debug("Attempting to consume cooldown", map[string]any{
		"user_id":  userID,
		"action":   action,
		"duration": cooldown.String(),
	})

	readyAt := now.Add(cooldown)

	result := r.db.WithContext(ctx).Exec(`
		INSERT INTO cooldowns (user_id, action, ready_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id, action) DO UPDATE
		SET ready_at = EXCLUDED.ready_at,
		    updated_at = EXCLUDED.updated_at
		WHERE cooldowns.ready_at <= ?`,
		userID, action, readyAt, now, now,
		now,
	)
	if result.Error != nil {
		return false, time.Time{}, storageFailure(r.logger, "consume_cooldown", userID, result.Error)
	}

	if result.RowsAffected > 0 {
		r.logger.Debug("Cooldown consumed", map[string]any{
			"user_id":  userID,
			"action":   action,
			"ready_at": readyAt,
		})
		return true, readyAt, nil
	}

	var record model.Cooldown
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND action = ?", userID, action).
		Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// purged between the two statements
		return false, now, nil
	}
	if err != nil {
		return false, time.Time{}, storageFailure(r.logger, "read_cooldown", userID, err)
	}

	return false, record.ReadyAt, nil
}

// PurgeExpired removes cooldowns that became ready before the given instant
func (r *CooldownRepository) PurgeExpired(ctx context.Context, before time.Time) (int64, error) {
	r.logger.Debug("Purging expired cooldowns", map[string]any{
		"before": before,
	})

	result := r.db.WithContext(ctx).Where("ready_at < ?", before).Delete(&model.Cooldown{})
	if result.Error != nil {
		return 0, storageFailure(r.logger, "purge_cooldowns", "", result.Error)
	}

	r.logger.Info("Expired cooldowns purged", map[string]any{
		"rows_removed": result.RowsAffected,
	})
	return result.RowsAffected, nil
}
