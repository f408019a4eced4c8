package repository

import (
	"context"
	"errors"

	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// DailyCapRepository tracks daily award totals using GORM
type DailyCapRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewDailyCapRepository creates a new DailyCapRepository instance
func NewDailyCapRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *DailyCapRepository {
	return &DailyCapRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Award locks the (user, day) row, clamps the request to what is left and records the grant.
// Inside an open unit of work gorm turns the nested transaction into a savepoint.
func (r *DailyCapRepository) Award(ctx context.Context, userID, day string, requested, dailyCap int64) (int64, int64, error) {
	r.logger.Debug("Awarding against daily cap", map[string]any{
		"user_id":   userID,
		"day":       day,
		"requested": requested,
		"daily_cap": dailyCap,
	})

	var granted, awarded int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := r.timeProvider.Now()

		// make sure the row exists so that it can be locked
		if err := tx.Exec(`
			INSERT INTO daily_awards (user_id, day, awarded, updated_at)
			VALUES (?, ?, 0, ?)
			ON CONFLICT (user_id, day) DO NOTHING`,
			userID, day, now,
		).Error; err != nil {
			return err
		}

		var row model.DailyAward
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND day = ?", userID, day).
			Take(&row).Error; err != nil {
			return err
		}

		granted = min(requested, max(0, dailyCap-row.Awarded))
		awarded = row.Awarded
		if granted <= 0 {
			granted = 0
			return nil
		}

		awarded += granted
		return tx.Model(&model.DailyAward{}).
			Where("user_id = ? AND day = ?", userID, day).
			Updates(map[string]any{
				"awarded":    awarded,
				"updated_at": now,
			}).Error
	})
	if err != nil {
		return 0, 0, storageFailure(r.logger, "award_daily_cap", userID, err)
	}

	r.logger.Debug("Daily cap award recorded", map[string]any{
		"user_id": userID,
		"day":     day,
		"granted": granted,
		"awarded": awarded,
	})
	return granted, awarded, nil
}

// GetAwarded returns the total awarded on day, 0 when nothing was awarded
func (r *DailyCapRepository) GetAwarded(ctx context.Context, userID, day string) (int64, error) {
	var row model.DailyAward
	err := r.db.WithContext(ctx).Where("user_id = ? AND day = ?", userID, day).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, storageFailure(r.logger, "get_daily_award", userID, err)
	}
	return row.Awarded, nil
}

// PurgeBefore removes award rows of days before day.
// Day keys are YYYY-MM-DD so string order is calendar order.
func (r *DailyCapRepository) PurgeBefore(ctx context.Context, day string) (int64, error) {
	result := r.db.WithContext(ctx).Where("day < ?", day).Delete(&model.DailyAward{})
	if result.Error != nil {
		return 0, storageFailure(r.logger, "purge_daily_awards", "", result.Error)
	}

	r.logger.Info("Old daily awards purged", map[string]any{
		"before":       day,
		"rows_removed": result.RowsAffected,
	})
	return result.RowsAffected, nil
}
