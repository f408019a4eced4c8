package dailycap

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"
	errs "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
	"github.com/amirhossein-jamali/acorn-grove/internal/domain/port/persistence"
)

// DefaultDailyCap is the number of acorns a user can earn from rewards per day
const DefaultDailyCap int64 = 300

// Tracker bounds the reward currency a user can earn per calendar day.
// The repository is resolved through the unit of work so that awards join an open transaction.
type Tracker struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	policy       entity.DayPolicy
	dailyCap     int64
	logger       coreport.Logger
}

// NewTracker creates a new daily cap tracker
func NewTracker(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	policy entity.DayPolicy,
	dailyCap int64,
	logger coreport.Logger,
) *Tracker {
	if dailyCap < 0 {
		dailyCap = 0
	}
	return &Tracker{
		uow:          uow,
		timeProvider: timeProvider,
		policy:       policy,
		dailyCap:     dailyCap,
		logger:       logger,
	}
}

// DailyCap returns the configured cap
func (t *Tracker) DailyCap() int64 {
	return t.dailyCap
}

// Today returns the day key of the current instant
func (t *Tracker) Today() string {
	return entity.DayKey(t.timeProvider.Now(), t.policy)
}

// Award grants up to requested units for day and reports what is left of the budget.
// A non-positive request changes nothing and reports the current remaining budget.
func (t *Tracker) Award(ctx context.Context, userID, day string, requested int64) (entity.CapAward, error) {
	if userID == "" || day == "" {
		return entity.CapAward{}, fmt.Errorf("%w: award needs a user and a day", errs.ErrValidation)
	}

	repo := t.uow.GetDailyCapRepository(ctx)

	if requested <= 0 {
		awarded, err := repo.GetAwarded(ctx, userID, day)
		if err != nil {
			return entity.CapAward{}, err
		}
		return entity.CapAward{Granted: 0, Remaining: t.remaining(awarded)}, nil
	}

	granted, awarded, err := repo.Award(ctx, userID, day, requested, t.dailyCap)
	if err != nil {
		t.logger.Error("Failed to award against daily cap", map[string]any{
			"user_id":   userID,
			"day":       day,
			"requested": requested,
			"error":     err.Error(),
		})
		return entity.CapAward{}, err
	}

	if granted < requested {
		t.logger.Info("Daily cap reached", map[string]any{
			"user_id":   userID,
			"day":       day,
			"requested": requested,
			"granted":   granted,
		})
	}

	return entity.CapAward{Granted: granted, Remaining: t.remaining(awarded)}, nil
}

// Limits reports the user's budget for the current day
func (t *Tracker) Limits(ctx context.Context, userID string) (*entity.DailyLimits, error) {
	day := t.Today()
	awarded, err := t.uow.GetDailyCapRepository(ctx).GetAwarded(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	return &entity.DailyLimits{
		Day:            day,
		DailyCap:       t.dailyCap,
		AwardedToday:   awarded,
		RemainingToday: t.remaining(awarded),
	}, nil
}

func (t *Tracker) remaining(awarded int64) int64 {
	return max(0, t.dailyCap-awarded)
}
