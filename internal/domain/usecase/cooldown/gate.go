package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"
	errs "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
	"github.com/amirhossein-jamali/acorn-grove/internal/domain/port/persistence"
)

// Gate enforces a minimum interval between two accepted uses of an action by the same user
type Gate struct {
	repo         persistence.CooldownRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewGate creates a new cooldown gate
func NewGate(repo persistence.CooldownRepository, timeProvider coreport.TimeProvider, logger coreport.Logger) *Gate {
	return &Gate{
		repo:         repo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// TryConsume allows the action and restarts its cooldown, or reports how long the caller must wait.
// Exactly one of several concurrent callers for the same (user, action) is allowed.
func (g *Gate) TryConsume(ctx context.Context, userID, action string, duration time.Duration) (entity.CooldownDecision, error) {
	if userID == "" || action == "" {
		return entity.CooldownDecision{}, fmt.Errorf("%w: cooldown needs a user and an action", errs.ErrValidation)
	}
	if duration <= 0 {
		return entity.CooldownDecision{}, fmt.Errorf("%w: cooldown duration must be positive", errs.ErrValidation)
	}

	now := g.timeProvider.Now()
	allowed, readyAt, err := g.repo.TryConsume(ctx, userID, action, now, duration)
	if err != nil {
		g.logger.Error("Cooldown check failed", map[string]any{
			"user_id": userID,
			"action":  action,
			"error":   err.Error(),
		})
		return entity.CooldownDecision{}, err
	}

	if allowed {
		g.logger.Debug("Cooldown consumed", map[string]any{
			"user_id":  userID,
			"action":   action,
			"ready_at": now.Add(duration),
		})
		return entity.CooldownDecision{Allowed: true}, nil
	}

	retryIn := readyAt.Sub(now)
	if retryIn < time.Millisecond {
		// the record expired between the check and the read
		retryIn = time.Millisecond
	}

	g.logger.Debug("Cooldown active", map[string]any{
		"user_id":     userID,
		"action":      action,
		"retry_in_ms": retryIn.Milliseconds(),
	})
	return entity.CooldownDecision{Allowed: false, RetryIn: retryIn}, nil
}
