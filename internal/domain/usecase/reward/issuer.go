package reward

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"
	errs "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
	"github.com/amirhossein-jamali/acorn-grove/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/acorn-grove/internal/domain/usecase/cooldown"
	"github.com/amirhossein-jamali/acorn-grove/internal/domain/usecase/dailycap"
)

// Config describes the fishing reward
type Config struct {
	Action         string
	Cooldown       time.Duration
	RewardPerCatch int64
	Item           string
}

// DefaultConfig returns the fishing reward used when nothing is configured
func DefaultConfig() Config {
	return Config{
		Action:         "fishing",
		Cooldown:       3000 * time.Millisecond,
		RewardPerCatch: 10,
		Item:           entity.ItemFish,
	}
}

// Issuer turns reported catches into inventory and capped acorns
type Issuer struct {
	gate         *cooldown.Gate
	tracker      *dailycap.Tracker
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	config       Config
}

// NewIssuer creates a new reward issuer
func NewIssuer(
	gate *cooldown.Gate,
	tracker *dailycap.Tracker,
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	config Config,
) *Issuer {
	return &Issuer{
		gate:         gate,
		tracker:      tracker,
		uow:          uow,
		timeProvider: timeProvider,
		logger:       logger,
		config:       config,
	}
}

// ClaimFishingReward credits one catch.
// A failed catch costs nothing: no cooldown is consumed and nothing is written.
// A successful catch consumes the cooldown first, then credits the item, the capped
// acorn reward and an audit entry inside one transaction.
func (s *Issuer) ClaimFishingReward(ctx context.Context, userID string, success bool) (*entity.FishingClaimResult, error) {
	if !success {
		return s.currentStanding(ctx, userID)
	}

	decision, err := s.gate.TryConsume(ctx, userID, s.config.Action, s.config.Cooldown)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		cooldownErr := &errs.CooldownError{UserID: userID, Action: s.config.Action, RetryIn: decision.RetryIn}
		s.logger.Info("Fishing claim rejected by cooldown", cooldownErr.LogFields())
		return nil, cooldownErr
	}

	day := s.tracker.Today()

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	result, err := s.applyCatch(txCtx, userID, day)
	if err != nil {
		s.rollback(txCtx, userID, err)
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		s.rollback(txCtx, userID, err)
		return nil, err
	}

	s.logger.Info("Fishing reward issued", map[string]any{
		"user_id":         userID,
		"day":             day,
		"gained":          result.Gained,
		"acorns":          result.Acorns,
		"fish":            result.Item.Qty,
		"remaining_today": result.RemainingToday,
		"capped":          result.Capped,
	})
	return result, nil
}

// Limits reports the user's reward budget for today
func (s *Issuer) Limits(ctx context.Context, userID string) (*entity.DailyLimits, error) {
	return s.tracker.Limits(ctx, userID)
}

func (s *Issuer) applyCatch(txCtx context.Context, userID, day string) (*entity.FishingClaimResult, error) {
	ledger := s.uow.GetLedgerRepository(txCtx)

	qty, err := ledger.AddItem(txCtx, userID, s.config.Item, 1)
	if err != nil {
		return nil, err
	}

	award, err := s.tracker.Award(txCtx, userID, day, s.config.RewardPerCatch)
	if err != nil {
		return nil, err
	}

	var acorns int64
	if award.Granted > 0 {
		acorns, err = ledger.CreditWallet(txCtx, userID, award.Granted)
	} else {
		acorns, err = ledger.GetWallet(txCtx, userID)
	}
	if err != nil {
		return nil, err
	}

	entry, err := entity.NewLedgerEntry(userID, entity.SourceFishing, s.config.Item, 1, award.Granted, acorns, s.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := s.uow.GetLedgerEntryRepository(txCtx).Append(txCtx, entry); err != nil {
		return nil, err
	}

	return &entity.FishingClaimResult{
		Gained:         award.Granted,
		Acorns:         acorns,
		Item:           entity.InventoryItem{Item: s.config.Item, Qty: qty},
		RemainingToday: award.Remaining,
		Capped:         award.Granted < s.config.RewardPerCatch,
	}, nil
}

// currentStanding answers a failed catch with read-only values
func (s *Issuer) currentStanding(ctx context.Context, userID string) (*entity.FishingClaimResult, error) {
	ledger := s.uow.GetLedgerRepository(ctx)

	acorns, err := ledger.GetWallet(ctx, userID)
	if err != nil {
		return nil, err
	}
	qty, err := ledger.GetItemQty(ctx, userID, s.config.Item)
	if err != nil {
		return nil, err
	}
	limits, err := s.tracker.Limits(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &entity.FishingClaimResult{
		Gained:         0,
		Acorns:         acorns,
		Item:           entity.InventoryItem{Item: s.config.Item, Qty: qty},
		RemainingToday: limits.RemainingToday,
		Capped:         false,
	}, nil
}

func (s *Issuer) rollback(txCtx context.Context, userID string, cause error) {
	s.logger.Error("Fishing reward failed, rolling back", map[string]any{
		"user_id": userID,
		"error":   cause.Error(),
	})
	if err := s.uow.Rollback(txCtx); err != nil {
		s.logger.Error("Failed to roll back fishing reward", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}
