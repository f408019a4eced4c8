package account

import (
	"context"

	"github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
	"github.com/amirhossein-jamali/acorn-grove/internal/domain/port/persistence"
)

// Service answers read-only wallet and inventory queries
type Service struct {
	ledger persistence.LedgerRepository
	logger coreport.Logger
}

// NewService creates a new account service
func NewService(ledger persistence.LedgerRepository, logger coreport.Logger) *Service {
	return &Service{
		ledger: ledger,
		logger: logger,
	}
}

// Wallet returns the acorn balance, 0 for a user that never earned anything
func (s *Service) Wallet(ctx context.Context, userID string) (*entity.Wallet, error) {
	acorns, err := s.ledger.GetWallet(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to read wallet", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}
	return &entity.Wallet{UserID: userID, Acorns: acorns}, nil
}

// Inventory returns every item stack ordered by item name
func (s *Service) Inventory(ctx context.Context, userID string) ([]entity.InventoryItem, error) {
	items, err := s.ledger.ListInventory(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to read inventory", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}
	if items == nil {
		items = []entity.InventoryItem{}
	}
	return items, nil
}
