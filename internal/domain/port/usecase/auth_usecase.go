package usecase

import (
	"context"

	"github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"
)

// GuestSession is returned when a guest signs in
type GuestSession struct {
	Token string
	User  *entity.User
}

// AuthUseCase issues and resolves guest credentials
type AuthUseCase interface {
	// IssueGuest creates a new guest user and a bearer token for it
	IssueGuest(ctx context.Context) (*GuestSession, error)

	// Authenticate resolves a bearer token to its user.
	// Returns ErrUnauthenticated for a missing, malformed or unknown token.
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}

// AccountUseCase answers wallet and inventory queries
type AccountUseCase interface {
	Wallet(ctx context.Context, userID string) (*entity.Wallet, error)
	Inventory(ctx context.Context, userID string) ([]entity.InventoryItem, error)
}
