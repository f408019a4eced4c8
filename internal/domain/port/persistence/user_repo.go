package persistence

import (
	"context"

	"github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"
)

// UserRepository stores guest users
type UserRepository interface {
	// Create stores a new user
	//
	// Possible errors:
	// - ErrDuplicateUser: If a user with the same ID already exists
	// - ErrStorageUnavailable: If the store cannot be reached
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrStorageUnavailable: If the store cannot be reached
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
