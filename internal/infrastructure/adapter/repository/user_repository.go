package repository

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"
	errs "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository stores guest accounts in the users table
type UserRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{db: db, logger: logger}
}

func toUserEntity(m model.User) *entity.User {
	return &entity.User{ID: m.ID, Handle: m.Handle, CreatedAt: m.CreatedAt}
}

func toUserModel(u *entity.User) model.User {
	return model.User{ID: u.ID, Handle: u.Handle, CreatedAt: u.CreatedAt}
}

// GetByID loads a user, ErrUserNotFound when the id is unknown
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var row model.User
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	switch {
	case err == nil:
		return toUserEntity(row), nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		r.logger.Debug("User not found", map[string]any{"user_id": id})
		return nil, errs.ErrUserNotFound
	default:
		return nil, storageFailure(r.logger, "get_user", id, err)
	}
}

// Create inserts a new guest. A reused id or handle yields ErrDuplicateUser.
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	row := toUserModel(user)
	err := r.db.WithContext(ctx).Create(&row).Error
	if err == nil {
		r.logger.Info("Guest user created", map[string]any{
			"user_id": user.ID,
			"handle":  user.Handle,
		})
		return nil
	}

	if classifier.IsDuplicateKeyError(err) {
		r.logger.Warn("Duplicate guest user", map[string]any{
			"user_id": user.ID,
			"handle":  user.Handle,
		})
		return errs.ErrDuplicateUser
	}
	return storageFailure(r.logger, "create_user", user.ID, err)
}
