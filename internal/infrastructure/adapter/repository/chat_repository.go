package repository

import (
	"context"
	"slices"

	"github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ChatRepository persists chat lines using GORM
type ChatRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewChatRepository creates a new ChatRepository instance
func NewChatRepository(db *gorm.DB, logger coreport.Logger) *ChatRepository {
	return &ChatRepository{
		db:     db,
		logger: logger,
	}
}

// Append stores msg and sets its ID
func (r *ChatRepository) Append(ctx context.Context, msg *entity.ChatMessage) error {
	m := model.ChatMessage{
		Channel:   msg.Channel,
		UserID:    msg.UserID,
		Text:      msg.Text,
		CreatedAt: msg.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return storageFailure(r.logger, "append_chat_message", msg.UserID, err)
	}
	msg.ID = m.ID
	return nil
}

// ListRecent reads the newest limit lines and returns them oldest first
func (r *ChatRepository) ListRecent(ctx context.Context, channel string, limit int) ([]*entity.ChatMessage, error) {
	var models []model.ChatMessage
	err := r.db.WithContext(ctx).
		Where("channel = ?", channel).
		Order("id DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, storageFailure(r.logger, "list_chat_messages", "", err)
	}

	msgs := make([]*entity.ChatMessage, 0, len(models))
	for _, m := range models {
		msgs = append(msgs, &entity.ChatMessage{
			ID:        m.ID,
			Channel:   m.Channel,
			UserID:    m.UserID,
			Text:      m.Text,
			CreatedAt: m.CreatedAt,
		})
	}
	slices.Reverse(msgs)
	return msgs, nil
}
