package persistence

import (
	"context"

	"github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"
)

// ChatRepository is the append-only chat log
type ChatRepository interface {
	Append(ctx context.Context, msg *entity.ChatMessage) error

	// ListRecent returns the newest limit messages of a channel, oldest first
	ListRecent(ctx context.Context, channel string, limit int) ([]*entity.ChatMessage, error)
}
