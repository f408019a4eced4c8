package chat

import (
	"context"

	"github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
	"github.com/amirhossein-jamali/acorn-grove/internal/domain/port/persistence"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 200
)

// Broadcaster delivers a message to every connected client
type Broadcaster interface {
	Broadcast(msg *entity.ChatMessage)
}

// Service relays chat messages and keeps the log
type Service struct {
	repo         persistence.ChatRepository
	broadcaster  Broadcaster
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new chat service
func NewService(
	repo persistence.ChatRepository,
	broadcaster Broadcaster,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		repo:         repo,
		broadcaster:  broadcaster,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Send broadcasts a message and then appends it to the log.
// Clients get the message even when persisting it fails.
func (s *Service) Send(ctx context.Context, userID, channel, text string) (*entity.ChatMessage, error) {
	msg, err := entity.NewChatMessage(channel, userID, text, s.timeProvider)
	if err != nil {
		return nil, err
	}

	if s.broadcaster != nil {
		s.broadcaster.Broadcast(msg)
	}

	if err := s.repo.Append(ctx, msg); err != nil {
		s.logger.Warn("Failed to persist chat message", map[string]any{
			"user_id": userID,
			"channel": msg.Channel,
			"error":   err.Error(),
		})
	}

	return msg, nil
}

// History returns the latest messages of a channel, oldest first
func (s *Service) History(ctx context.Context, channel string, limit int) ([]*entity.ChatMessage, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	msgs, err := s.repo.ListRecent(ctx, entity.NormalizeChannel(channel), limit)
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []*entity.ChatMessage{}
	}
	return msgs, nil
}
