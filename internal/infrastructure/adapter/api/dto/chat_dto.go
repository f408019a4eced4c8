package dto

import (
	"time"

	"github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"
)

// ChatMessageDTO is one line of chat history
type ChatMessageDTO struct {
	Channel   string    `json:"channel"`
	UserID    string    `json:"userId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewChatHistoryResponse converts chat messages, never returning nil
func NewChatHistoryResponse(msgs []*entity.ChatMessage) []ChatMessageDTO {
	out := make([]ChatMessageDTO, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, ChatMessageDTO{
			Channel:   m.Channel,
			UserID:    m.UserID,
			Text:      m.Text,
			CreatedAt: m.CreatedAt,
		})
	}
	return out
}
