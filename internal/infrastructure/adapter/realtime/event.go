package realtime

import (
	"encoding/json"

	"github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"
)

// Event types exchanged over the socket
const (
	EventChatSend    = "chat:send"
	EventChatMessage = "chat:message"
	EventError       = "error"
)

// InboundEvent is a frame sent by a client
type InboundEvent struct {
	Type    string `json:"type"`
	Channel string `json:"channel"`
	Text    string `json:"text"`
}

// ChatMessageEvent is the frame broadcast for every relayed chat line
type ChatMessageEvent struct {
	Type    string `json:"type"`
	Channel string `json:"channel"`
	UserID  string `json:"userId"`
	Text    string `json:"text"`
	TS      int64  `json:"ts"`
}

// ErrorEvent is sent back to the client whose frame was rejected
type ErrorEvent struct {
	Type    string `json:"type"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

func encodeChatMessage(msg *entity.ChatMessage) ([]byte, error) {
	return json.Marshal(ChatMessageEvent{
		Type:    EventChatMessage,
		Channel: msg.Channel,
		UserID:  msg.UserID,
		Text:    msg.Text,
		TS:      msg.CreatedAt.UnixMilli(),
	})
}
