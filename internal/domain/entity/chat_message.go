package entity

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	errs "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
)

const (
	// DefaultChatChannel is used when a message names no channel
	DefaultChatChannel = "global"

	MaxChatMessageRunes = 500
	MaxChatChannelLen   = 32
)

// ChatMessage is one relayed chat line
type ChatMessage struct {
	ID        uint64
	Channel   string
	UserID    string
	Text      string
	CreatedAt time.Time
}

// NewChatMessage validates and normalizes a chat line
func NewChatMessage(channel, userID, text string, timeProvider coreport.TimeProvider) (*ChatMessage, error) {
	channel = NormalizeChannel(channel)
	if len(channel) > MaxChatChannelLen {
		return nil, fmt.Errorf("%w: channel too long", errs.ErrInvalidMessage)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty text", errs.ErrInvalidMessage)
	}
	if utf8.RuneCountInString(text) > MaxChatMessageRunes {
		return nil, fmt.Errorf("%w: longer than %d characters", errs.ErrInvalidMessage, MaxChatMessageRunes)
	}

	return &ChatMessage{
		Channel:   channel,
		UserID:    userID,
		Text:      text,
		CreatedAt: timeProvider.Now(),
	}, nil
}

// NormalizeChannel trims a channel name and falls back to the global channel
func NormalizeChannel(channel string) string {
	channel = strings.TrimSpace(channel)
	if channel == "" {
		return DefaultChatChannel
	}
	return channel
}
