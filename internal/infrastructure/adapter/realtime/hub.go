package realtime

import (
	"sync"

	"github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
)

// Hub fans chat messages out to every connected client of this process
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	logger  coreport.Logger
}

// NewHub creates an empty hub
func NewHub(logger coreport.Logger) *Hub {
	return &Hub{
		clients: make(map[*Client]struct{}),
		logger:  logger,
	}
}

// Register adds a client to the broadcast set
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()

	h.logger.Debug("Websocket client registered", map[string]any{
		"user_id": c.UserID(),
		"clients": count,
	})
}

// Unregister removes a client and closes its outbound queue
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, c)
	c.closeSend()
	count := len(h.clients)
	h.mu.Unlock()

	h.logger.Debug("Websocket client unregistered", map[string]any{
		"user_id": c.UserID(),
		"clients": count,
	})
}

// Count returns the number of connected clients
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast sends msg to every client. Clients whose queue is full are dropped.
func (h *Hub) Broadcast(msg *entity.ChatMessage) {
	frame, err := encodeChatMessage(msg)
	if err != nil {
		h.logger.Error("Failed to encode chat message", map[string]any{
			"error": err.Error(),
		})
		return
	}

	var slow []*Client

	h.mu.RLock()
	for c := range h.clients {
		if !c.enqueue(frame) {
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		h.logger.Warn("Dropping slow websocket client", map[string]any{
			"user_id": c.UserID(),
		})
		h.Unregister(c)
	}
}

// Close disconnects every client
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		c.closeSend()
	}
	h.clients = make(map[*Client]struct{})
}
