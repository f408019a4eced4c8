package handler

import (
	"fmt"
	"net/http"
	"strconv"

	domainerr "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
	"github.com/amirhossein-jamali/acorn-grove/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/realtime"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// ChatHandler serves chat history and the realtime socket
type ChatHandler struct {
	chatUseCase usecase.ChatUseCase
	authUseCase usecase.AuthUseCase
	hub         *realtime.Hub
	upgrader    websocket.Upgrader
	logger      coreport.Logger
}

// NewChatHandler creates a new chat handler instance
func NewChatHandler(
	chatUseCase usecase.ChatUseCase,
	authUseCase usecase.AuthUseCase,
	hub *realtime.Hub,
	logger coreport.Logger,
) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
		authUseCase: authUseCase,
		hub:         hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// browsers connect from the game client origin
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger: logger,
	}
}

// History handles GET /chat/history
func (h *ChatHandler) History(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			respondError(c, h.logger, "chat_history", fmt.Errorf("%w: limit must be an integer", domainerr.ErrValidation))
			return
		}
		limit = n
	}

	msgs, err := h.chatUseCase.History(c.Request.Context(), c.Query("channel"), limit)
	if err != nil {
		respondError(c, h.logger, "chat_history", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewChatHistoryResponse(msgs))
}

// WebSocket handles GET /ws. The token comes from the query string or the Authorization header.
func (h *ChatHandler) WebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		token = middleware.BearerToken(c.GetHeader("Authorization"))
	}
	if token == "" {
		respondError(c, h.logger, "websocket", domainerr.ErrUnauthenticated)
		return
	}

	user, err := h.authUseCase.Authenticate(c.Request.Context(), token)
	if err != nil {
		respondError(c, h.logger, "websocket", err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("Websocket upgrade failed", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return
	}

	client := realtime.NewClient(user.ID, conn)
	h.hub.Register(client)
	defer h.hub.Unregister(client)

	go client.WriteLoop()

	ctx := c.Request.Context()
	err = client.ReadLoop(func(ev realtime.InboundEvent) {
		if ev.Type != realtime.EventChatSend {
			client.SendError(domainerr.CodeBadParams, "unknown event type "+ev.Type)
			return
		}
		if _, err := h.chatUseCase.Send(ctx, user.ID, ev.Channel, ev.Text); err != nil {
			body := dto.NewErrorResponse(err)
			client.SendError(body.Error, body.Message)
		}
	})
	if err != nil {
		h.logger.Debug("Websocket closed unexpectedly", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
	}
}
