package routes

import (
	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups every HTTP handler of the API
type Handlers struct {
	Health  *handler.HealthHandler
	Auth    *handler.AuthHandler
	Reward  *handler.RewardHandler
	Market  *handler.MarketHandler
	Account *handler.AccountHandler
	Chat    *handler.ChatHandler
}

// SetupRoutes configures all the routes for the API.
// guestLimit may be nil when no rate limiter is configured.
func SetupRoutes(router *gin.Engine, h Handlers, requireAuth gin.HandlerFunc, guestLimit gin.HandlerFunc) {
	router.GET("/health", h.Health.Health)

	guest := []gin.HandlerFunc{h.Auth.Guest}
	if guestLimit != nil {
		guest = append([]gin.HandlerFunc{guestLimit}, guest...)
	}
	router.POST("/auth/guest", guest...)

	router.GET("/market/prices", h.Market.Prices)
	router.GET("/chat/history", h.Chat.History)

	// authenticates from the query string before upgrading
	router.GET("/ws", h.Chat.WebSocket)

	authed := router.Group("/", requireAuth)
	{
		authed.GET("/me", h.Auth.Me)
		authed.GET("/limits", h.Reward.Limits)
		authed.POST("/jobs/fishing/claim", h.Reward.ClaimFishing)
		authed.POST("/market/sell", h.Market.Sell)
		authed.GET("/wallet", h.Account.Wallet)
		authed.GET("/inventory", h.Account.Inventory)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigins ...string) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, "/health"))
	router.Use(middleware.CORS(allowedOrigins...))
}
