package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
	"github.com/amirhossein-jamali/acorn-grove/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// AccountHandler handles wallet and inventory queries
type AccountHandler struct {
	accountUseCase usecase.AccountUseCase
	logger         coreport.Logger
}

// NewAccountHandler creates a new account handler instance
func NewAccountHandler(accountUseCase usecase.AccountUseCase, logger coreport.Logger) *AccountHandler {
	return &AccountHandler{
		accountUseCase: accountUseCase,
		logger:         logger,
	}
}

// Wallet handles GET /wallet
func (h *AccountHandler) Wallet(c *gin.Context) {
	user := middleware.CurrentUser(c)
	wallet, err := h.accountUseCase.Wallet(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.logger, "wallet", err)
		return
	}

	c.JSON(http.StatusOK, dto.WalletResponse{Acorns: wallet.Acorns})
}

// Inventory handles GET /inventory
func (h *AccountHandler) Inventory(c *gin.Context) {
	user := middleware.CurrentUser(c)
	items, err := h.accountUseCase.Inventory(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.logger, "inventory", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewInventoryResponse(items))
}
