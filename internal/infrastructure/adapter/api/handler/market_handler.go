package handler

import (
	"fmt"
	"net/http"

	domainerr "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
	"github.com/amirhossein-jamali/acorn-grove/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// MarketHandler handles market requests
type MarketHandler struct {
	marketUseCase usecase.MarketUseCase
	logger        coreport.Logger
}

// NewMarketHandler creates a new market handler instance
func NewMarketHandler(marketUseCase usecase.MarketUseCase, logger coreport.Logger) *MarketHandler {
	return &MarketHandler{
		marketUseCase: marketUseCase,
		logger:        logger,
	}
}

// Sell handles POST /market/sell
func (h *MarketHandler) Sell(c *gin.Context) {
	var req dto.SellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, h.logger, "sell", fmt.Errorf("%w: %v", domainerr.ErrValidation, err))
		return
	}

	user := middleware.CurrentUser(c)
	result, err := h.marketUseCase.Sell(c.Request.Context(), user.ID, req.Item, req.Qty)
	if err != nil {
		respondError(c, h.logger, "sell", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSellResponse(result))
}

// Prices handles GET /market/prices
func (h *MarketHandler) Prices(c *gin.Context) {
	c.JSON(http.StatusOK, h.marketUseCase.Prices())
}
