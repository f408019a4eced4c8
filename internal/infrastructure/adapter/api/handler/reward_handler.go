package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	domainerr "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
	"github.com/amirhossein-jamali/acorn-grove/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// RewardHandler handles minigame reward requests
type RewardHandler struct {
	rewardUseCase usecase.RewardUseCase
	logger        coreport.Logger
}

// NewRewardHandler creates a new reward handler instance
func NewRewardHandler(rewardUseCase usecase.RewardUseCase, logger coreport.Logger) *RewardHandler {
	return &RewardHandler{
		rewardUseCase: rewardUseCase,
		logger:        logger,
	}
}

// ClaimFishing handles POST /jobs/fishing/claim
func (h *RewardHandler) ClaimFishing(c *gin.Context) {
	var req dto.FishingClaimRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			respondError(c, h.logger, "claim_fishing", fmt.Errorf("%w: %v", domainerr.ErrValidation, err))
			return
		}
	}

	user := middleware.CurrentUser(c)
	result, err := h.rewardUseCase.ClaimFishingReward(c.Request.Context(), user.ID, req.Success)
	if err != nil {
		respondError(c, h.logger, "claim_fishing", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewFishingClaimResponse(result))
}

// Limits handles GET /limits
func (h *RewardHandler) Limits(c *gin.Context) {
	user := middleware.CurrentUser(c)
	limits, err := h.rewardUseCase.Limits(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.logger, "limits", err)
		return
	}

	c.JSON(http.StatusOK, dto.LimitsResponse{
		DailyCap:       limits.DailyCap,
		AwardedToday:   limits.AwardedToday,
		RemainingToday: limits.RemainingToday,
	})
}
