package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
	"github.com/amirhossein-jamali/acorn-grove/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles guest sign-in and identity requests
type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authUseCase usecase.AuthUseCase, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// Guest handles POST /auth/guest
func (h *AuthHandler) Guest(c *gin.Context) {
	session, err := h.authUseCase.IssueGuest(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "issue_guest", err)
		return
	}

	c.JSON(http.StatusOK, dto.GuestSessionResponse{
		Token: session.Token,
		User:  dto.NewUserDTO(session.User),
	})
}

// Me handles GET /me
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MeResponse{User: dto.NewUserDTO(middleware.CurrentUser(c))})
}
