package middleware

import (
	"strings"

	"github.com/amirhossein-jamali/acorn-grove/internal/domain/entity"
	domainerr "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
	"github.com/amirhossein-jamali/acorn-grove/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

const userContextKey = "grove.user"

// BearerToken extracts the token of an "Authorization: Bearer <token>" header
func BearerToken(header string) string {
	const prefix = "bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// Auth resolves the bearer token to a user and stores it on the context
func Auth(authUseCase usecase.AuthUseCase, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c.GetHeader("Authorization"))
		if token == "" {
			abortWithError(c, domainerr.ErrUnauthenticated)
			return
		}

		user, err := authUseCase.Authenticate(c.Request.Context(), token)
		if err != nil {
			if domainerr.ErrorCode(err) == domainerr.CodeInternal {
				logger.Error("Failed to authenticate request", map[string]any{
					"path":  c.Request.URL.Path,
					"error": err.Error(),
				})
			}
			abortWithError(c, err)
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the user stored by Auth, nil on unauthenticated routes
func CurrentUser(c *gin.Context) *entity.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, _ := v.(*entity.User)
	return user
}

func abortWithError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(domainerr.HTTPStatus(err), dto.NewErrorResponse(err))
}
