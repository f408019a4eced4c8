package middleware

import (
	"fmt"
	"io"
	"net/http"

	domainerr "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ErrorHandler turns a panicking handler into a 500 with the internal error body
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		logger.Error("Panic recovered in API request", map[string]any{
			"panic":      fmt.Sprint(recovered),
			"route":      c.FullPath(),
			"method":     c.Request.Method,
			"request_id": c.GetString(requestIDKey),
		})
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(domainerr.ErrInternalServer))
	})
}
