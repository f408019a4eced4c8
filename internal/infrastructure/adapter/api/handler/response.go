package handler

import (
	"strconv"

	domainerr "github.com/amirhossein-jamali/acorn-grove/internal/domain/error"
	coreport "github.com/amirhossein-jamali/acorn-grove/internal/domain/port/core"
	"github.com/amirhossein-jamali/acorn-grove/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// respondError writes the error body for err and logs failures the client cannot fix
func respondError(c *gin.Context, logger coreport.Logger, operation string, err error) {
	status := domainerr.HTTPStatus(err)
	body := dto.NewErrorResponse(err)

	if body.RetryInSeconds != nil {
		c.Header("Retry-After", strconv.FormatInt(*body.RetryInSeconds, 10))
	}

	if body.Error == domainerr.CodeInternal {
		logger.Error("Request failed", map[string]any{
			"operation": operation,
			"path":      c.Request.URL.Path,
			"error":     err.Error(),
		})
		_ = c.Error(err)
	}

	c.JSON(status, body)
}
