package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/volumepulse/internal/domain/dto"
	"github.com/guttosm/volumepulse/internal/logger"
)

// ErrorHandler renders the last error attached with c.Error when the handler
// chain finished without writing a response.
//
// A dto.ErrorResponse is passed through as-is; any other error becomes a
// 500 with the error text as details.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	last := c.Errors.Last().Err
	logger.L().Error().Err(last).Str("path", c.Request.URL.Path).Msg("request failed")

	var resp dto.ErrorResponse
	if !errors.As(last, &resp) {
		resp = dto.NewErrorResponse("Internal server error", last)
	}
	status := c.Writer.Status()
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithError stops the chain and writes a standardized error body.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message, err))
}
