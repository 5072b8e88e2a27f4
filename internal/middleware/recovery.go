package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/volumepulse/internal/domain/dto"
	"github.com/guttosm/volumepulse/internal/logger"
)

// RecoveryMiddleware recovers from panics raised by downstream handlers,
// logs the panic value with its stack trace and request id, and replies 500
// with a dto.ErrorResponse.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			rid, _ := c.Get(RequestIDKey)
			log := logger.With("http")
			log.Error().
				Str("request_id", toString(rid)).
				Str("panic", fmt.Sprintf("%v", r)).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			c.AbortWithStatusJSON(http.StatusInternalServerError,
				dto.NewErrorResponse("Internal server error", fmt.Errorf("%v", r)))
		}()

		c.Next()
	}
}
