package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/volumepulse/internal/logger"
)

// RequestLogger is a Gin middleware that logs one structured line per request.
//
// Fields: request_id (if injected by RequestID()), method, path, query, status,
// latency_ms, client_ip and, for failed requests, the last attached error.
// 5xx responses are logged at error level, everything else at info.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RequestID(), middleware.RequestLogger())
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		rid, _ := c.Get(RequestIDKey)

		log := logger.With("http")
		evt := log.Info()
		if status >= 500 {
			evt = log.Error()
		}
		if len(c.Errors) > 0 {
			evt = evt.Str("error", c.Errors.Last().Error())
		}
		evt.
			Str("request_id", toString(rid)).
			Str("method", method).
			Str("path", path).
			Str("query", query).
			Int("status", status).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}

func toString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
