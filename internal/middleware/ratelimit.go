package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// client tracks requests seen from one IP inside the current window.
type client struct {
	windowStart time.Time
	count       int
}

// In-memory, per-process store. Limits are not shared between replicas.
var (
	clients         = make(map[string]*client)
	window          = time.Minute
	limit           = 60
	lastSweep       time.Time
	rateLimiterLock sync.Mutex
)

// sweepExpired drops clients whose window has ended. At most once per window.
// Caller holds rateLimiterLock.
func sweepExpired(now time.Time) {
	if now.Sub(lastSweep) <= window {
		return
	}
	for ip, cl := range clients {
		if now.Sub(cl.windowStart) > window {
			delete(clients, ip)
		}
	}
	lastSweep = now
}

// SetRateLimit changes the number of requests allowed per window for every
// RateLimiter. A non-positive n leaves the current limit untouched.
func SetRateLimit(n int, per time.Duration) {
	rateLimiterLock.Lock()
	defer rateLimiterLock.Unlock()
	if n > 0 {
		limit = n
	}
	if per > 0 {
		window = per
	}
	clients = make(map[string]*client)
	lastSweep = time.Time{}
}

// RateLimiter limits the number of requests per client IP.
//
// Behavior:
//   - Allows up to `limit` requests per fixed `window` (default: 60 per minute).
//   - Identifies clients by c.ClientIP().
//   - Replies 429 Too Many Requests with a Retry-After header once exceeded.
func RateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		rateLimiterLock.Lock()
		sweepExpired(now)
		cl, ok := clients[ip]
		if !ok || now.Sub(cl.windowStart) > window {
			cl = &client{windowStart: now}
			clients[ip] = cl
		}
		cl.count++
		exceeded := cl.count > limit
		retryAfter := window - now.Sub(cl.windowStart)
		rateLimiterLock.Unlock()

		if exceeded {
			secs := int(retryAfter.Seconds()) + 1
			c.Header("Retry-After", strconv.Itoa(secs))
			AbortWithError(c, http.StatusTooManyRequests, "rate limit exceeded", nil)
			return
		}
		c.Next()
	}
}
