package middleware

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"ads-admin-backend/internal/config"
	"ads-admin-backend/utils"
)

// RateLimit throttles requests per client IP. The panel is a low-traffic
// internal tool, so an in-process limiter is enough and keeps the
// deployment down to a single datastore.
func RateLimit(cfg *config.Config) gin.HandlerFunc {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)
	limit := rate.Limit(float64(cfg.RateLimitReqs) / float64(cfg.RateLimitWindow))

	limiterFor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		l, ok := limiters[ip]
		if !ok {
			l = rate.NewLimiter(limit, cfg.RateLimitReqs)
			limiters[ip] = l
		}
		return l
	}

	return func(c *gin.Context) {
		// Skip rate limiting for health checks
		if c.FullPath() == "/health" {
			c.Next()
			return
		}

		if !limiterFor(c.ClientIP()).Allow() {
			c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.RateLimitReqs))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(cfg.RateLimitWindow))
			utils.RespondWithError(c, http.StatusTooManyRequests,
				"Слишком много запросов", "")
			c.Abort()
			return
		}

		c.Next()
	}
}
