package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/potluckhq/potluck/internal/infrastructure/ratelimit"
	"github.com/potluckhq/potluck/internal/shared/logger"
	"github.com/potluckhq/potluck/internal/shared/utils"
)

// RateLimit caps requests per client IP. When the limiter backend fails the
// request is let through rather than locking the admin out.
func RateLimit(limiter ratelimit.RateLimiter, scope string, limit int, window time.Duration, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", scope, c.ClientIP())

		allowed, err := limiter.Allow(c.Request.Context(), key, limit, window)
		if err != nil {
			log.Warnw("rate limiter unavailable", "scope", scope, "error", err)
			c.Next()
			return
		}

		if !allowed {
			log.Warnw("rate limit exceeded", "scope", scope, "client_ip", c.ClientIP())
			c.Header("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			utils.ErrorResponse(c, http.StatusTooManyRequests, "Too many attempts, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
