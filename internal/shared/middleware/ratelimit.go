package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"conduit-backend/internal/shared/response"
	"conduit-backend/pkg/cache"
	"conduit-backend/pkg/logger"
)

// RateLimit caps requests per client IP within a fixed window using cache
// counters. The cache being down never blocks traffic.
func RateLimit(c cache.Cache, limit int64, window time.Duration) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s", ctx.ClientIP())

		count, err := c.Increment(ctx.Request.Context(), key)
		if err != nil {
			logger.Error("rate limit counter unavailable", err)
			ctx.Next()
			return
		}

		// First hit in the window starts the clock.
		if count == 1 {
			if err := c.Expire(ctx.Request.Context(), key, window); err != nil {
				logger.Error("rate limit expire failed", err)
			}
		}

		if count > limit {
			response.ErrorResponse(ctx, 429, "RATE_LIMITED", "too many requests")
			ctx.Abort()
			return
		}

		ctx.Next()
	}
}
