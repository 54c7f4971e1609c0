// internal/api/middleware/ratelimit.go
package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/choimj77/team-todo-api/internal/constants"
	"github.com/choimj77/team-todo-api/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

func RateLimitMiddleware(rl *ratelimit.RateLimiter, key string, limit int, window time.Duration) gin.HandlerFunc {
    return func(c *gin.Context) {
        allowed, count, err := rl.Allow(c.Request.Context(), key, limit, window)
        if err != nil {
            c.JSON(http.StatusInternalServerError, gin.H{"error": "Rate limit check failed"})
            c.Abort()
            return
        }

        // Set rate limit headers
        c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", limit))
        c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", limit-count))
        c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", time.Now().Add(window).Unix()))

        if !allowed {
            c.JSON(http.StatusTooManyRequests, gin.H{
                "error":       "Rate limit exceeded",
                "retry_after": window.Seconds(),
            })
            c.Abort()
            return
        }

        c.Next()
    }
}

// APIRateLimit guards the team/todo endpoints with one shared window.
func APIRateLimit(rl *ratelimit.RateLimiter) gin.HandlerFunc {
    return RateLimitMiddleware(rl, "global:api", constants.GlobalAPILimit, time.Minute)
}
