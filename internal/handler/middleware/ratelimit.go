package middleware

import (
	"net/http"
	"strconv"
	"time"

	"seckill-guard/internal/handler/httperr"
	"seckill-guard/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit sheds load with 429 once the shared token bucket is empty.
// It guards only the routes it is attached to.
func RateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	limiter := rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst)
	retryAfter := "1"
	if cfg.RPS > 0 {
		retryAfter = strconv.Itoa(max(1, int(time.Second.Seconds()/cfg.RPS)))
	}

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.Header("Retry-After", retryAfter)
			httperr.AbortWithError(c, http.StatusTooManyRequests, nil, "Too many requests", nil)
			return
		}
		c.Next()
	}
}
