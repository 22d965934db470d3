package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimit applies a process-wide token bucket to the API surface.
func RateLimit(limit rate.Limit, burst int) gin.HandlerFunc {
	limiter := rate.NewLimiter(limit, burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"timestamp": time.Now(),
				"status":    http.StatusTooManyRequests,
				"error":     "Too Many Requests",
				"message":   "Request rate limit exceeded, try again shortly",
				"details":   "uri=" + c.Request.URL.Path,
			})
			return
		}
		c.Next()
	}
}
