package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger logs the method, path, client IP, status code, and latency of each
// request. Health probes are skipped to keep the output readable.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		if c.Request.URL.Path == "/health" {
			return
		}

		log.Printf(
			"[%s] %s %s %d %s",
			c.Request.Method,
			c.Request.URL.Path,
			c.ClientIP(),
			c.Writer.Status(),
			time.Since(start),
		)
	}
}
