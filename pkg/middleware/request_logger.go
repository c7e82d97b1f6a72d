package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"journi/pkg/logger"
)

// RequestLogger writes one access log line per request. It must run after
// TraceIDMiddleware.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()

		log.LogRequest(
			c.Request.Method,
			path,
			c.ClientIP(),
			c.GetString("trace_id"),
			c.Writer.Status(),
			time.Since(start).Milliseconds(),
		)
	}
}
