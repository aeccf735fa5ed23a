package middleware

import (
	"time" // Latency

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// RequestLogger logs every request through logrus
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		status := c.Writer.Status()
		entry := logrus.WithFields(logrus.Fields{
			"method":    c.Request.Method,   // HTTP method after override
			"path":      c.Request.URL.Path, // Request path
			"status":    status,             // Response status
			"latency":   time.Since(start),  // Handling time
			"client_ip": c.ClientIP(),       // Caller address
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}
		if status >= 500 {
			entry.Error("Request failed")
			return
		}
		entry.Info("Request handled")
	}
}
