package middleware

import (
	"strconv" // Status labels
	"time"    // Durations

	"chainwatch/internal/metrics" // Prometheus collectors

	"github.com/gin-gonic/gin" // Gin web framework
)

// Metrics records request counts and durations per route template
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath() // Route template keeps label cardinality low
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
