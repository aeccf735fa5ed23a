package api

import (
	"context"  // Ping timeout
	"net/http" // HTTP status codes
	"time"     // Timeout duration

	"chainwatch/internal/session" // Flash store
	"chainwatch/internal/store"   // Record store

	"github.com/gin-gonic/gin" // Gin web framework
)

const healthTimeout = 2 * time.Second

// HealthHandler reports whether the record store and the flash store answer a ping
func HealthHandler(records store.Store, flashes session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		status := http.StatusOK
		checks := gin.H{"store": "ok", "flash": "ok"}
		if err := records.Ping(ctx); err != nil {
			status = http.StatusServiceUnavailable
			checks["store"] = err.Error()
		}
		if err := flashes.Ping(ctx); err != nil {
			status = http.StatusServiceUnavailable
			checks["flash"] = err.Error()
		}
		ok := status == http.StatusOK
		c.JSON(status, gin.H{"ok": ok, "checks": checks})
	}
}
