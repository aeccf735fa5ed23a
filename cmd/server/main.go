package main

import (
	"chainwatch/internal/api"        // Custom package for HTTP handlers
	"chainwatch/internal/config"     // Custom package for configuration
	"chainwatch/internal/db"         // Custom package for database access
	"chainwatch/internal/middleware" // Custom package for middleware
	"chainwatch/internal/session"    // Custom package for flash messages
	"chainwatch/internal/store"      // Custom package for the record store
	"context"                        // context package is needed for Redis and shutdown
	"errors"                         // Error matching
	"net/http"                       // HTTP server
	"os"                             // Signals
	"os/signal"                      // Signal notification
	"syscall"                        // SIGTERM
	"time"                           // Timeouts

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

const flashTTL = 10 * time.Minute // How long an unread flash survives

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	setupLogger(cfg)

	// Connect to the database; the server still starts without it
	records := openStore(cfg)

	// Setup flash storage, Redis when configured and reachable
	flashes := openFlashStore(cfg)

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r, err := api.NewEngine(api.NewDeps(records, flashes), cfg.SessionSecret, cfg.IsProd)
	if err != nil {
		logrus.Fatalf("failed to build router: %v", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           middleware.MethodOverride(r), // Forms reach PUT and DELETE routes
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logrus.Infof("ChainWatch server running on port %s", cfg.AppPort) // Log server start
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server stopped: %v", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("graceful shutdown failed: %v", err)
	}
}

func setupLogger(cfg *config.Config) {
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logrus.Warnf("unknown LOG_LEVEL %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

func openStore(cfg *config.Config) store.Store {
	gdb, err := db.Open(cfg.DSN(), cfg.IsProd)
	if err != nil {
		logrus.Errorf("failed to connect to DB: %v", err) // Requests will fail until restart
		return store.NewUnavailable(err)
	}
	if cfg.AutoMigrate {
		if err := db.Migrate(gdb); err != nil {
			logrus.Errorf("migration failed: %v", err)
		}
	}
	return store.NewGormStore(gdb)
}

func openFlashStore(cfg *config.Config) session.Store {
	if cfg.RedisAddr == "" {
		logrus.Info("REDIS_ADDR not set, keeping flash messages in memory")
		return session.NewMemoryStore(flashTTL)
	}
	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		logrus.Errorf("failed to connect to Redis, keeping flash messages in memory: %v", err)
		_ = redisClient.Close()
		return session.NewMemoryStore(flashTTL)
	}
	return session.NewRedisStore(redisClient, flashTTL)
}
