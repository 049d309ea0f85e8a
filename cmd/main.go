package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"ads-admin-backend/internal/config"
	"ads-admin-backend/internal/logger"
	"ads-admin-backend/internal/realtime"
	"ads-admin-backend/internal/storage"
	"ads-admin-backend/internal/telemetry"
	"ads-admin-backend/middleware"
	"ads-admin-backend/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger.Init(!cfg.Production())

	// Connect to PostgreSQL
	db, err := storage.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if cfg.OTLPEndpoint != "" {
		shutdown, err := telemetry.InitTracer("ads-admin-backend", cfg.OTLPEndpoint)
		if err != nil {
			logger.Warn("tracing disabled", "error", err)
		} else {
			defer shutdown()
		}
	}

	// Initialize Gin router
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	router.Use(middleware.RateLimit(cfg))
	if cfg.OTLPEndpoint != "" {
		router.Use(middleware.TracingMiddleware())
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now()})
	})

	// Setup routes
	store := storage.NewTaskStore(db)
	routes.SetupTaskRoutes(router, cfg, store)
	routes.SetupAdvertiserRoutes(router, store)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Realtime updates: database trigger → LISTEN → websocket fan-out
	hub := realtime.NewHub()
	go hub.Run(ctx)
	router.GET("/ws", func(c *gin.Context) {
		hub.ServeWS(c.Writer, c.Request)
	})

	listener := storage.NewTaskListener(db)
	defer listener.Close()
	go func() {
		// Live updates are best-effort: a listener failure degrades the
		// panel to REST-only, it never takes the server down.
		if err := listener.Run(ctx, hub.Broadcast); err != nil {
			logger.Error("failed to set up database listener", "error", err)
		}
	}()

	if cfg.Production() {
		routes.SetupStaticRoutes(router, cfg.StaticDir)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server starting", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	<-ctx.Done()
	logger.Info("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("server exited")
}
