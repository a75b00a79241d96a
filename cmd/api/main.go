package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/huytran-le/vidlens/internal/adapter/handler"
	"github.com/huytran-le/vidlens/internal/infrastructure/cache"
	"github.com/huytran-le/vidlens/internal/infrastructure/external/transcript"
	"github.com/huytran-le/vidlens/internal/infrastructure/external/youtube"
	"github.com/huytran-le/vidlens/internal/usecase/analysis"
	"github.com/huytran-le/vidlens/internal/usecase/counter"
	pkgai "github.com/huytran-le/vidlens/pkg/ai"
	"github.com/huytran-le/vidlens/pkg/config"
	pkgvalidator "github.com/huytran-le/vidlens/pkg/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Analysis calls wait on slow upstreams; give the transport a
	// generous budget independent of the analyzer's own timeout.
	e.Server.ReadTimeout = cfg.Server.RequestTimeout
	e.Server.WriteTimeout = cfg.Server.RequestTimeout
	e.Server.IdleTimeout = 2 * cfg.Server.RequestTimeout

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	log.Println("🔧 Initializing dependencies...")

	// Counter store: Redis when configured, in-memory otherwise
	var counterStore counter.Store
	if cfg.GetRedisEnabled() {
		log.Println("📦 Connecting to Redis...")
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		counterStore = cache.NewRedisCounterStore(redisClient, "")
	} else {
		log.Println("📦 Redis not configured, using in-memory counter")
		counterStore = cache.NewMemoryCounterStore()
	}
	counterService := counter.NewService(counterStore, logger)

	// Analysis pipeline components
	log.Println("🤖 Initializing analysis components...")
	transcriptClient := transcript.NewClient(&cfg.Transcript, logger)
	metadataClient := youtube.NewClient(context.Background(), &cfg.YouTube, logger)
	aiClient := pkgai.NewClient(&cfg.OpenAI)
	analysisService := analysis.NewService(transcriptClient, metadataClient, aiClient, logger)

	// Handlers and routes
	log.Println("🛣️  Setting up routes...")
	analyzeHandler := handler.NewAnalyzeHandler(analysisService, logger)
	counterHandler := handler.NewCounterHandler(counterService, logger)
	router := handler.NewRouter(cfg, analyzeHandler, counterHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
