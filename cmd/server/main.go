package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/ai"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/logging"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/routes"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/storage"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Database
	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	stopLogSink := logging.AttachDatabase(db)

	cleanupDone := make(chan struct{})
	logging.StartCleanup(db, cfg.LogRetentionDays, cleanupDone)

	// Image storage is optional; uploads answer 503 without it
	var imageStore storage.Storage
	if cfg.UploadsEnabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		client, err := storage.NewMinIOClient(ctx, cfg)
		cancel()
		if err != nil {
			slog.Warn("image storage unavailable, uploads disabled", "endpoint", cfg.MinIOEndpoint, "error", err)
		} else {
			imageStore = client
		}
	}

	// Services
	repo := repository.New(db)
	authService := services.NewAuthService(repo.Users, cfg)
	ideaService := services.NewIdeaService(repo.Ideas)
	bannerService := services.NewBannerService(repo.Banners)
	reviewService := services.NewReviewService(repo.Reviews, repo.Ideas, services.NewModerationService())
	profileService := services.NewProfileService(repo.Users)
	trendService := services.NewTrendService(ai.NewGeminiClient(cfg), repo.Ideas)
	uploadService := services.NewUploadService(imageStore, cfg.MaxUploadSize)

	// Sentry error tracking
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      cfg.AppEnv,
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    int(cfg.MaxUploadSize) + 1024*1024,
		ErrorHandler: handlers.ErrorHandler,
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.SecurityHeaders())

	routes.Setup(app, cfg, middleware.NewGuard(cfg, repo.Users), routes.Handlers{
		Auth:    handlers.NewAuthHandler(authService),
		Health:  handlers.NewHealthHandler(db),
		Ideas:   handlers.NewIdeaHandler(ideaService),
		Banners: handlers.NewBannerHandler(bannerService),
		Reviews: handlers.NewReviewHandler(reviewService),
		Profile: handlers.NewProfileHandler(profileService),
		AI:      handlers.NewAIHandler(trendService),
		Uploads: handlers.NewUploadHandler(uploadService),
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port, "uploads", uploadService.Enabled())
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	stopLogSink()
	sentry.Flush(2 * time.Second)

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if err := database.Close(db); err != nil {
		slog.Error("database close error", "error", err)
	}

	slog.Info("server stopped")
}
