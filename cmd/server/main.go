package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Kiattisakchaochata/backendTopaward/config"
	"github.com/Kiattisakchaochata/backendTopaward/internal/app/controller"
	"github.com/Kiattisakchaochata/backendTopaward/internal/app/repository"
	"github.com/Kiattisakchaochata/backendTopaward/internal/app/service"
	"github.com/Kiattisakchaochata/backendTopaward/internal/db"
	"github.com/Kiattisakchaochata/backendTopaward/internal/middleware"
	"github.com/Kiattisakchaochata/backendTopaward/internal/router"
	"github.com/Kiattisakchaochata/backendTopaward/internal/scheduler"
	"github.com/Kiattisakchaochata/backendTopaward/internal/storage"
	"github.com/Kiattisakchaochata/backendTopaward/pkg/logger"
	"github.com/Kiattisakchaochata/backendTopaward/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting TopAwards Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize database
	gormDB, err := db.Open(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(gormDB); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Redis is optional; visitor dedup and token revocation degrade
	// gracefully without it.
	if err := redis.Init(&cfg.Redis); err != nil {
		logger.Warn("Redis unavailable, continuing without it", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer func() {
		if err := redis.Close(); err != nil {
			logger.Error("Failed to close Redis connection", err)
		}
	}()

	// Object storage
	mediaStore := storage.NewS3Storage(
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	storeRepo := repository.NewStoreRepository(gormDB)
	categoryRepo := repository.NewCategoryRepository(gormDB)
	reviewRepo := repository.NewReviewRepository(gormDB)
	bannerRepo := repository.NewBannerRepository(gormDB)
	videoRepo := repository.NewVideoRepository(gormDB)
	trackingRepo := repository.NewTrackingRepository(gormDB)
	visitorRepo := repository.NewVisitorRepository(gormDB)

	// Initialize services
	authService := service.NewAuthService(userRepo)
	oauthService := service.NewOAuthService(gormDB, userRepo, cfg.OAuth.GoogleClientID)
	storeService := service.NewStoreService(gormDB, storeRepo, categoryRepo, mediaStore)
	exportService := service.NewExportService(storeService)
	categoryService := service.NewCategoryService(categoryRepo)
	reviewService := service.NewReviewService(reviewRepo, storeRepo)
	bannerService := service.NewBannerService(bannerRepo, mediaStore)
	videoService := service.NewVideoService(videoRepo)
	trackingService := service.NewTrackingService(trackingRepo)
	visitorService := service.NewVisitorService(visitorRepo, storeRepo)

	// Initialize controllers
	authController := controller.NewAuthController(authService, oauthService, cfg)
	storeController := controller.NewStoreController(storeService, exportService, cfg.Upload.TempDir)
	categoryController := controller.NewCategoryController(categoryService)
	reviewController := controller.NewReviewController(reviewService)
	bannerController := controller.NewBannerController(bannerService, cfg.Upload.TempDir)
	videoController := controller.NewVideoController(videoService)
	trackingController := controller.NewTrackingController(trackingService)
	visitorController := controller.NewVisitorController(visitorService)
	uploadController := controller.NewUploadController(mediaStore)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret, cfg.JWT.CookieName, userRepo)

	// Nightly sweep that disables stores past their expiry
	expiryScheduler := scheduler.NewExpiryScheduler(storeService)
	if err := expiryScheduler.Start(); err != nil {
		logger.Fatal("Failed to start expiry scheduler", err)
	}
	defer expiryScheduler.Stop()

	// Setup router
	r := router.NewRouter(
		authController,
		storeController,
		categoryController,
		reviewController,
		bannerController,
		videoController,
		trackingController,
		visitorController,
		uploadController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
