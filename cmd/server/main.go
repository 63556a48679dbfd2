package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nafiuibnemazhar/workspot-bd-sub000/config"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/controller"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/repository"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/app/service"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/db"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/middleware"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/router"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/scheduler"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/storage"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/internal/websocket"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/pkg/logger"
	"github.com/nafiuibnemazhar/workspot-bd-sub000/pkg/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting WorkSpot API Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Redis is optional: without it the token blacklist and location cache
	// are disabled but the API still serves
	if err := redis.Initialize(cfg.Redis); err != nil {
		logger.Warn("Redis unavailable, continuing without cache", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer redis.Close()

	// Repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	profileRepo := repository.NewProfileRepository(db.GetDB())
	cafeRepo := repository.NewCafeRepository(db.GetDB())
	reviewRepo := repository.NewReviewRepository(db.GetDB())
	favoriteRepo := repository.NewFavoriteRepository(db.GetDB())
	jobRepo := repository.NewJobRepository(db.GetDB())
	postRepo := repository.NewPostRepository(db.GetDB())

	// Services
	authService := service.NewAuthService(userRepo, profileRepo, cfg.JWT)
	cafeService := service.NewCafeService(cafeRepo)
	reviewService := service.NewReviewService(reviewRepo, cafeRepo)
	favoriteService := service.NewFavoriteService(favoriteRepo, cafeRepo)
	jobService := service.NewJobService(jobRepo)
	postService := service.NewPostService(postRepo)
	profileService := service.NewProfileService(profileRepo)
	searchService := service.NewSearchService(cafeRepo, jobRepo, profileRepo)
	exportService := service.NewExportService(cafeRepo)

	s3Storage := storage.NewS3Storage(
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
	)

	// Controllers
	authController := controller.NewAuthController(authService)
	cafeController := controller.NewCafeController(cafeService, exportService)
	reviewController := controller.NewReviewController(reviewService, cafeService)
	favoriteController := controller.NewFavoriteController(favoriteService, cafeService)
	jobController := controller.NewJobController(jobService)
	postController := controller.NewPostController(postService)
	profileController := controller.NewProfileController(profileService)
	searchController := controller.NewSearchController(searchService)
	uploadController := controller.NewUploadController(s3Storage)
	liveSearchHandler := websocket.NewLiveSearchHandler(cafeService)

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	postPublisher := scheduler.NewPostPublisher(postService)
	if err := postPublisher.Start(); err != nil {
		logger.Error("Failed to start post publish scheduler", err)
	}
	defer postPublisher.Stop()

	r := router.NewRouter(
		authController,
		cafeController,
		reviewController,
		favoriteController,
		jobController,
		postController,
		profileController,
		searchController,
		uploadController,
		liveSearchHandler,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
