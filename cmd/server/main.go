package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pushpull/studio-admin/internal/api"
	"pushpull/studio-admin/internal/config"
	"pushpull/studio-admin/internal/logger"
	"pushpull/studio-admin/internal/repository/mongo"
	"pushpull/studio-admin/internal/service"
	"pushpull/studio-admin/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title Push and Pull Studio Admin API
// @version 1.0
// @description API for managing trainers, customers, packages, subscriptions and requests of the studio.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}

	// --- Logging ---
	if err := logger.Init(cfg.Log.Mode, cfg.Log.Level); err != nil {
		log.Fatalf("FATAL: Could not initialize logger: %v", err)
	}
	defer logger.Log.Sync() //nolint:errcheck
	logger.Log.Info("starting studio admin server", zap.String("address", cfg.Server.Address))

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		logger.Log.Fatal("could not connect to MongoDB", zap.Error(err))
	}
	defer func() {
		logger.Log.Info("disconnecting MongoDB")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			logger.Log.Error("failed to disconnect MongoDB", zap.Error(err))
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	logger.Log.Info("database connection established", zap.String("database", cfg.Database.Name))

	// --- Ensure Indexes ---
	go func() { // Run index creation concurrently/in background
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))               //nolint:errcheck
		mongo.EnsurePackageIndexes(ctx, appDB.Collection("packages"))         //nolint:errcheck
		mongo.EnsureRequestIndexes(ctx, appDB.Collection("requests"))         //nolint:errcheck
		mongo.EnsureSuggestionIndexes(ctx, appDB)                             //nolint:errcheck
		mongo.EnsureNotificationIndexes(ctx, appDB)                           //nolint:errcheck
		mongo.EnsureChatIndexes(ctx, appDB.Collection("chat_messages"))       //nolint:errcheck
		logger.Log.Info("index creation process completed")
	}()

	// --- Initialize Storage ---
	mediaStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		logger.Log.Fatal("failed to initialize S3 storage", zap.Error(err))
	}

	// --- Initialize Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	packageRepo := mongo.NewMongoPackageRepository(appDB)
	subscriptionRepo := mongo.NewMongoSubscriptionRepository(appDB)
	requestRepo := mongo.NewMongoRequestRepository(appDB)
	suggestionRepo := mongo.NewMongoSuggestionRepository(appDB)
	notificationRepo := mongo.NewMongoNotificationRepository(appDB)
	chatRepo := mongo.NewMongoChatRepository(appDB)

	// --- Initialize Services ---
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	userService := service.NewUserService(userRepo)
	notificationService := service.NewNotificationService(notificationRepo)
	packageService := service.NewPackageService(packageRepo, userRepo, subscriptionRepo, chatRepo, notificationService)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, packageRepo, userRepo)
	requestService := service.NewRequestService(requestRepo, userRepo, suggestionRepo)
	chatService := service.NewChatService(chatRepo, userRepo)
	calendarService := service.NewCalendarService(userRepo, packageRepo, subscriptionRepo, time.Local)
	dashboardService := service.NewDashboardService(userRepo, packageRepo, requestRepo)

	// --- Initialize Gin Engine ---
	if cfg.Log.Mode != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	api.SetupRoutes(
		router,
		cfg.JWT.Secret,
		authService,
		userService,
		packageService,
		subscriptionService,
		requestService,
		notificationService,
		chatService,
		calendarService,
		dashboardService,
		mediaStorage,
	)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("listen and serve error", zap.Error(err))
		}
	}()
	logger.Log.Info("server listening", zap.String("address", cfg.Server.Address))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Log.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Log.Info("server exiting")
}
