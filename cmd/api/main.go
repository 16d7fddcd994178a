package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-marketplace-backend/config"
	_ "go-marketplace-backend/docs" // Important for Swagger
	v1 "go-marketplace-backend/internal/delivery/http/v1"
	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/internal/realtime"
	"go-marketplace-backend/internal/repository/postgres"
	"go-marketplace-backend/internal/usecase"
	"go-marketplace-backend/pkg/database"
	"go-marketplace-backend/pkg/email"
	"go-marketplace-backend/pkg/logger"
	"go-marketplace-backend/pkg/redis"
	"go-marketplace-backend/pkg/storage"
)

// @title           Marketplace Backend API
// @version         1.0
// @description     Job marketplace backend: profiles, jobs, applications, projects and chat.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting marketplace backend", "port", cfg.Port)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if cfg.DBAutoMigrate {
		if err := database.EnsureSchema(ctx, dbPool); err != nil {
			logger.Log.Error("Failed to apply schema", "error", err)
			os.Exit(1)
		}
		logger.Log.Info("Database schema ensured")
	}

	// 4. Setup Redis (optional)
	var redisPing usecase.Pinger
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, staying in-process", "error", err)
		} else {
			redisPing = redis.HealthCheck
			defer redis.Close()
		}
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	workerRepo := postgres.NewWorkerRepository(dbPool)
	contractorRepo := postgres.NewContractorRepository(dbPool)
	profileRepo := postgres.NewProfileRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	projectRepo := postgres.NewProjectRepository(dbPool)
	chatRepo := postgres.NewChatRepository(dbPool)

	// 6. Setup Realtime Delivery
	hub := realtime.NewHub(0)
	var publisher domain.MessagePublisher = realtime.NewHubPublisher(hub)
	if client := redis.Client(); client != nil {
		publisher = realtime.NewRedisPublisher(client)
		go realtime.NewRelay(client, hub).Run(ctx)
		logger.Log.Info("Chat delivery fanned out through Redis")
	}

	// 7. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - application notifications disabled")
	}

	// 8. Setup Object Storage (optional)
	var photos usecase.PhotoStore
	if cfg.StorageConfigured() {
		store, err := storage.NewS3Store(ctx, storage.Config{
			Provider:        storage.Provider(cfg.S3Provider),
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			Endpoint:        cfg.S3Endpoint,
			PublicBaseURL:   cfg.S3PublicBaseURL,
		})
		if err != nil {
			logger.Log.Warn("Object storage unavailable - photo uploads disabled", "error", err)
		} else {
			photos = store
		}
	} else {
		logger.Log.Warn("Object storage not configured - photo uploads disabled")
	}

	// 9. Setup UseCases
	userUC := usecase.NewUserUsecase(userRepo, photos)
	workerUC := usecase.NewWorkerUsecase(workerRepo, userRepo)
	contractorUC := usecase.NewContractorUsecase(contractorRepo, userRepo)
	profileUC := usecase.NewProfileUsecase(userRepo, workerRepo, contractorRepo, profileRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, contractorRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, workerRepo, contractorRepo, userRepo, emailService)
	projectUC := usecase.NewProjectUsecase(projectRepo, contractorRepo)
	chatUC := usecase.NewChatUsecase(chatRepo, userRepo, publisher)
	healthUC := usecase.NewHealthUsecase(map[string]usecase.Pinger{
		"database": dbPool.Ping,
		"redis":    redisPing,
	})

	// 10. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		UserUC:        userUC,
		WorkerUC:      workerUC,
		ContractorUC:  contractorUC,
		ProfileUC:     profileUC,
		JobUC:         jobUC,
		ApplicationUC: applicationUC,
		ProjectUC:     projectUC,
		ChatUC:        chatUC,
		HealthUC:      healthUC,
		Hub:           hub,
		Config:        cfg,
	})

	// 11. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			stop()
		}
	}()

	// Graceful Shutdown
	<-ctx.Done()
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
