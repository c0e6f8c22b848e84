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

	"github.com/starkspartacus/job-sub000/config"
	_ "github.com/starkspartacus/job-sub000/docs" // Important for Swagger
	v1 "github.com/starkspartacus/job-sub000/internal/delivery/http/v1"
	"github.com/starkspartacus/job-sub000/internal/repository/postgres"
	"github.com/starkspartacus/job-sub000/internal/usecase"
	"github.com/starkspartacus/job-sub000/pkg/auth"
	"github.com/starkspartacus/job-sub000/pkg/database"
	"github.com/starkspartacus/job-sub000/pkg/email"
	"github.com/starkspartacus/job-sub000/pkg/logger"
	"github.com/starkspartacus/job-sub000/pkg/redis"
	"github.com/starkspartacus/job-sub000/pkg/security"
	"github.com/starkspartacus/job-sub000/pkg/storage"
)

const serviceName = "emploi-hotellerie-api"

// @title           Emploi Hôtellerie API
// @version         1.0
// @description     Hospitality job marketplace for West Africa: candidates, employers and job offers.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Loggers
	logger.Init(serviceName, cfg.IsProduction())
	logger.Log.Info("Starting API", "port", cfg.Port, "environment", cfg.Environment)
	secLogger := security.NewSecurityLogger(serviceName, cfg.Environment)
	defer secLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis, falling back to in-process counters
	if err := redis.Initialize(ctx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, using in-memory counters", "error", err)
	}
	defer redis.Close()
	counters := security.NewCounterStore(redis.Client())
	if mem, ok := counters.(*security.MemoryStore); ok {
		go mem.RunJanitor(ctx, time.Minute)
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	candidateRepo := postgres.NewCandidateRepository(dbPool)
	employerRepo := postgres.NewEmployerRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	statsRepo := postgres.NewStatsRepository(dbPool)

	// 6. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not configured - welcome emails are disabled")
	}

	// 7. Setup Object Storage
	var objectStore storage.ObjectStore = storage.Disabled()
	var s3Store *storage.S3Store
	s3Store, err = storage.NewS3Store(ctx, storage.S3Config{
		Endpoint:        cfg.StorageEndpoint,
		Region:          cfg.StorageRegion,
		Bucket:          cfg.StorageBucket,
		AccessKeyID:     cfg.StorageAccessKey,
		SecretAccessKey: cfg.StorageSecretKey,
		PublicBaseURL:   cfg.StoragePublicBaseURL,
	})
	switch {
	case errors.Is(err, storage.ErrNotConfigured):
		logger.Log.Warn("Object storage not configured - uploads are disabled")
	case err != nil:
		logger.Log.Error("Failed to set up object storage", "error", err)
	default:
		objectStore = s3Store
	}
	breakerStore := storage.NewBreakerStore(objectStore, "object-storage")

	// 8. Setup Auth
	if cfg.JWTSecret == "" {
		logger.Log.Error("JWT_SECRET is required")
		os.Exit(1)
	}
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.JWTTTL)
	loginTracker := security.NewLoginTracker(security.LoginTrackerConfig{
		MaxAttempts:   cfg.FailedLoginMaxAttempts,
		AttemptWindow: time.Duration(cfg.FailedLoginBlockMinutes) * time.Minute,
		BlockDuration: time.Duration(cfg.FailedLoginBlockMinutes) * time.Minute,
		UseIPTracking: true,
	}, counters, secLogger)
	uploadLimiter := security.NewUploadLimiter(counters, 10, 100)

	// 9. Setup UseCases
	authUC := usecase.NewAuthUsecase(userRepo, tokens, loginTracker, emailService, secLogger, cfg.FrontendURL)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, secLogger)
	employerUC := usecase.NewEmployerUsecase(employerRepo, jobRepo)
	jobUC := usecase.NewJobUsecase(jobRepo, employerRepo)
	uploadUC := usecase.NewUploadUsecase(candidateRepo, employerRepo, breakerStore, uploadLimiter, secLogger, int(cfg.UploadMaxBytes))
	dashboardUC := usecase.NewDashboardUsecase(candidateRepo, employerRepo, jobRepo, statsRepo)

	checks := map[string]usecase.HealthCheck{
		"database": dbPool.Ping,
	}
	if redis.Client() != nil {
		checks["redis"] = redis.HealthCheck
	}
	if s3Store != nil {
		checks["storage"] = func(ctx context.Context) error {
			if breakerStore.State() == "open" {
				return storage.ErrUnavailable
			}
			return s3Store.Ping(ctx)
		}
	}
	healthUC := usecase.NewHealthUsecase(checks)

	// 10. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:      authUC,
		CandidateUC: candidateUC,
		EmployerUC:  employerUC,
		JobUC:       jobUC,
		UploadUC:    uploadUC,
		DashboardUC: dashboardUC,
		Health:      healthUC,
		Tokens:      tokens,
		Counters:    counters,
		SecLogger:   secLogger,
		Config:      cfg,
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
