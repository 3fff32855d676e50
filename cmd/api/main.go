package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"talentai-backend/config"
	_ "talentai-backend/docs" // Important for Swagger
	v1 "talentai-backend/internal/delivery/http/v1"
	"talentai-backend/internal/domain"
	"talentai-backend/internal/repository/postgres"
	"talentai-backend/internal/repository/session"
	"talentai-backend/internal/usecase"
	"talentai-backend/pkg/database"
	"talentai-backend/pkg/logger"
	"talentai-backend/pkg/redis"
	"talentai-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// @title           TalentAI Backend API
// @version         1.0
// @description     Backend for the TalentAI recruitment platform using Clean Architecture.
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

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting TalentAI backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (wizard sessions, rate limiting)
	sessionTTL := time.Duration(cfg.WizardSessionTTLHours) * time.Hour
	memStore := session.NewMemoryStore(sessionTTL)
	defer memStore.Close()
	var sessionStore domain.WizardSessionRepository = memStore
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, wizard sessions held in memory", "error", err)
	} else {
		sessionStore = session.NewRedisStore(redis.Client(), sessionTTL)
		defer redis.Close()
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	candidateProfileRepo := postgres.NewCandidateProfileRepository(dbPool)
	companyProfileRepo := postgres.NewCompanyProfileRepository(dbPool)
	jobRepo := postgres.NewJobRepository(dbPool)
	matchRepo := postgres.NewMatchRepository(dbPool)
	bidRepo := postgres.NewBidRepository(dbPool)
	dashboardRepo := postgres.NewDashboardRepository(dbPool)

	// 6. Setup UseCases
	validate := validator.New()
	validation.RegisterValidators(validate)

	authUC := usecase.NewAuthUsecase(userRepo, cfg.JWTSecret)
	wizardUC := usecase.NewWizardUsecase(sessionStore, candidateProfileRepo, companyProfileRepo, cfg.FrontendURL)
	candidateProfileUC := usecase.NewCandidateProfileUsecase(candidateProfileRepo, userRepo, validate, cfg.SkillTestPassingScore)
	companyProfileUC := usecase.NewCompanyProfileUsecase(companyProfileRepo, validate)
	jobUC := usecase.NewJobUsecase(jobRepo, companyProfileRepo)
	matchingUC := usecase.NewMatchingUsecase(matchRepo, jobRepo, companyProfileRepo)
	bidUC := usecase.NewBidUsecase(bidRepo, jobRepo, companyProfileRepo)
	dashboardUC := usecase.NewDashboardUsecase(dashboardRepo)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:             authUC,
		WizardUC:           wizardUC,
		CandidateProfileUC: candidateProfileUC,
		CompanyProfileUC:   companyProfileUC,
		JobUC:              jobUC,
		MatchingUC:         matchingUC,
		BidUC:              bidUC,
		DashboardUC:        dashboardUC,
		Config:             cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
