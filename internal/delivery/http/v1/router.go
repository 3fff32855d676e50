package v1

import (
	"net/http"
	"time"

	"talentai-backend/config"
	"talentai-backend/internal/delivery/http/middleware"
	"talentai-backend/internal/delivery/http/response"
	"talentai-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC             domain.AuthUsecase
	WizardUC           domain.WizardUsecase
	CandidateProfileUC domain.CandidateProfileUsecase
	CompanyProfileUC   domain.CompanyProfileUsecase
	JobUC              domain.JobUsecase
	MatchingUC         domain.MatchingUsecase
	BidUC              domain.BidUsecase
	DashboardUC        domain.DashboardUsecase
	Config             *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second
	r.Use(middleware.RateLimitMiddleware(
		middleware.DefaultRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window),
	))
	loginLimiter := middleware.RateLimitMiddleware(
		middleware.LoginRateLimitConfig(deps.Config.RateLimitLoginThreshold, window),
	)

	v1 := r.Group("/v1")

	// Health check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	NewCatalogHandler(v1)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Config, deps.AuthUC))
	{
		NewAuthHandler(v1, protected, deps.AuthUC, deps.Config, loginLimiter)
		NewWizardHandler(protected, deps.WizardUC)
		NewProfileHandler(protected, deps.CandidateProfileUC, deps.CompanyProfileUC)
		NewJobHandler(v1, protected, deps.JobUC, deps.BidUC)
		NewMatchingHandler(protected, deps.MatchingUC)
		NewBidHandler(protected, deps.BidUC)
		NewDashboardHandler(protected, deps.DashboardUC, middleware.RequireRole(domain.RoleAdmin, domain.RoleCompany))
	}

	return r
}
