package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/starkspartacus/job-sub000/config"
	"github.com/starkspartacus/job-sub000/internal/delivery/http/middleware"
	"github.com/starkspartacus/job-sub000/internal/domain"
	"github.com/starkspartacus/job-sub000/pkg/auth"
	"github.com/starkspartacus/job-sub000/pkg/security"
	"github.com/starkspartacus/job-sub000/pkg/validation"
)

type RouterDeps struct {
	AuthUC      domain.AuthUsecase
	CandidateUC domain.CandidateUsecase
	EmployerUC  domain.EmployerUsecase
	JobUC       domain.JobUsecase
	UploadUC    domain.UploadUsecase
	DashboardUC domain.DashboardUsecase
	Health      HealthChecker
	Tokens      *auth.TokenIssuer
	Counters    security.CounterStore
	SecLogger   *security.SecurityLogger
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.Configure(v)
	}

	r := gin.New()
	window := time.Duration(deps.Config.RateLimitWindowSeconds) * time.Second

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config.IsProduction()))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(deps.Counters, deps.SecLogger,
		middleware.GlobalRateLimitConfig(deps.Config.RateLimitGlobalThreshold, window)))

	v1 := r.Group("/v1")

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Login and registration get a stricter per-IP budget
	authLimit := middleware.RateLimitMiddleware(deps.Counters, deps.SecLogger,
		middleware.LoginRateLimitConfig(deps.Config.RateLimitLoginThreshold, window))

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.Config.CookieName, deps.AuthUC))

	candidateOnly := protected.Group("")
	candidateOnly.Use(middleware.RequireRole(deps.SecLogger, domain.RoleCandidate))

	employerOnly := protected.Group("")
	employerOnly.Use(middleware.RequireRole(deps.SecLogger, domain.RoleEmployer))

	NewAuthHandler(v1, protected, deps.AuthUC, CookieConfig{
		Name:   deps.Config.CookieName,
		Secure: deps.Config.CookieSecure,
	}, authLimit)
	NewLocationHandler(v1)
	NewCandidateHandler(v1, candidateOnly, employerOnly, deps.CandidateUC)
	NewEmployerHandler(v1, employerOnly, deps.EmployerUC)
	NewJobHandler(v1, employerOnly, deps.JobUC)
	NewUploadHandler(protected, deps.UploadUC, deps.Config.UploadMaxBytes)
	NewPlatformHandler(v1, protected, deps.DashboardUC, deps.Health)

	return r
}
