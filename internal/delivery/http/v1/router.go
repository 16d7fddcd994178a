package v1

import (
	"net/http"
	"time"

	"go-marketplace-backend/config"
	"go-marketplace-backend/internal/delivery/http/middleware"
	"go-marketplace-backend/internal/delivery/http/response"
	"go-marketplace-backend/internal/domain"
	"go-marketplace-backend/internal/realtime"
	"go-marketplace-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	UserUC        domain.UserUsecase
	WorkerUC      domain.WorkerUsecase
	ContractorUC  domain.ContractorUsecase
	ProfileUC     domain.ProfileUsecase
	JobUC         domain.JobUsecase
	ApplicationUC domain.ApplicationUsecase
	ProjectUC     domain.ProjectUsecase
	ChatUC        domain.ChatUsecase
	HealthUC      domain.HealthUsecase
	Hub           *realtime.Hub
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(
		deps.Config.RateLimitGlobalThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)))
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Health Check
	api.GET("/health", healthHandler(deps.HealthUC))

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	NewUserHandler(api, deps.UserUC)
	NewWorkerHandler(api, deps.WorkerUC, deps.ProfileUC)
	NewContractorHandler(api, deps.ContractorUC, deps.ProfileUC)
	NewJobHandler(api, deps.JobUC)
	NewApplicationHandler(api, deps.ApplicationUC)
	NewProjectHandler(api, deps.ProjectUC)
	NewChatHandler(api, deps.ChatUC)

	// Live delivery sits outside /api so proxies can route upgrades separately
	NewWSHandler(r, deps.Hub, deps.ChatUC, deps.Config.AllowedOrigins, deps.Config.WSInsecureSkipVerify)

	return r
}

// healthHandler godoc
// @Summary      Service health
// @Description  Reports the state of the database and optional backing services
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /health [get]
func healthHandler(healthUC domain.HealthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		if healthUC == nil {
			response.Success(c, http.StatusOK, "System operational", nil)
			return
		}

		services, healthy := healthUC.Check(c)
		if !healthy {
			response.Error(c, http.StatusServiceUnavailable, "System degraded", services)
			return
		}
		response.Success(c, http.StatusOK, "System operational", services)
	}
}
