package handlers

import (
	"github.com/corralonapp/cuentas_backend/cmd/docs"
	"github.com/corralonapp/cuentas_backend/internal/core/domain"
	portssvc "github.com/corralonapp/cuentas_backend/internal/core/ports/services"
	"github.com/corralonapp/cuentas_backend/internal/middleware"
	"github.com/corralonapp/cuentas_backend/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {
	RegisterCustomValidators()

	// Add health check route
	r.GET("/health", GetHealth)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services, rateLimiter)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// RegisterCustomValidators wires domain-specific validations into gin's binding validator.
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("accountkind", func(fl validator.FieldLevel) bool {
			switch domain.AccountKind(fl.Field().String()) {
			case domain.Carrier, domain.Manufacturer:
				return true
			}
			return false
		})
	}
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
) {
	// Apply rate limiting and AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.RateLimit(rateLimiter), middleware.AuthMiddleware(cfg.JWTSecret))

	RegisterAccountRoutes(v1, services.Account)
	RegisterLedgerRoutes(v1, services.Ledger)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
