package handlers

import (
	"fmt"

	"github.com/captainmuzzol/OpenPercento/cmd/docs"
	portssvc "github.com/captainmuzzol/OpenPercento/internal/core/ports/services"
	"github.com/captainmuzzol/OpenPercento/internal/dto"
	"github.com/captainmuzzol/OpenPercento/internal/middleware"
	"github.com/captainmuzzol/OpenPercento/internal/platform/config"
	"github.com/captainmuzzol/OpenPercento/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	analytics *utils.PosthogClientWrapper,
) error {
	if err := RegisterValidators(); err != nil {
		return err
	}

	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	r.GET("/health", getHealth)

	if err := setupAPIV1Routes(r, cfg, services, analytics); err != nil {
		return err
	}

	setupSwaggerRoutes(r, cfg)
	return nil
}

// RegisterValidators installs the custom DTO validation tags on gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return dto.RegisterValidators(v)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	analytics *utils.PosthogClientWrapper,
) error {
	limiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return err
	}
	v1 := r.Group("/api/v1", middleware.RateLimit(limiter), middleware.PosthogMiddleware(analytics))

	RegisterAccountRoutes(v1, service.Account)
	RegisterTransactionRoutes(v1, service.Transaction)
	RegisterInvestmentRoutes(v1, service.Investment)
	RegisterRecurringRoutes(v1, service.Recurring, analytics)
	RegisterSettingRoutes(v1, service.Setting)
	RegisterPriceHistoryRoutes(v1, service.PriceHistory)
	RegisterSnapshotRoutes(v1, service.Snapshot)
	RegisterBackupRoutes(v1, service.Backup)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
