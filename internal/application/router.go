package application

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"github.com/psds-microservice/vehicle-service/api"
	"github.com/psds-microservice/vehicle-service/internal/config"
	"github.com/psds-microservice/vehicle-service/internal/handler"
	"github.com/psds-microservice/vehicle-service/pkg/constants"
)

// NewRouter создает роутер. limiter может быть nil — тогда /vehicles без лимита.
// Неизвестные пути и методы получают стандартный 404 gin.
func NewRouter(
	vehicleHandler *handler.VehicleHandler,
	healthHandler *handler.HealthHandler,
	limiter *handler.RateLimitState,
	logger *zap.Logger,
	cfg *config.Config,
) http.Handler {
	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			logger.Info("HTTP Request",
				zap.String("method", param.Method),
				zap.String("path", param.Path),
				zap.Int("status", param.StatusCode),
				zap.Duration("latency", param.Latency),
				zap.String("client_ip", param.ClientIP))
			return ""
		},
	}))
	router.Use(gin.Recovery())

	var vehicleMiddleware []gin.HandlerFunc
	if limiter != nil {
		vehicleMiddleware = append(vehicleMiddleware, handler.RateLimitMiddleware(limiter))
	}
	vehicleHandler.RegisterRoutes(router, vehicleMiddleware...)
	healthHandler.RegisterRoutes(router)

	if cfg.Swagger.Enabled {
		router.GET(constants.PathOpenAPI, func(c *gin.Context) {
			c.Data(http.StatusOK, constants.ContentTypeJSON, api.OpenAPISpec)
		})
		router.GET(constants.PathSwagger+"/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL(constants.PathOpenAPI),
			httpSwagger.DeepLinking(true),
			httpSwagger.DocExpansion("list"),
		)))
	}

	corsOpts := cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept", "Accept-Encoding", "Cache-Control", "X-Requested-With"},
	}
	return cors.New(corsOpts).Handler(router)
}
