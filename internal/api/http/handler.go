package apiHttp

import (
	"context"
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	_ "github.com/addresses/cities/docs"
	internalV1 "github.com/addresses/cities/internal/api/http/internal/v1"
	"github.com/addresses/cities/internal/config"
	"github.com/addresses/cities/internal/repository"
	"github.com/addresses/cities/pkg/limiter"
	"github.com/addresses/cities/pkg/metrics"
	"github.com/addresses/cities/pkg/validator"
)

const healthPath = "/healthz"

type Handler struct {
	repos   *repository.Repositories
	logger  *zap.Logger
	metrics *metrics.HTTPMetrics
}

func NewHandlers(repos *repository.Repositories, logger *zap.Logger) *Handler {
	return &Handler{
		repos:   repos,
		logger:  logger,
		metrics: metrics.NewHTTPMetrics(),
	}
}

// Init builds the router. Background work started here stops when ctx is done.
func (h *Handler) Init(ctx context.Context, cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	validator.RegisterGinValidator()

	router.Use(
		requestIDMiddleware,
		ginzap.GinzapWithConfig(h.logger, &ginzap.Config{
			TimeFormat: time.RFC3339,
			UTC:        true,
			SkipPaths:  []string{healthPath, cfg.Metrics.Path},
			Context: func(c *gin.Context) []zapcore.Field {
				return []zapcore.Field{zap.String("request_id", c.GetString(requestIDKey))}
			},
		}),
		ginzap.RecoveryWithZap(h.logger, true),
		limiter.Limit(ctx, cfg.Limiter.RPS, cfg.Limiter.Burst, cfg.Limiter.TTL),
		corsMiddleware(cfg.HttpServer.AllowedOrigins),
	)

	if cfg.Metrics.Enabled {
		router.Use(h.metrics.Middleware())
		router.GET(cfg.Metrics.Path, gin.WrapH(h.metrics.Handler()))
	}

	if cfg.HttpServer.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.NewHandler()))
	}

	router.GET(healthPath, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	h.initAPI(router)

	return router
}

func (h *Handler) initAPI(router *gin.Engine) {
	internalHandlersV1 := internalV1.NewHandler(h.logger, h.repos.Cities)
	api := router.Group("/api")
	internalHandlersV1.Init(api)
}
