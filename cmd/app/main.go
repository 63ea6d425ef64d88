package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	apiHttp "github.com/addresses/cities/internal/api/http"
	"github.com/addresses/cities/internal/cache"
	"github.com/addresses/cities/internal/config"
	"github.com/addresses/cities/internal/db"
	"github.com/addresses/cities/internal/repository"
	"github.com/addresses/cities/internal/server"
	"github.com/addresses/cities/pkg/logger"
)

func main() {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg := config.MustLoad()

	appLogger := logger.SetupLogger(cfg.Env, cfg.LogLevel)
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("starting cities api", zap.String("storage", cfg.Storage.Driver))
	appLogger.Debug("debug messages are enabled")

	deps := repository.Deps{Driver: cfg.Storage.Driver, KeyPrefix: cfg.Cache.KeyPrefix}

	switch cfg.Storage.Driver {
	case config.StorageMySQL, config.StoragePostgres:
		dbConn, err := db.New(cfg.Storage.Driver, cfg.Database)
		if err != nil {
			appLogger.Error("database connect problem", zap.Error(err))
			os.Exit(1)
		}
		defer func() {
			if err := dbConn.Close(); err != nil {
				appLogger.Error("error when closing database", zap.Error(err))
			}
		}()
		deps.DB = dbConn
		appLogger.Info("database connection done")
	case config.StorageRedis:
		redisClient, err := cache.NewRedis(context.Background(), cfg.Cache)
		if err != nil {
			appLogger.Error("redis connect problem", zap.Error(err))
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				appLogger.Error("error when closing redis", zap.Error(err))
			}
		}()
		deps.Redis = redisClient
		appLogger.Info("redis connection done")
	}

	repos, err := repository.NewRepositories(deps)
	if err != nil {
		appLogger.Error("repositories init failed", zap.Error(err))
		os.Exit(1)
	}

	handlers := apiHttp.NewHandlers(repos, appLogger)

	bgCtx, stopBackground := context.WithCancel(context.Background())
	defer stopBackground()

	// HTTP Server
	srv := server.NewServer(cfg.HttpServer, handlers.Init(bgCtx, cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	appLogger.Info("server started", zap.String("addr", srv.Addr()))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	ctx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(ctx); err != nil {
		appLogger.Error("failed to stop server", zap.Error(err))
	}

	appLogger.Info("app stopped")
}
