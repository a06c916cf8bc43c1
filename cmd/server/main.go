package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SAP-F-2025/challenge-service/internal/cache"
	"github.com/SAP-F-2025/challenge-service/internal/config"
	"github.com/SAP-F-2025/challenge-service/internal/handlers"
	"github.com/SAP-F-2025/challenge-service/internal/repositories/postgres"
	"github.com/SAP-F-2025/challenge-service/internal/services"
	"github.com/SAP-F-2025/challenge-service/internal/utils"
	"github.com/SAP-F-2025/challenge-service/internal/validator"
	"github.com/SAP-F-2025/challenge-service/pkg"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		slog.Error("challenge-service stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger := utils.NewLogger(cfg.Environment, cfg.LogLevel)
	slog.SetDefault(logger.Slog())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		return err
	}

	cacheLogger, err := newCacheLogger(cfg)
	if err != nil {
		return err
	}
	defer cacheLogger.Sync()

	var templates *cache.TemplateCache
	redisClient, err := pkg.NewRedisClient(ctx, cfg)
	if err != nil {
		logger.Warn("Redis unavailable, templates will be parsed on every request", "error", err)
	} else {
		defer redisClient.Close()
		templates = cache.NewTemplateCache(cache.NewRedisCache(redisClient, cacheLogger), cfg.TemplateCacheTTL, cacheLogger)
	}

	publisher, err := cfg.Events.CreateEventPublisher(logger.Slog())
	if err != nil {
		return err
	}
	defer publisher.Close()

	serviceManager := services.NewServiceManager(services.Dependencies{
		Repo:      postgres.NewRepository(db),
		Templates: templates,
		Publisher: publisher,
		Validator: validator.New(),
		Logger:    logger.Slog(),
	})

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		if !cfg.Casdoor.Enabled {
			logger.Warn("Casdoor disabled in production, trusting X-User-ID header")
		}
	}
	router := gin.New()
	router.Use(gin.Recovery(), utils.ContextLogger(logger), utils.LoggerMiddleware(logger))
	handlers.NewHandlerManager(serviceManager, handlers.NewCasdoorParser(cfg.Casdoor), logger).SetupRoutes(router)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Starting challenge-service", "port", cfg.Port, "environment", cfg.Environment)
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// newCacheLogger builds the zap logger used by the redis cache layer.
func newCacheLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
