package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	portsrepo "github.com/SscSPs/deal_desk/internal/core/ports/repositories"
	"github.com/SscSPs/deal_desk/internal/core/services"
	"github.com/SscSPs/deal_desk/internal/handlers"
	"github.com/SscSPs/deal_desk/internal/middleware"
	"github.com/SscSPs/deal_desk/internal/platform/config"
	"github.com/SscSPs/deal_desk/internal/repositories/cache"
	"github.com/SscSPs/deal_desk/internal/repositories/database/pgsql"
	"github.com/SscSPs/deal_desk/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Deal Desk API
// @version 1.0
// @description Deal structuring, payment scenarios and profit analysis for the dealership deal desk.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	scenarioCache, closeCache := newScenarioCache(ctx, cfg, logger)
	defer closeCache()

	repos := portsrepo.RepositoryProvider{ScenarioCache: scenarioCache}
	if cfg.DatabaseURL != "" {
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer database.ClosePgxPool(dbPool)
		logger.Info("Database connection pool established.")

		if err := database.RunMigrations(logger, cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
		repos = pgsql.NewRepositoryProvider(dbPool, scenarioCache)
	} else {
		logger.Warn("PGSQL_URL not set, worksheet routes are disabled")
	}

	serviceContainer, err := services.NewServiceContainer(cfg, repos)
	if err != nil {
		logger.Error("Failed to build services", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, middleware.RateLimit(rateLimiter)); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newScenarioCache connects to redis when REDIS_ADDR is set and otherwise
// keeps computed scenario sets in process memory.
func newScenarioCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.ScenarioCache, func()) {
	if cfg.RedisAddr == "" {
		logger.Info("Using in-memory scenario cache")
		return cache.NewMemoryCache(cfg.ScenarioCacheTTL, time.Minute), func() {}
	}

	redisCache, err := cache.NewRedisCache(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("Failed to connect to redis", slog.String("addr", cfg.RedisAddr), slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Connected to redis scenario cache", slog.String("addr", cfg.RedisAddr))
	return redisCache, func() {
		if err := redisCache.Close(); err != nil {
			logger.Error("Error closing redis client", slog.String("error", err.Error()))
		}
	}
}
