package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/core"
	authUseCase "github.com/amirhossein-jamali/code-clicker-api/internal/domain/usecase/auth"
	leaderboardUseCase "github.com/amirhossein-jamali/code-clicker-api/internal/domain/usecase/leaderboard"
	saveUseCase "github.com/amirhossein-jamali/code-clicker-api/internal/domain/usecase/save"
	statusUseCase "github.com/amirhossein-jamali/code-clicker-api/internal/domain/usecase/status"

	"github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/security"
	timeProvider "github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	appLogger, err := logger.NewZapLogger(cfg.ToLoggerConfig())
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Flush()

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error("Server terminated", map[string]any{"error": err.Error()})
		appLogger.Flush()
		os.Exit(1)
	}
}

func run(cfg *config.Config, appLogger core.Logger) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger.Info("Configuration loaded", map[string]any{
		"env":         cfg.Environment,
		"config_file": cfg.ConfigFile,
		"dotenv_file": cfg.DotEnvFile,
	})

	tp := timeProvider.NewRealTimeProvider()
	appMetrics := metrics.New()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbManager := database.NewManager(cfg.ToDatabaseConfig(), appLogger, tp).WithObservers(appMetrics, appMetrics)
	if _, err := dbManager.Connect(ctx); err != nil {
		return err
	}
	defer func() {
		appLogger.Info("Closing database", map[string]any{"pool": dbManager.PoolMetrics()})
		if err := dbManager.Close(); err != nil {
			appLogger.Error("Failed to close database", map[string]any{"error": err.Error()})
		}
	}()

	if err := dbManager.Migrate(ctx); err != nil {
		return err
	}

	hasher, err := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	if err != nil {
		return err
	}
	tokens, err := security.NewJWTTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, tp)
	if err != nil {
		return err
	}

	// Every use case gets its own unit of work; each carries its transaction in the request context
	auth := authUseCase.NewAuthUseCase(dbManager.CreateUnitOfWork(), dbManager.UserRepository(), hasher, tokens, tp, appLogger)
	saves := saveUseCase.NewSaveUseCase(dbManager.CreateUnitOfWork(), dbManager.SaveRepository(), tp, appLogger)
	leaderboard := leaderboardUseCase.NewLeaderboardUseCase(dbManager.LeaderboardRepository(), appLogger)
	health := statusUseCase.NewHealthUseCase(dbManager.StatusRepository(), appLogger)

	if cfg.Seed.DemoPlayers {
		if err := migration.SeedDemoPlayers(ctx, auth, saves, appLogger, migration.DefaultDemoPlayers); err != nil {
			appLogger.Error("Failed to seed demo players", map[string]any{"error": err.Error()})
		}
	}

	router := gin.New()

	middlewareOpts := routes.MiddlewareOptions{AllowedOrigins: cfg.CORS.AllowedOrigins}
	handlers := routes.Handlers{
		Auth:        handler.NewAuthHandler(auth, appLogger),
		Save:        handler.NewSaveHandler(saves, appLogger),
		Leaderboard: handler.NewLeaderboardHandler(leaderboard, appLogger),
		Health:      handler.NewHealthHandler(health, appLogger),
	}
	if cfg.Metrics.Enabled {
		middlewareOpts.Metrics = appMetrics
		handlers.Metrics = appMetrics.Handler()
	}
	if cfg.Server.StaticDir != "" {
		handlers.Static = handler.NewStaticHandler(cfg.Server.StaticDir)
	}

	routes.SetupMiddlewares(router, appLogger, middlewareOpts)
	routes.SetupRoutes(router, handlers, auth)

	server := &http.Server{
		Addr:              cfg.Address(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
		return err
	}

	appLogger.Info("Server exited gracefully", nil)
	return nil
}
