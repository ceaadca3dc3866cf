package routes

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/core"
	"github.com/amirhossein-jamali/code-clicker-api/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/code-clicker-api/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups everything the route table dispatches to
type Handlers struct {
	Auth        *handler.AuthHandler
	Save        *handler.SaveHandler
	Leaderboard *handler.LeaderboardHandler
	Health      *handler.HealthHandler
	Static      *handler.StaticHandler
	// Metrics serves /metrics when set
	Metrics http.Handler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, handlers Handlers, authUseCase usecase.AuthUseCase) {
	router.GET("/", handlers.Health.Root)
	router.GET("/healthz", handlers.Health.Liveness)
	if handlers.Metrics != nil {
		router.GET("/metrics", gin.WrapH(handlers.Metrics))
	}

	router.POST("/register", handlers.Auth.Register)
	router.POST("/login", handlers.Auth.Login)
	router.GET("/leaderboard", handlers.Leaderboard.Top)

	// Game state routes require a session token
	game := router.Group("/", middleware.Auth(authUseCase))
	{
		game.POST("/save", handlers.Save.Save)
		game.GET("/load", handlers.Save.Load)
	}

	if handlers.Static != nil {
		router.NoRoute(handlers.Static.NoRoute)
	}
}

// MiddlewareOptions configures the global middleware chain
type MiddlewareOptions struct {
	AllowedOrigins []string
	// Metrics records per-route request metrics when set
	Metrics middleware.RequestObserver
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, opts MiddlewareOptions) {
	// Request id first so every later middleware can log it
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	if opts.Metrics != nil {
		router.Use(middleware.Metrics(opts.Metrics))
	}
	router.Use(middleware.CORS(opts.AllowedOrigins))
}
