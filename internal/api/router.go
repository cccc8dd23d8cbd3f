package api

import (
	"context"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/clientdesk/registry-api/internal/api/handler"
	"github.com/clientdesk/registry-api/internal/api/middleware"
	"github.com/clientdesk/registry-api/internal/core/domain"
	"github.com/clientdesk/registry-api/internal/core/service"
	"github.com/clientdesk/registry-api/internal/infrastructure/config"
	mongorepo "github.com/clientdesk/registry-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/clientdesk/registry-api/internal/infrastructure/db/redis"
	"github.com/clientdesk/registry-api/internal/infrastructure/http/handlers"
	"github.com/clientdesk/registry-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes
// registered. It is the composition root offered to the hosting process,
// which supplies the established Mongo and Redis connections.
// loggerOptions is the single source of logger configuration. Every
// Init call site in this package uses it, so the sync.Once guard in
// pkg/logger cannot leave the singleton missing the service field when
// SeedAdmin runs before NewRouter.
func loggerOptions(cfg *config.Config) logger.Options {
	return logger.Options{
		Level:   cfg.LogLevel,
		Service: "registry-api",
		Pretty:  cfg.Env == "development",
	}
}

func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config) *echo.Echo {
	log := logger.Init(loggerOptions(cfg))

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("registry"))

	// --- Dependencies ---
	denylist := redisinfra.NewTokenDenylist(rdb)

	userRepo := mongorepo.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, denylist, cfg.JWTSecret, cfg.TokenTTL, log)
	authHandler := handler.NewAuthHandler(authService)

	clientRepo := mongorepo.NewClientRepository(db)
	clientService := service.NewClientService(clientRepo, log)
	clientHandler := handler.NewClientHandler(clientService)

	authMiddleware := middleware.Auth(cfg.JWTSecret, denylist)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/reset", authHandler.ResetPassword)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)

	// --- Client registry routes ---
	clients := e.Group("/v1/clients", authMiddleware)
	clients.POST("", clientHandler.Create)
	clients.GET("", clientHandler.List)
	clients.POST("/search", clientHandler.Search, middleware.RBAC(domain.RoleAdmin))
	clients.DELETE("/:id", clientHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

// SeedAdmin creates the default administrator account from configuration
// when one is supplied. Intended to be called by the hosting process
// after EnsureIndexes.
func SeedAdmin(ctx context.Context, db *mongo.Database, cfg *config.Config) error {
	if cfg.AdminDocument == "" || cfg.AdminPassword == "" {
		return nil
	}

	log := logger.Init(loggerOptions(cfg))
	authService := service.NewAuthService(mongorepo.NewUserRepository(db), nil, cfg.JWTSecret, cfg.TokenTTL, log)
	return authService.EnsureAdmin(ctx, cfg.AdminDocument, cfg.AdminPassword)
}
