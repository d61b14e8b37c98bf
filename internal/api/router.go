package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/healthdesk/staff-directory/internal/api/handler"
	"github.com/healthdesk/staff-directory/internal/api/middleware"
	"github.com/healthdesk/staff-directory/internal/core/domain"
	"github.com/healthdesk/staff-directory/internal/core/service"
	mongodb "github.com/healthdesk/staff-directory/internal/infrastructure/db/mongo"
	redisdb "github.com/healthdesk/staff-directory/internal/infrastructure/db/redis"
	"github.com/healthdesk/staff-directory/internal/infrastructure/http/handlers"
	"github.com/healthdesk/staff-directory/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("staffdir"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	presence := redisdb.NewPresenceTracker(rdb, cfg.TokenTTL())
	codec := service.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL())
	authService := service.NewAuthService(userRepo, presence, codec, log)
	userService := service.NewUserService(userRepo, presence, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService, log)

	authenticate := middleware.Authenticate(authService)
	adminOnly := middleware.RequireRole(authService, domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/login", authHandler.Login)

	// --- Admin-only directory routes ---
	admin := e.Group("", authenticate, adminOnly)
	admin.POST("/register", userHandler.Register)
	admin.GET("/users", userHandler.List)
	admin.GET("/user/email/:email", userHandler.GetByEmail)
	admin.GET("/user/username/:username", userHandler.GetByUsername)
	admin.PUT("/user/update/:id", userHandler.Update)
	admin.DELETE("/user/delete/:id", userHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
