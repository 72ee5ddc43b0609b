package api

import (
	"context"
	"fmt"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/healthtrack/symptom-tracker/internal/api/handler"
	"github.com/healthtrack/symptom-tracker/internal/api/middleware"
	"github.com/healthtrack/symptom-tracker/internal/core/service"
	"github.com/healthtrack/symptom-tracker/internal/infrastructure/config"
	mongodb "github.com/healthtrack/symptom-tracker/internal/infrastructure/db/mongo"
	redisdb "github.com/healthtrack/symptom-tracker/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(ctx context.Context, db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{cfg.ClientURL},
	}))
	e.Use(echoprometheus.NewMiddleware("symptom_tracker"))

	// --- Dependencies ---
	userRepo, err := mongodb.NewUserRepository(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("init user repository: %w", err)
	}
	symptomRepo := mongodb.NewSymptomRepository(db)
	analyticsCache := redisdb.NewAnalyticsCache(rdb)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService)
	userService := service.NewUserService(userRepo)
	symptomService := service.NewSymptomService(symptomRepo, analyticsCache, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	symptomHandler := handler.NewSymptomHandler(symptomService)

	authGate := middleware.Auth(tokenService)
	adminOnly := middleware.AdminOnly()

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// --- User routes ---
	users := e.Group("/api/users", authGate)
	users.GET("", userHandler.List, adminOnly)
	users.PATCH("/:id/role", userHandler.UpdateRole, adminOnly)
	users.DELETE("/me", userHandler.DeleteMe)
	users.DELETE("/:id", userHandler.Delete, adminOnly)
	users.PATCH("/me", userHandler.UpdateMe)

	// --- Symptom routes ---
	symptoms := e.Group("/api/symptoms", authGate)
	symptoms.POST("", symptomHandler.Log)
	symptoms.GET("/logs", symptomHandler.Logs)
	symptoms.GET("/analytics", symptomHandler.Analytics)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, nil
}
