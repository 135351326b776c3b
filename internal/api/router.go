package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/smarthealth/patient-api/internal/api/handler"
	"github.com/smarthealth/patient-api/internal/api/middleware"
	"github.com/smarthealth/patient-api/internal/core/service"
	"github.com/smarthealth/patient-api/internal/infrastructure/config"
	"github.com/smarthealth/patient-api/internal/infrastructure/crypto"
	mongodb "github.com/smarthealth/patient-api/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("smarthealth"))

	// --- Dependencies ---
	patientRepo := mongodb.NewPatientRepository(db)
	hasher := crypto.NewBcryptHasher(cfg.Auth.BcryptCost)
	tokenService := service.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authService := service.NewAuthService(patientRepo, hasher, tokenService, log)
	authHandler := handler.NewAuthHandler(authService)
	patientHandler := handler.NewPatientHandler()
	authMiddleware := middleware.Auth(authService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Patient routes (bearer token required) ---
	patients := e.Group("/patients", authMiddleware)
	patients.GET("/me", patientHandler.Me)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
