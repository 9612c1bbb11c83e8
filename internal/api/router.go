package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/agenda-universal/especialidades-api/docs"
	"github.com/agenda-universal/especialidades-api/internal/api/handler"
	"github.com/agenda-universal/especialidades-api/internal/api/middleware"
	"github.com/agenda-universal/especialidades-api/internal/core/service"
	mongodb "github.com/agenda-universal/especialidades-api/internal/infrastructure/db/mongo"
	"github.com/agenda-universal/especialidades-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Binder = handler.NewStrictBinder()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("especialidades"))

	// --- Dependencies ---
	authRepo := mongodb.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, jwtSecret, tokenTTL)
	authHandler := handler.NewAuthHandler(authService)

	specialtyRepo := mongodb.NewSpecialtyRepository(db)
	specialtyService := service.NewSpecialtyService(specialtyRepo, log)
	specialtyHandler := handler.NewSpecialtyHandler(specialtyService)

	// --- Auth routes ---
	e.POST("/login", authHandler.Login)

	// --- Specialty routes (bearer token required) ---
	g := e.Group("/especialidades", middleware.Auth(authService))
	g.POST("", specialtyHandler.Create)
	g.GET("", specialtyHandler.List)
	g.GET("/:id", specialtyHandler.Get)
	g.PUT("/:id", specialtyHandler.Update)
	g.DELETE("/:id", specialtyHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
