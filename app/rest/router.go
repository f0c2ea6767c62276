package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"user-admin-service/app/port"
	"user-admin-service/app/rest/handlers"
	custommw "user-admin-service/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger         *slog.Logger
	AdminUsecase   port.UserAdminUsecase
	ProfileGateway port.ProfileGateway
	DatabaseCheck  handlers.DependencyChecker
	KratosCheck    handlers.DependencyChecker
	EnableDebug    bool
	EnableMetrics  bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.Debug = config.EnableDebug

	// Create handlers
	adminHandler := handlers.NewAdminHandler(config.AdminUsecase, config.Logger)
	profileHandler := handlers.NewProfileHandler(config.ProfileGateway, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.DatabaseCheck, config.KratosCheck, config.Logger)

	rateLimiter := custommw.NewRateLimiter()

	// Global middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.DefaultCORS())
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())

	// API versioning
	v1 := e.Group("/v1")

	// Health endpoints
	health := v1.Group("/health")
	health.GET("", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Admin user management endpoints
	users := v1.Group("/admin/users")
	users.POST("/password-reset", adminHandler.SendPasswordReset)
	users.POST("/reauthenticate", adminHandler.RequestReauthentication)
	users.POST("/magic-link", adminHandler.SendMagicLink)
	users.POST("/invite", adminHandler.InviteUser)
	users.POST("/sync-metadata", adminHandler.SyncAllUsersAppMetadata)
	users.GET("/:userId", profileHandler.GetProfile)
	users.DELETE("/:userId", adminHandler.DeleteUser)
	users.POST("/:userId/email", adminHandler.ChangeUserEmail)
	users.POST("/:userId/app-metadata", adminHandler.UpdateUserAppMetadata)

	// Metrics endpoint (if enabled)
	if config.EnableMetrics {
		// TODO: Add Prometheus metrics endpoint
		// e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	}

	return e
}
