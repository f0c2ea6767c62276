package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"user-admin-service/app/config"
	"user-admin-service/app/driver/kratos"
	"user-admin-service/app/driver/postgres"
	"user-admin-service/app/gateway"
	"user-admin-service/app/port"
	"user-admin-service/app/rest"
	"user-admin-service/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB           *postgres.DB
	KratosClient *kratos.Client

	// Gateways
	IdentityGateway port.IdentityGateway
	ProfileGateway  port.ProfileGateway

	// Usecases
	AdminUsecase port.UserAdminUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	// Initialize drivers
	var err error

	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	container.KratosClient, err = kratos.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kratos client: %w", err)
	}

	// Initialize repositories
	profileRepository := postgres.NewProfileRepository(container.DB.Pool(), logger)

	// Initialize gateways
	identityClientAdapter := kratos.NewIdentityClientAdapter(container.KratosClient, cfg, logger)
	container.IdentityGateway = gateway.NewIdentityGateway(identityClientAdapter, logger)
	container.ProfileGateway = gateway.NewProfileGateway(profileRepository, logger)

	// Initialize usecases
	container.AdminUsecase = usecase.NewUserAdminInteractor(
		container.IdentityGateway,
		container.ProfileGateway,
		logger,
	)

	logger.Info("Container initialized with full dependency stack")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:         c.Logger,
		AdminUsecase:   c.AdminUsecase,
		ProfileGateway: c.ProfileGateway,
		DatabaseCheck:  c.DB,
		KratosCheck:    c.KratosClient,
		EnableDebug:    c.Config.LogLevel == "debug",
		EnableMetrics:  c.Config.EnableMetrics,
	}

	router := rest.NewRouter(routerConfig)

	c.Logger.Info("Full API router created")
	return router
}

// Close closes all resources
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}

	c.Logger.Info("Container resources closed")
	return nil
}
