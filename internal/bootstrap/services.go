package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/itsm-tools/device-agreement/config"
	"github.com/itsm-tools/device-agreement/internal/adapters/agreementsim"
	"github.com/itsm-tools/device-agreement/internal/adapters/graph"
	"github.com/itsm-tools/device-agreement/internal/service"
)

// ServiceContainer holds the initialized application services.
type ServiceContainer struct {
	Auth       *service.AuthService
	Devices    *service.DeviceFetchService
	Agreements *service.AgreementService
}

// ServiceDeps contains dependencies for creating services.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// NewServices creates all application services from their dependencies.
func NewServices(ctx context.Context, deps *ServiceDeps) (ServiceContainer, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	authSvc, err := BuildAuthService(ctx, AuthDeps{
		Auth:        deps.Config.Auth,
		RedisClient: deps.RedisClient,
		Logger:      logger,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build auth service: %w", err)
	}

	directory, err := graph.NewClient(graph.Config{
		BaseURL: deps.Config.Graph.BaseURL,
		Timeout: deps.Config.Graph.Timeout,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build graph client: %w", err)
	}

	deviceSvc := service.NewDeviceFetchService(service.DeviceFetchServiceOptions{
		Directory: directory,
		Logger:    logger,
	})

	agreementSvc := service.NewAgreementService(service.AgreementServiceOptions{
		Recorder: agreementsim.NewRecorder(logger),
	})

	return ServiceContainer{
		Auth:       authSvc,
		Devices:    deviceSvc,
		Agreements: agreementSvc,
	}, nil
}
