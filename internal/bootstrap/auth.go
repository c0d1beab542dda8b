package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/itsm-tools/device-agreement/config"
	"github.com/itsm-tools/device-agreement/internal/adapters/devauth"
	"github.com/itsm-tools/device-agreement/internal/adapters/oidc"
	redisadapter "github.com/itsm-tools/device-agreement/internal/adapters/redis"
	"github.com/itsm-tools/device-agreement/internal/ports"
	"github.com/itsm-tools/device-agreement/internal/service"
)

// AuthDeps contains configuration for the auth service.
type AuthDeps struct {
	Auth        config.AuthConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildAuthService creates an auth service based on the configured auth mode.
// Every user interaction depends on sign-in, so a misconfigured provider is a
// startup failure rather than a degraded mode.
func BuildAuthService(ctx context.Context, deps AuthDeps) (*service.AuthService, error) {
	if deps.RedisClient == nil {
		return nil, errors.New("auth service requires a redis client for session storage")
	}

	sessionStore := redisadapter.NewSessionStoreWithPrefix(deps.RedisClient, "session:")

	var (
		provider ports.AuthProvider
		err      error
	)
	switch deps.Auth.Mode {
	case config.AuthModeMock:
		provider, err = buildDevAuthProvider(deps)
	case config.AuthModeOAuth:
		provider, err = buildEntraProvider(ctx, deps)
	default:
		return nil, fmt.Errorf("unknown auth mode %q", deps.Auth.Mode)
	}
	if err != nil {
		return nil, err
	}

	return service.NewAuthService(service.AuthServiceOptions{
		Provider: provider,
		Sessions: sessionStore,
	}), nil
}

//nolint:ireturn // both provider implementations satisfy ports.AuthProvider.
func buildDevAuthProvider(deps AuthDeps) (ports.AuthProvider, error) {
	prov, err := devauth.NewProvider(devauth.Config{
		UserID:            deps.Auth.DevAuth.UserID,
		Email:             deps.Auth.DevAuth.Email,
		UserPrincipalName: deps.Auth.DevAuth.UserPrincipalName,
	})
	if err != nil {
		return nil, fmt.Errorf("create dev auth provider: %w", err)
	}

	if deps.Logger != nil {
		deps.Logger.Warn("mock auth mode enabled, do not use in production",
			"user_id", deps.Auth.DevAuth.UserID)
	}
	return prov, nil
}

//nolint:ireturn // both provider implementations satisfy ports.AuthProvider.
func buildEntraProvider(ctx context.Context, deps AuthDeps) (ports.AuthProvider, error) {
	entra := deps.Auth.Entra
	if err := entra.Validate(); err != nil {
		return nil, err
	}

	prov, err := oidc.NewProvider(ctx, oidc.ProviderConfig{
		ClientID:     entra.ClientID,
		ClientSecret: entra.ClientSecret,
		RedirectURL:  entra.RedirectURL,
		Scope:        entra.Scope,
		Issuer:       entra.Issuer(),
	})
	if err != nil {
		return nil, fmt.Errorf("create entra provider: %w", err)
	}
	return prov, nil
}
