package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/itsm-tools/device-agreement/internal/domain/auth"
)

// BeginInput carries inputs for initiating an auth flow. ReturnPath is the
// in-app path the browser should land on after the callback; the OAuth
// redirect_uri itself is fixed provider configuration.
type BeginInput struct {
	ReturnPath string
}

// ExchangeInput groups parameters for the code/token exchange.
type ExchangeInput struct {
	Code  string
	State string
	Nonce string
}

// AuthProvider initiates and completes an authentication flow against an IdP.
type AuthProvider interface {
	// Begin starts the login flow and returns the provider auth URL, an opaque state, and a nonce.
	Begin(ctx context.Context, in BeginInput) (authURL, state, nonce string, err error)

	// Exchange completes the login flow, verifying the nonce, and returns the
	// authenticated identity including the access and refresh tokens.
	Exchange(ctx context.Context, in ExchangeInput) (domainauth.Identity, error)

	// Refresh trades a refresh token for a new token set. Providers without
	// refresh support return an error.
	Refresh(ctx context.Context, refreshToken string) (domainauth.TokenSet, error)
}

// SessionStore persists and retrieves user sessions.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}
