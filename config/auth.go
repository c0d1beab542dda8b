package config

import (
	"errors"
	"fmt"
	"strings"
)

// AuthMode represents the authentication mode for the application.
type AuthMode string

const (
	// AuthModeOAuth uses Microsoft Entra ID (OIDC) for authentication.
	AuthModeOAuth AuthMode = "oauth"
	// AuthModeMock uses mock/dev authentication (for development only).
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "oauth", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: oauth, mock)", v)
	}
}

// DefaultScope lists the delegated permissions requested from Entra ID.
// User.Read signs the user in and reads the profile;
// DeviceManagementManagedDevices.Read.All reads Intune device records;
// offline_access yields a refresh token for long-lived sessions.
const DefaultScope = "openid profile email User.Read DeviceManagementManagedDevices.Read.All offline_access"

// EntraConfig contains Microsoft Entra ID OAuth/OIDC configuration.
type EntraConfig struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
	TenantID     string `env:"TENANT_ID"`
	RedirectURL  string `env:"REDIRECT_URL" envDefault:"http://localhost:8080/auth/callback"`
	Scope        string `env:"SCOPE"        envDefault:"openid profile email User.Read DeviceManagementManagedDevices.Read.All offline_access"`
}

// Validate checks that all required Entra fields are present.
// Called at startup when Mode=oauth; a missing credential is fatal
// rather than silently disabling authentication.
func (e EntraConfig) Validate() error {
	var missing []string
	if e.ClientID == "" {
		missing = append(missing, "AUTH_ENTRA_CLIENT_ID")
	}
	if e.ClientSecret == "" {
		missing = append(missing, "AUTH_ENTRA_CLIENT_SECRET")
	}
	if e.TenantID == "" {
		missing = append(missing, "AUTH_ENTRA_TENANT_ID")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required Entra ID configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// Issuer returns the tenant-scoped OIDC issuer URL used for discovery.
func (e EntraConfig) Issuer() string {
	return "https://login.microsoftonline.com/" + e.TenantID + "/v2.0"
}

// DevAuthConfig controls mock/dev authentication identity.
// Used when AUTH_MODE=mock for development and testing.
type DevAuthConfig struct {
	UserID            string `env:"USER_ID"             envDefault:"dev-user"`
	Email             string `env:"EMAIL"               envDefault:"dev@example.com"`
	UserPrincipalName string `env:"USER_PRINCIPAL_NAME" envDefault:"dev@example.com"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which authentication provider to use.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"oauth"`

	// Entra configuration (used when Mode=oauth).
	Entra EntraConfig `envPrefix:"AUTH_ENTRA_"`

	// DevAuth configuration (used when Mode=mock).
	DevAuth DevAuthConfig `envPrefix:"DEV_AUTH_"`
}

// Validate checks the configuration for the selected auth mode.
func (a AuthConfig) Validate() error {
	switch a.Mode {
	case AuthModeOAuth:
		return a.Entra.Validate()
	case AuthModeMock:
		return nil
	default:
		return errors.New("auth mode is not configured")
	}
}
