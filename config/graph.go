package config

import "time"

// GraphConfig contains Microsoft Graph (device directory) configuration.
type GraphConfig struct {
	// BaseURL is the Graph API endpoint. Override for sovereign clouds
	// (e.g., "https://graph.microsoft.us/v1.0") or test servers.
	BaseURL string `env:"BASE_URL" envDefault:"https://graph.microsoft.com/v1.0"`

	// Timeout bounds a single directory call. A call exceeding it is
	// treated as a network-class failure.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
}

// Sanitize applies guardrails to Graph configuration values.
func (g *GraphConfig) Sanitize() {
	if g.Timeout <= 0 {
		g.Timeout = 15 * time.Second
	}
}
