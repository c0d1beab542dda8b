package devauth

import (
	"context"
	"strings"
	"testing"

	"github.com/itsm-tools/device-agreement/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_Validation(t *testing.T) {
	_, err := NewProvider(Config{Email: "dev@example.com"})
	assert.Error(t, err)

	_, err = NewProvider(Config{UserID: "dev"})
	assert.Error(t, err)
}

func TestProvider_Begin(t *testing.T) {
	p, err := NewProvider(Config{UserID: "dev", Email: "dev@example.com"})
	require.NoError(t, err)

	authURL, state, nonce, err := p.Begin(context.Background(), ports.BeginInput{ReturnPath: "/"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(authURL, "/auth/callback?code=dev&state="))
	assert.NotEmpty(t, state)
	assert.NotEmpty(t, nonce)
}

func TestProvider_Exchange(t *testing.T) {
	p, err := NewProvider(Config{UserID: "dev", Email: "dev@example.com"})
	require.NoError(t, err)

	id, err := p.Exchange(context.Background(), ports.ExchangeInput{Code: "dev", State: "s", Nonce: "n"})
	require.NoError(t, err)
	assert.Equal(t, "dev", id.UserID)
	assert.Equal(t, "dev@example.com", id.UserPrincipalName)
	assert.True(t, strings.HasPrefix(id.AccessToken, "dev-"))
	assert.False(t, id.ExpiresAt.IsZero())
}

func TestProvider_UPNFallsBackToEmail(t *testing.T) {
	p, err := NewProvider(Config{UserID: "dev", Email: "dev@example.com"})
	require.NoError(t, err)
	id, err := p.Exchange(context.Background(), ports.ExchangeInput{Code: "dev"})
	require.NoError(t, err)
	assert.Equal(t, "dev@example.com", id.UserPrincipalName)
}

func TestProvider_Refresh(t *testing.T) {
	p, err := NewProvider(Config{UserID: "dev", Email: "dev@example.com"})
	require.NoError(t, err)

	ts, err := p.Refresh(context.Background(), "refresh-1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ts.AccessToken, "dev-"))
	assert.Equal(t, "refresh-1", ts.RefreshToken)

	_, err = p.Refresh(context.Background(), "")
	assert.Error(t, err)
}
