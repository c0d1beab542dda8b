package oidc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProvider_RequiredFields(t *testing.T) {
	tests := []struct {
		name string
		cfg  ProviderConfig
	}{
		{name: "missing client id", cfg: ProviderConfig{ClientSecret: "s", RedirectURL: "u", Issuer: "i"}},
		{name: "missing client secret", cfg: ProviderConfig{ClientID: "c", RedirectURL: "u", Issuer: "i"}},
		{name: "missing redirect url", cfg: ProviderConfig{ClientID: "c", ClientSecret: "s", Issuer: "i"}},
		{name: "missing issuer", cfg: ProviderConfig{ClientID: "c", ClientSecret: "s", RedirectURL: "u"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProvider(context.Background(), tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestMapIDTokenClaims(t *testing.T) {
	t.Run("oid and preferred_username preferred", func(t *testing.T) {
		id := mapIDTokenClaims(idTokenClaims{
			Sub:               "sub-1",
			ObjectID:          "oid-1",
			PreferredUsername: "ana@example.com",
			Email:             "ana.alt@example.com",
			Name:              "Ana Torres",
		})
		assert.Equal(t, "oid-1", id.UserID)
		assert.Equal(t, "ana@example.com", id.UserPrincipalName)
		assert.Equal(t, "Ana Torres", id.DisplayName)
		assert.Equal(t, "ana.alt@example.com", id.Email)
	})

	t.Run("fallbacks", func(t *testing.T) {
		id := mapIDTokenClaims(idTokenClaims{
			Sub:   "sub-2",
			Email: "luis@example.com",
		})
		assert.Equal(t, "sub-2", id.UserID)
		assert.Equal(t, "luis@example.com", id.UserPrincipalName)
	})
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "a", firstNonEmpty("", "a", "b"))
	assert.Equal(t, "", firstNonEmpty("", ""))
}

func TestGenerateRandomString(t *testing.T) {
	s, err := generateRandomString(32)
	require.NoError(t, err)
	assert.Len(t, s, 32)

	other, err := generateRandomString(32)
	require.NoError(t, err)
	assert.NotEqual(t, s, other)

	empty, err := generateRandomString(0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
