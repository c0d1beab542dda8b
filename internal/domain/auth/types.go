package auth

// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.

import "time"

// Identity represents the authenticated principal returned by the IdP.
// Adapters map provider-specific claims into this shape.
type Identity struct {
	UserID            string // stable user identifier (Entra object id or sub)
	UserPrincipalName string // directory identifier used in Graph queries
	DisplayName       string
	Email             string
	AccessToken       string // bearer token for Graph calls on the user's behalf
	RefreshToken      string // present when offline_access was granted
	ExpiresAt         time.Time
}

// Session is the server-side record we persist for an authenticated user.
// ID is an opaque session identifier (e.g., random URL-safe string).
// Tokens stay server-side; the browser holds only the session ID cookie.
type Session struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	UserPrincipalName string    `json:"user_principal_name"`
	DisplayName       string    `json:"display_name"`
	Email             string    `json:"email"`
	AccessToken       string    `json:"access_token"`
	RefreshToken      string    `json:"refresh_token,omitempty"`
	ExpiresAt         time.Time `json:"expires_at"`
}

// CanQueryDirectory reports whether the session carries the fields a
// directory lookup needs.
func (s Session) CanQueryDirectory() bool {
	return s.AccessToken != "" && s.UserPrincipalName != ""
}

// TokenSet is the result of a refresh-token grant.
type TokenSet struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}
