package connections

import (
	"strings"
	"time"
)

// Connection is a stored link between an account and a social platform
// identity (one row in social_platform_connections).
type Connection struct {
	ID          string
	AccountID   string
	Platform    string
	Status      string // "active", "revoked", "expired"
	Credentials Credentials
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Credentials is an immutable snapshot of a connection's OAuth state.
// A refresh produces a new value via WithRefreshed; nothing mutates an
// existing snapshot mid-flow.
type Credentials struct {
	AccessToken  string     `json:"accessToken"`
	RefreshToken string     `json:"refreshToken,omitempty"`
	ExpiresAt    *time.Time `json:"expiresAt,omitempty"`
	LinkedInID   string     `json:"linkedinId,omitempty"`
}

// Expired reports whether the access token expiry is in the past.
// Credentials without an expiry never expire here.
func (c Credentials) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && c.ExpiresAt.Before(now)
}

// WithRefreshed returns a copy of the credentials carrying the new
// access token and expiry. The receiver is left unchanged.
func (c Credentials) WithRefreshed(accessToken string, expiresAt time.Time) Credentials {
	c.AccessToken = accessToken
	c.ExpiresAt = &expiresAt
	return c
}

// PersonURN returns the LinkedIn member ID as a person URN, prefixing
// it only when the stored ID is not already URN-formatted.
func (c Credentials) PersonURN() string {
	if strings.HasPrefix(c.LinkedInID, "urn:") {
		return c.LinkedInID
	}
	return "urn:li:person:" + c.LinkedInID
}
