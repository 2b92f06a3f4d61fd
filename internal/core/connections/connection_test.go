package connections

import (
	"testing"
	"time"
)

func TestCredentials_Expired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	tests := []struct {
		name      string
		expiresAt *time.Time
		want      bool
	}{
		{"no expiry never expires", nil, false},
		{"past expiry", &past, true},
		{"future expiry", &future, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Credentials{AccessToken: "t", ExpiresAt: tt.expiresAt}
			if got := c.Expired(now); got != tt.want {
				t.Errorf("Expired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCredentials_WithRefreshedLeavesReceiverUnchanged(t *testing.T) {
	oldExpiry := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	original := Credentials{
		AccessToken:  "old-token",
		RefreshToken: "refresh",
		ExpiresAt:    &oldExpiry,
		LinkedInID:   "member123",
	}

	newExpiry := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	refreshed := original.WithRefreshed("new-token", newExpiry)

	if refreshed.AccessToken != "new-token" || !refreshed.ExpiresAt.Equal(newExpiry) {
		t.Errorf("refreshed = %+v", refreshed)
	}
	if refreshed.RefreshToken != "refresh" || refreshed.LinkedInID != "member123" {
		t.Errorf("refresh must carry over identity fields: %+v", refreshed)
	}
	if original.AccessToken != "old-token" || !original.ExpiresAt.Equal(oldExpiry) {
		t.Errorf("original snapshot mutated: %+v", original)
	}
}

func TestCredentials_PersonURN(t *testing.T) {
	tests := []struct {
		linkedinID string
		want       string
	}{
		{"member123", "urn:li:person:member123"},
		{"urn:li:person:member123", "urn:li:person:member123"},
		{"urn:li:organization:55", "urn:li:organization:55"},
	}

	for _, tt := range tests {
		c := Credentials{LinkedInID: tt.linkedinID}
		if got := c.PersonURN(); got != tt.want {
			t.Errorf("PersonURN(%q) = %q, want %q", tt.linkedinID, got, tt.want)
		}
	}
}
