package googlebusiness

import (
	"testing"
	"time"
)

func TestAuthFingerprint(t *testing.T) {
	expiry := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	base := Auth{AccessToken: "token-a", ExpiresAt: &expiry}

	if base.Fingerprint() != base.Fingerprint() {
		t.Error("fingerprint not stable for identical credentials")
	}

	rotated := Auth{AccessToken: "token-b", ExpiresAt: &expiry}
	if base.Fingerprint() == rotated.Fingerprint() {
		t.Error("rotated access token must change the fingerprint")
	}

	later := expiry.Add(time.Hour)
	extended := Auth{AccessToken: "token-a", ExpiresAt: &later}
	if base.Fingerprint() == extended.Fingerprint() {
		t.Error("changed expiry must change the fingerprint")
	}

	noExpiry := Auth{AccessToken: "token-a"}
	if base.Fingerprint() == noExpiry.Fingerprint() {
		t.Error("dropping expiry must change the fingerprint")
	}

	// Refresh token is not part of the identity; it never reaches the
	// platform API
	withRefresh := Auth{AccessToken: "token-a", RefreshToken: "r", ExpiresAt: &expiry}
	if base.Fingerprint() != withRefresh.Fingerprint() {
		t.Error("refresh token must not affect the fingerprint")
	}
}
