package googlebusiness

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Auth is the stored OAuth state for an account's Google Business
// Profile connection (one row in google_business_profiles).
type Auth struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    *time.Time
}

// Fingerprint derives a stable identifier for this credential set.
// The adapter registry compares fingerprints to decide whether a
// cached adapter was built from stale tokens and must be replaced.
func (a Auth) Fingerprint() string {
	h := sha256.New()
	h.Write([]byte(a.AccessToken))
	h.Write([]byte{0})
	if a.ExpiresAt != nil {
		h.Write([]byte(a.ExpiresAt.UTC().Format(time.RFC3339)))
	}
	return hex.EncodeToString(h.Sum(nil))
}
