package publisher

import (
	"encoding/json"

	"ReviewHub/internal/core/platforms"
)

// PublishRequest is the request payload for POST /api/social-posting/posts
type PublishRequest struct {
	platforms.UniversalPost
	AdditionalPlatforms *AdditionalPlatforms `json:"additionalPlatforms,omitempty"`
}

// AdditionalPlatforms selects optional secondary cross-posting
// destinations, keyed by platform
type AdditionalPlatforms struct {
	LinkedIn *LinkedInOptions `json:"linkedin,omitempty"`
	// Bluesky is reserved for future cross-posting config; it is
	// decoded but not acted on by the fan-out (Bluesky publishes as a
	// first-class platforms entry instead)
	Bluesky *BlueskyOptions `json:"bluesky,omitempty"`
}

// LinkedInOptions configures the LinkedIn cross-post. The wire format
// is either a bare boolean (legacy clients: "post to my own profile")
// or an object {enabled, connectionId, targets}.
type LinkedInOptions struct {
	Enabled      bool
	ConnectionID string
	Targets      []LinkedInTarget
}

func (o *LinkedInOptions) UnmarshalJSON(data []byte) error {
	// Legacy boolean form
	var enabled bool
	if err := json.Unmarshal(data, &enabled); err == nil {
		*o = LinkedInOptions{Enabled: enabled}
		return nil
	}

	var obj struct {
		Enabled      bool             `json:"enabled"`
		ConnectionID string           `json:"connectionId"`
		Targets      []LinkedInTarget `json:"targets"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	*o = LinkedInOptions{
		Enabled:      obj.Enabled,
		ConnectionID: obj.ConnectionID,
		Targets:      obj.Targets,
	}
	return nil
}

// BlueskyOptions mirrors the LinkedIn wire format for the reserved
// bluesky key
type BlueskyOptions struct {
	Enabled      bool
	ConnectionID string
}

func (o *BlueskyOptions) UnmarshalJSON(data []byte) error {
	var enabled bool
	if err := json.Unmarshal(data, &enabled); err == nil {
		*o = BlueskyOptions{Enabled: enabled}
		return nil
	}

	var obj struct {
		Enabled      bool   `json:"enabled"`
		ConnectionID string `json:"connectionId"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	*o = BlueskyOptions{Enabled: obj.Enabled, ConnectionID: obj.ConnectionID}
	return nil
}

// LinkedIn target types
const (
	TargetPersonal     = "personal"
	TargetOrganization = "organization"
)

// LinkedInTarget identifies one LinkedIn identity to post to. ID is
// either the raw member ID (personal) or an organization URN.
type LinkedInTarget struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TargetResult is the outcome of one LinkedIn target publish. Failures
// before targets are resolved yield exactly one synthetic entry with
// Target set to "linkedin".
type TargetResult struct {
	Target  string `json:"target"`
	Success bool   `json:"success"`
	PostID  string `json:"postId,omitempty"`
	Error   string `json:"error,omitempty"`
}

// PublishResponse aggregates the primary-platform and cross-post
// outcomes for one request. LinkedIn is nil (omitted on the wire) when
// no cross-post was requested, distinguishing "not attempted" from
// "attempted but empty".
type PublishResponse struct {
	Success           bool                                  `json:"success"`
	ValidationResults map[string]platforms.ValidationResult `json:"validationResults"`
	PublishResults    map[string]platforms.PublishResult    `json:"publishResults"`
	LinkedIn          []TargetResult                        `json:"linkedin,omitempty"`
	OptimizedContent  map[string]string                     `json:"optimizedContent"`
}
