package platforms

import "context"

// Platform identifiers used in UniversalPost.Platforms and as registry keys
const (
	GoogleBusinessProfile = "google-business-profile"
	LinkedIn              = "linkedin"
	Bluesky               = "bluesky"
)

// CallToAction is an optional action button attached to a post.
// Passed through to adapters unmodified; each platform decides how
// (or whether) to render it.
type CallToAction struct {
	ActionType string `json:"actionType"`
	URL        string `json:"url,omitempty"`
}

// UniversalPost is the platform-independent publish payload.
// Constructed per request from client JSON and discarded after the
// response is sent.
type UniversalPost struct {
	Content      string        `json:"content"`
	Platforms    []string      `json:"platforms"`
	MediaURLs    []string      `json:"mediaUrls,omitempty"`
	CallToAction *CallToAction `json:"callToAction,omitempty"`
}

// ValidationResult reports whether a post is acceptable to one platform
type ValidationResult struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// PublishResult is the outcome of one publish attempt on one platform.
// Never mutated after creation, only aggregated.
type PublishResult struct {
	Success        bool   `json:"success"`
	PlatformPostID string `json:"platformPostId,omitempty"`
	Error          string `json:"error,omitempty"`
}

// Adapter publishes universal posts to a single platform.
// Implementations hold whatever credentials and routing state the
// platform needs; they must be safe for concurrent use.
type Adapter interface {
	// Platform returns the platform identifier this adapter serves
	Platform() string

	// ValidatePost checks the post against platform rules without
	// performing any network writes
	ValidatePost(ctx context.Context, post UniversalPost) ValidationResult

	// PublishPost publishes the post. Failures are reported in the
	// result, not as an error - callers aggregate results across
	// platforms and must never lose a partial outcome.
	PublishPost(ctx context.Context, post UniversalPost) PublishResult
}
