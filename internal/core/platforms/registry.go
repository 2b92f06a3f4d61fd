package platforms

import (
	"context"
	"fmt"
	"sync"
)

// Registry maps platform identifiers to publishing adapters.
//
// Each registration carries a credential fingerprint so callers can
// detect when the stored tokens backing an adapter have changed and
// re-register instead of publishing with a stale client. The registry
// is owned by the request-handling context (injected, not a package
// singleton) and is safe for concurrent use.
type Registry interface {
	// Register installs an adapter for a platform, replacing any
	// previous registration
	Register(platform string, adapter Adapter, fingerprint string)

	// NeedsRegistration reports whether no adapter is installed for
	// the platform, or the installed one was built from credentials
	// with a different fingerprint
	NeedsRegistration(platform, fingerprint string) bool

	// ValidatePost runs platform validation for every platform the
	// post declares. A platform with no registered adapter yields an
	// invalid result rather than an error.
	ValidatePost(ctx context.Context, post UniversalPost) map[string]ValidationResult

	// PublishPost publishes to every platform the post declares.
	// Only call after ValidatePost reported every platform valid.
	PublishPost(ctx context.Context, post UniversalPost) map[string]PublishResult
}

type registry struct {
	mu           sync.RWMutex
	adapters     map[string]Adapter
	fingerprints map[string]string
}

// NewRegistry creates an empty adapter registry
func NewRegistry() Registry {
	return &registry{
		adapters:     make(map[string]Adapter),
		fingerprints: make(map[string]string),
	}
}

func (r *registry) Register(platform string, adapter Adapter, fingerprint string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adapters[platform] = adapter
	r.fingerprints[platform] = fingerprint
}

func (r *registry) NeedsRegistration(platform, fingerprint string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	adapter, ok := r.adapters[platform]
	if !ok || adapter == nil {
		return true
	}
	return r.fingerprints[platform] != fingerprint
}

func (r *registry) adapter(platform string) Adapter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.adapters[platform]
}

func (r *registry) ValidatePost(ctx context.Context, post UniversalPost) map[string]ValidationResult {
	results := make(map[string]ValidationResult, len(post.Platforms))

	for _, platform := range post.Platforms {
		adapter := r.adapter(platform)
		if adapter == nil {
			results[platform] = ValidationResult{
				IsValid: false,
				Errors:  []string{fmt.Sprintf("no adapter registered for platform %s", platform)},
			}
			continue
		}
		results[platform] = adapter.ValidatePost(ctx, post)
	}

	return results
}

func (r *registry) PublishPost(ctx context.Context, post UniversalPost) map[string]PublishResult {
	results := make(map[string]PublishResult, len(post.Platforms))

	for _, platform := range post.Platforms {
		adapter := r.adapter(platform)
		if adapter == nil {
			// Shouldn't happen when validation gated the publish, but
			// a missing adapter must still surface as a failed result
			results[platform] = PublishResult{
				Success: false,
				Error:   fmt.Sprintf("no adapter registered for platform %s", platform),
			}
			continue
		}
		results[platform] = adapter.PublishPost(ctx, post)
	}

	return results
}
