package platforms

import (
	"context"
	"strings"
	"sync"
	"testing"
)

type stubAdapter struct {
	platform string
	valid    bool
	postID   string
}

func (s *stubAdapter) Platform() string { return s.platform }

func (s *stubAdapter) ValidatePost(ctx context.Context, post UniversalPost) ValidationResult {
	if !s.valid {
		return ValidationResult{IsValid: false, Errors: []string{"rejected"}}
	}
	return ValidationResult{IsValid: true}
}

func (s *stubAdapter) PublishPost(ctx context.Context, post UniversalPost) PublishResult {
	return PublishResult{Success: true, PlatformPostID: s.postID}
}

func TestRegistry_NeedsRegistration(t *testing.T) {
	r := NewRegistry()

	if !r.NeedsRegistration(GoogleBusinessProfile, "fp-1") {
		t.Error("empty registry must need registration")
	}

	r.Register(GoogleBusinessProfile, &stubAdapter{platform: GoogleBusinessProfile, valid: true}, "fp-1")

	if r.NeedsRegistration(GoogleBusinessProfile, "fp-1") {
		t.Error("matching fingerprint must not need registration")
	}
	if !r.NeedsRegistration(GoogleBusinessProfile, "fp-2") {
		t.Error("changed fingerprint must need registration")
	}
	if !r.NeedsRegistration(LinkedIn, "fp-1") {
		t.Error("unregistered platform must need registration")
	}
}

func TestRegistry_ValidateAndPublish(t *testing.T) {
	r := NewRegistry()
	r.Register(GoogleBusinessProfile, &stubAdapter{platform: GoogleBusinessProfile, valid: true, postID: "p1"}, "fp")
	r.Register(Bluesky, &stubAdapter{platform: Bluesky, valid: false}, "fp")

	post := UniversalPost{
		Content:   "hi",
		Platforms: []string{GoogleBusinessProfile, Bluesky},
	}

	validation := r.ValidatePost(context.Background(), post)
	if !validation[GoogleBusinessProfile].IsValid {
		t.Error("gbp validation = invalid, want valid")
	}
	if validation[Bluesky].IsValid {
		t.Error("bluesky validation = valid, want invalid")
	}

	published := r.PublishPost(context.Background(), post)
	if !published[GoogleBusinessProfile].Success || published[GoogleBusinessProfile].PlatformPostID != "p1" {
		t.Errorf("gbp publish = %+v", published[GoogleBusinessProfile])
	}
}

func TestRegistry_MissingAdapterYieldsResultNotError(t *testing.T) {
	r := NewRegistry()
	post := UniversalPost{Content: "hi", Platforms: []string{LinkedIn}}

	validation := r.ValidatePost(context.Background(), post)
	result, ok := validation[LinkedIn]
	if !ok || result.IsValid {
		t.Fatalf("validation[linkedin] = %+v, want present and invalid", result)
	}
	if len(result.Errors) != 1 || !strings.Contains(result.Errors[0], "no adapter registered") {
		t.Errorf("errors = %v", result.Errors)
	}

	published := r.PublishPost(context.Background(), post)
	if published[LinkedIn].Success {
		t.Error("publish to missing adapter must fail")
	}
}

func TestRegistry_ReplaceRegistration(t *testing.T) {
	r := NewRegistry()
	r.Register(GoogleBusinessProfile, &stubAdapter{platform: GoogleBusinessProfile, valid: true, postID: "old"}, "fp-1")
	r.Register(GoogleBusinessProfile, &stubAdapter{platform: GoogleBusinessProfile, valid: true, postID: "new"}, "fp-2")

	post := UniversalPost{Content: "hi", Platforms: []string{GoogleBusinessProfile}}
	published := r.PublishPost(context.Background(), post)
	if published[GoogleBusinessProfile].PlatformPostID != "new" {
		t.Errorf("post id = %q, want the replacement adapter's", published[GoogleBusinessProfile].PlatformPostID)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	post := UniversalPost{Content: "hi", Platforms: []string{GoogleBusinessProfile}}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			r.Register(GoogleBusinessProfile, &stubAdapter{platform: GoogleBusinessProfile, valid: true}, "fp")
		}()
		go func() {
			defer wg.Done()
			r.ValidatePost(context.Background(), post)
			r.NeedsRegistration(GoogleBusinessProfile, "fp")
		}()
	}
	wg.Wait()
}
