package publisher

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"ReviewHub/internal/core/connections"
	"ReviewHub/internal/core/platforms"
	"ReviewHub/internal/core/platforms/googlebusiness"
)

// AdapterFactory builds platform adapters from stored credentials.
// Indirection exists so tests can install fakes without touching the
// real API clients.
type AdapterFactory interface {
	GoogleBusiness(auth googlebusiness.Auth, location string) platforms.Adapter
}

type defaultAdapterFactory struct{}

func (defaultAdapterFactory) GoogleBusiness(auth googlebusiness.Auth, location string) platforms.Adapter {
	return googlebusiness.NewAdapter(auth, location, nil)
}

type service struct {
	registry    platforms.Registry
	profiles    BusinessProfileStore
	connections connections.Repository
	linkedin    LinkedInClient
	factory     AdapterFactory
	pacer       Pacer
	now         func() time.Time
}

// NewService creates the post-publishing service. The registry is
// owned by the caller and shared across requests; this service
// re-registers adapters whenever stored credentials change.
func NewService(
	registry platforms.Registry,
	profiles BusinessProfileStore,
	connectionRepo connections.Repository,
	linkedinClient LinkedInClient,
	opts ...ServiceOption,
) Service {
	if registry == nil {
		panic("publisher: registry cannot be nil")
	}
	if profiles == nil {
		panic("publisher: profiles cannot be nil")
	}
	if connectionRepo == nil {
		panic("publisher: connectionRepo cannot be nil")
	}
	if linkedinClient == nil {
		panic("publisher: linkedinClient cannot be nil")
	}

	s := &service{
		registry:    registry,
		profiles:    profiles,
		connections: connectionRepo,
		linkedin:    linkedinClient,
		factory:     defaultAdapterFactory{},
		pacer:       NewDefaultPacer(),
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ServiceOption configures the service
type ServiceOption func(*service)

// WithPacer overrides the inter-target pacing policy
func WithPacer(pacer Pacer) ServiceOption {
	return func(s *service) {
		s.pacer = pacer
	}
}

// WithAdapterFactory overrides adapter construction
func WithAdapterFactory(factory AdapterFactory) ServiceOption {
	return func(s *service) {
		s.factory = factory
	}
}

// WithClock overrides the time source
func WithClock(now func() time.Time) ServiceOption {
	return func(s *service) {
		s.now = now
	}
}

// Publish orchestrates one publish request:
// 1. Validate input
// 2. Ensure the Google Business Profile adapter is registered with
//    current credentials
// 3. Validation gate: every platform must accept the post
// 4. Publish to the primary platforms
// 5. LinkedIn fan-out when requested (independent of primary outcome)
// 6. Aggregate results
func (s *service) Publish(ctx context.Context, accountID string, req PublishRequest) (*PublishResponse, error) {
	// 1. Defense-in-depth: the handler validates too, but the gate
	// must hold even if the service is called directly
	if req.Content == "" || len(req.Platforms) == 0 {
		return nil, ErrInvalidRequest
	}

	// 2. Register platform adapters that are built per account
	for _, platform := range req.Platforms {
		if platform == platforms.GoogleBusinessProfile {
			if err := s.ensureGoogleBusinessAdapter(ctx, accountID); err != nil {
				return nil, err
			}
		}
	}

	// 3. Validation gate: all-or-nothing. One invalid platform blocks
	// publishing everywhere.
	validationResults := s.registry.ValidatePost(ctx, req.UniversalPost)
	for _, result := range validationResults {
		if !result.IsValid {
			return nil, &ValidationFailedError{Results: validationResults}
		}
	}

	// 4. Primary publish. Per-platform failures are carried in the
	// results and do not abort the fan-out that follows.
	publishResults := s.registry.PublishPost(ctx, req.UniversalPost)

	// 5. LinkedIn fan-out, strictly after the primary publish
	var linkedinResults []TargetResult
	crossPost := req.AdditionalPlatforms != nil &&
		req.AdditionalPlatforms.LinkedIn != nil &&
		req.AdditionalPlatforms.LinkedIn.Enabled
	if crossPost {
		linkedinResults = s.crossPostLinkedIn(ctx, accountID, req.UniversalPost, req.AdditionalPlatforms.LinkedIn)
	}

	// 6. Aggregate: failure in either channel dominates
	success := true
	for platform, result := range publishResults {
		if !result.Success {
			log.Printf("[SOCIAL-POST] Publish to %s failed: %s", platform, result.Error)
			success = false
		}
	}
	for _, result := range linkedinResults {
		if !result.Success {
			success = false
		}
	}

	return &PublishResponse{
		Success:           success,
		ValidationResults: validationResults,
		PublishResults:    publishResults,
		LinkedIn:          linkedinResults,
		OptimizedContent:  OptimizeContent(req.UniversalPost, crossPost),
	}, nil
}

// ensureGoogleBusinessAdapter registers (or re-registers) the GBP
// adapter for this account's stored credentials. Registration is keyed
// by credential fingerprint so a token refresh elsewhere invalidates
// the cached adapter instead of leaving it stale.
func (s *service) ensureGoogleBusinessAdapter(ctx context.Context, accountID string) error {
	auth, err := s.profiles.GetAuth(ctx, accountID)
	if err != nil {
		if errors.Is(err, ErrNoBusinessProfile) {
			return &NotAuthenticatedError{Platform: platforms.GoogleBusinessProfile}
		}
		return fmt.Errorf("failed to load google business profile tokens: %w", err)
	}

	fingerprint := auth.Fingerprint()
	if !s.registry.NeedsRegistration(platforms.GoogleBusinessProfile, fingerprint) {
		return nil
	}

	location, err := s.profiles.GetLocation(ctx, accountID)
	if err != nil {
		return fmt.Errorf("failed to resolve business location: %w", err)
	}

	s.registry.Register(platforms.GoogleBusinessProfile, s.factory.GoogleBusiness(*auth, location), fingerprint)
	log.Printf("[SOCIAL-POST] Registered google-business-profile adapter for account %s", accountID)
	return nil
}
