package publisher

import (
	"context"
	"time"

	"ReviewHub/internal/core/platforms/googlebusiness"
)

// Service is the post-publishing orchestration interface.
// Flow: validate -> ensure primary adapter -> validation gate ->
// primary publish -> LinkedIn fan-out -> aggregate.
type Service interface {
	// Publish publishes the post to its declared platforms and runs
	// the LinkedIn cross-post fan-out when requested. Partial publish
	// failures are reported in the response, not as errors; only
	// structural failures (bad input, missing credentials, failed
	// validation) return an error.
	Publish(ctx context.Context, accountID string, req PublishRequest) (*PublishResponse, error)
}

// BusinessProfileStore loads the stored Google Business Profile OAuth
// row and resolved location for an account
type BusinessProfileStore interface {
	// GetAuth returns the stored token row, or ErrNoBusinessProfile
	GetAuth(ctx context.Context, accountID string) (*googlebusiness.Auth, error)

	// GetLocation returns the account's business location resource
	// name ("accounts/{a}/locations/{l}"), resolved once from
	// google_business_locations
	GetLocation(ctx context.Context, accountID string) (string, error)
}

// LinkedInClient is the LinkedIn API surface the fan-out needs
type LinkedInClient interface {
	// CreatePost publishes a post as the given author URN and returns
	// the platform post ID
	CreatePost(ctx context.Context, accessToken, authorURN, content string, mediaURLs []string) (string, error)

	// RefreshAccessToken exchanges a refresh token for a new access
	// token and its absolute expiry
	RefreshAccessToken(ctx context.Context, refreshToken string) (accessToken string, expiresAt time.Time, err error)
}
