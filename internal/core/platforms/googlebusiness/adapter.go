package googlebusiness

import (
	"context"
	"fmt"
	"log"

	"ReviewHub/internal/core/platforms"
)

// Google caps local post summaries at 1500 characters
const maxSummaryLength = 1500

// adapter publishes universal posts as Google Business Profile local
// posts. Built from stored OAuth tokens plus a location resolved once
// from google_business_locations (avoids a redundant accounts.list
// round trip per publish).
type adapter struct {
	auth     Auth
	location string // "accounts/{a}/locations/{l}"
	client   *Client
}

// NewAdapter creates a Google Business Profile publishing adapter
func NewAdapter(auth Auth, location string, client *Client) platforms.Adapter {
	if client == nil {
		client = NewClient()
	}
	return &adapter{
		auth:     auth,
		location: location,
		client:   client,
	}
}

func (a *adapter) Platform() string {
	return platforms.GoogleBusinessProfile
}

func (a *adapter) ValidatePost(ctx context.Context, post platforms.UniversalPost) platforms.ValidationResult {
	var errs []string
	var warnings []string

	if post.Content == "" {
		errs = append(errs, "post content is required")
	}
	if len(post.Content) > maxSummaryLength {
		errs = append(errs, fmt.Sprintf("content exceeds %d character limit", maxSummaryLength))
	}
	if a.location == "" {
		errs = append(errs, "no business location configured for account")
	}
	if len(post.MediaURLs) > 1 {
		// Local posts accept a single photo; extras are dropped on publish
		warnings = append(warnings, "google business profile posts support one photo; additional media will be ignored")
	}

	return platforms.ValidationResult{
		IsValid:  len(errs) == 0,
		Errors:   errs,
		Warnings: warnings,
	}
}

func (a *adapter) PublishPost(ctx context.Context, post platforms.UniversalPost) platforms.PublishResult {
	localPost := LocalPost{
		LanguageCode: "en",
		Summary:      post.Content,
		TopicType:    "STANDARD",
	}

	if post.CallToAction != nil {
		localPost.CallToAction = &LocalCTA{
			ActionType: post.CallToAction.ActionType,
			URL:        post.CallToAction.URL,
		}
	}

	if len(post.MediaURLs) > 0 {
		localPost.Media = []LocalPostMedia{{
			MediaFormat: "PHOTO",
			SourceURL:   post.MediaURLs[0],
		}}
	}

	created, err := a.client.CreateLocalPost(ctx, a.auth.AccessToken, a.location, localPost)
	if err != nil {
		log.Printf("[GBP-PUBLISH] Failed to publish local post for %s: %v", a.location, err)
		return platforms.PublishResult{
			Success: false,
			Error:   err.Error(),
		}
	}

	log.Printf("[GBP-PUBLISH] Published local post %s", created.Name)
	return platforms.PublishResult{
		Success:        true,
		PlatformPostID: created.Name,
	}
}
