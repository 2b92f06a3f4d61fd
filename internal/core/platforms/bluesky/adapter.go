// Package bluesky implements the Bluesky platform adapter on top of
// the Indigo atProto SDK.
package bluesky

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/bluesky-social/indigo/api/atproto"
	"github.com/bluesky-social/indigo/api/bsky"
	"github.com/bluesky-social/indigo/lex/util"
	"github.com/bluesky-social/indigo/xrpc"

	"ReviewHub/internal/core/platforms"
)

// Bluesky caps post text at 300 graphemes; a byte-length check is a
// close enough gate for validation (the PDS enforces the real limit)
const maxPostLength = 300

const requestTimeout = 30 * time.Second

// Config holds the credentials for the posting identity
type Config struct {
	PDSURL      string // defaults to https://bsky.social
	Handle      string
	AppPassword string
}

type adapter struct {
	client *xrpc.Client
}

// NewAdapter creates a Bluesky adapter by opening an atProto session
// for the configured identity
func NewAdapter(ctx context.Context, cfg Config) (platforms.Adapter, error) {
	if cfg.Handle == "" || cfg.AppPassword == "" {
		return nil, fmt.Errorf("bluesky handle and app password are required")
	}

	pdsURL := cfg.PDSURL
	if pdsURL == "" {
		pdsURL = "https://bsky.social"
	}

	userAgent := "reviewhub/1"
	client := &xrpc.Client{
		Client:    &http.Client{Timeout: requestTimeout},
		Host:      pdsURL,
		UserAgent: &userAgent,
	}

	session, err := atproto.ServerCreateSession(ctx, client, &atproto.ServerCreateSession_Input{
		Identifier: cfg.Handle,
		Password:   cfg.AppPassword,
	})
	if err != nil {
		return nil, fmt.Errorf("bluesky login failed: %w", err)
	}

	client.Auth = &xrpc.AuthInfo{
		AccessJwt:  session.AccessJwt,
		RefreshJwt: session.RefreshJwt,
		Handle:     session.Handle,
		Did:        session.Did,
	}

	log.Printf("[BLUESKY] Session opened for %s", session.Handle)
	return &adapter{client: client}, nil
}

func (a *adapter) Platform() string {
	return platforms.Bluesky
}

func (a *adapter) ValidatePost(ctx context.Context, post platforms.UniversalPost) platforms.ValidationResult {
	var errs []string

	if post.Content == "" {
		errs = append(errs, "post content is required")
	}
	if len(post.Content) > maxPostLength {
		errs = append(errs, fmt.Sprintf("content exceeds %d character limit", maxPostLength))
	}

	return platforms.ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}

func (a *adapter) PublishPost(ctx context.Context, post platforms.UniversalPost) platforms.PublishResult {
	record := &bsky.FeedPost{
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Text:      post.Content,
	}

	resp, err := atproto.RepoCreateRecord(ctx, a.client, &atproto.RepoCreateRecord_Input{
		Collection: "app.bsky.feed.post",
		Repo:       a.client.Auth.Did,
		Record: &util.LexiconTypeDecoder{
			Val: record,
		},
	})
	if err != nil {
		log.Printf("[BLUESKY] Failed to create record: %v", err)
		return platforms.PublishResult{
			Success: false,
			Error:   err.Error(),
		}
	}

	return platforms.PublishResult{
		Success:        true,
		PlatformPostID: resp.Uri,
	}
}
