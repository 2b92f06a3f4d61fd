package publisher

import (
	"context"
	"fmt"
	"log"

	"ReviewHub/internal/core/connections"
	"ReviewHub/internal/core/platforms"
)

// Synthetic failure reasons for fan-out steps that end before any
// target is attempted. Each produces exactly one TargetResult with
// Target set to "linkedin".
const (
	reasonConnectionNotFound = "LinkedIn connection not found"
	reasonMissingCredentials = "LinkedIn credentials missing"
	reasonRefreshFailed      = "LinkedIn token refresh failed"
	reasonTokenExpired       = "LinkedIn token expired"
)

// crossPostLinkedIn runs the LinkedIn fan-out:
//
//	resolve connection -> validate credentials -> check expiry
//	(refresh at most once) -> resolve targets -> publish per target
//
// Every return path yields at least one TargetResult; per-target
// failures are captured into results and never propagated. Failure
// here never aborts the overall request.
func (s *service) crossPostLinkedIn(ctx context.Context, accountID string, post platforms.UniversalPost, opts *LinkedInOptions) []TargetResult {
	// Step 1: resolve the account's active LinkedIn connection
	conn, err := s.connections.GetActiveByPlatform(ctx, accountID, platforms.LinkedIn)
	if err != nil {
		log.Printf("[LINKEDIN-FANOUT] No active connection for account %s: %v", accountID, err)
		return []TargetResult{failedFanout(reasonConnectionNotFound)}
	}

	// Step 2: validate credential shape
	creds := conn.Credentials
	if creds.AccessToken == "" || creds.LinkedInID == "" {
		return []TargetResult{failedFanout(reasonMissingCredentials)}
	}

	// Step 3: expiry check, refreshing at most once. A failed refresh
	// short-circuits without falling back to the stale token.
	if creds.Expired(s.now()) {
		if creds.RefreshToken == "" {
			return []TargetResult{failedFanout(reasonTokenExpired)}
		}

		accessToken, expiresAt, err := s.linkedin.RefreshAccessToken(ctx, creds.RefreshToken)
		if err != nil {
			log.Printf("[LINKEDIN-FANOUT] Token refresh failed for connection %s: %v", conn.ID, err)
			return []TargetResult{failedFanout(reasonRefreshFailed)}
		}

		// New immutable snapshot; the stale one is never reused
		creds = creds.WithRefreshed(accessToken, expiresAt)

		// Persist before any target publish. A write failure is logged
		// and the fresh in-memory token is still used; the next request
		// will refresh again.
		if err := s.connections.UpdateCredentials(ctx, conn.ID, creds); err != nil {
			log.Printf("[LINKEDIN-FANOUT] Warning: failed to persist refreshed credentials for %s: %v", conn.ID, err)
		}
	}

	// Step 4: resolve targets. Legacy boolean and empty target lists
	// both mean "the connection's own profile".
	targets := opts.Targets
	if len(targets) == 0 {
		targets = []LinkedInTarget{{
			Type: TargetPersonal,
			ID:   creds.LinkedInID,
			Name: TargetPersonal,
		}}
	}

	// Step 5: publish sequentially, pacing between successive targets
	results := make([]TargetResult, 0, len(targets))
	for i, target := range targets {
		if i > 0 {
			s.pacer.Wait(ctx)
		}
		results = append(results, s.publishToTarget(ctx, creds, post, target))
	}

	return results
}

// publishToTarget publishes to one LinkedIn identity and converts any
// failure into a failed result
func (s *service) publishToTarget(ctx context.Context, creds connections.Credentials, post platforms.UniversalPost, target LinkedInTarget) (result TargetResult) {
	result = TargetResult{Target: target.Name}

	// A panicking client must not take down the fan-out; the other
	// targets' results still have to be returned
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[LINKEDIN-FANOUT] Panic publishing to %q: %v", target.Name, r)
			result.Success = false
			result.Error = fmt.Sprintf("internal error: %v", r)
		}
	}()

	postID, err := s.linkedin.CreatePost(ctx, creds.AccessToken, authorURN(creds, target), post.Content, post.MediaURLs)
	if err != nil {
		log.Printf("[LINKEDIN-FANOUT] Publish to %q failed: %v", target.Name, err)
		result.Error = err.Error()
		return result
	}

	result.Success = true
	result.PostID = postID
	return result
}

// authorURN derives the author for one target. Organization targets
// carry their own URN; personal targets post as the connection's
// member, URN-prefixed only when the stored ID is raw.
func authorURN(creds connections.Credentials, target LinkedInTarget) string {
	if target.Type == TargetOrganization {
		return target.ID
	}
	return creds.PersonURN()
}

func failedFanout(reason string) TargetResult {
	return TargetResult{
		Target:  platforms.LinkedIn,
		Success: false,
		Error:   reason,
	}
}
