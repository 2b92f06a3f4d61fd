// Package linkedin provides a client for the LinkedIn API surface the
// cross-posting flow needs: creating UGC posts and refreshing OAuth
// access tokens.
package linkedin

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultAPIBaseURL   = "https://api.linkedin.com"
	defaultOAuthBaseURL = "https://www.linkedin.com"
)

// Client is a LinkedIn API client. The app credentials are used for
// token refresh; per-member access tokens are supplied per call.
type Client struct {
	clientID     string
	clientSecret string
	apiBaseURL   string
	oauthBaseURL string
	httpClient   *http.Client
}

// NewClient creates a LinkedIn API client with the given app credentials
func NewClient(clientID, clientSecret string) *Client {
	return &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		apiBaseURL:   defaultAPIBaseURL,
		oauthBaseURL: defaultOAuthBaseURL,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
	}
}

// SetBaseURLs overrides the API and OAuth base URLs (used for testing)
func (c *Client) SetBaseURLs(api, oauth string) {
	c.apiBaseURL = api
	c.oauthBaseURL = oauth
}

// CreatePost publishes a UGC post as the given author URN
// (urn:li:person:... or urn:li:organization:...) and returns the
// platform post ID.
func (c *Client) CreatePost(ctx context.Context, accessToken, authorURN, content string, mediaURLs []string) (string, error) {
	post := ugcPost{
		Author:         authorURN,
		LifecycleState: "PUBLISHED",
		SpecificContent: ugcSpecificContent{
			ShareContent: ugcShareContent{
				ShareCommentary:    ugcText{Text: content},
				ShareMediaCategory: "NONE",
			},
		},
		Visibility: map[string]string{
			"com.linkedin.ugc.MemberNetworkVisibility": "PUBLIC",
		},
	}

	if len(mediaURLs) > 0 {
		post.SpecificContent.ShareContent.ShareMediaCategory = "ARTICLE"
		for _, u := range mediaURLs {
			post.SpecificContent.ShareContent.Media = append(post.SpecificContent.ShareContent.Media, ugcMedia{
				Status:      "READY",
				OriginalURL: u,
			})
		}
	}

	jsonData, err := json.Marshal(post)
	if err != nil {
		return "", fmt.Errorf("failed to marshal ugc post: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v2/ugcPosts", c.apiBaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("X-Restli-Protocol-Version", "2.0.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("linkedin request failed: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Printf("Warning: failed to close response body: %v", closeErr)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read linkedin response: %w", err)
	}

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		bodyPreview := string(body)
		if len(bodyPreview) > 200 {
			bodyPreview = bodyPreview[:200] + "... (truncated)"
		}
		log.Printf("[LINKEDIN-PUBLISH-ERROR] Status: %d, Body: %s", resp.StatusCode, bodyPreview)
		return "", fmt.Errorf("linkedin returned error %d: %s", resp.StatusCode, bodyPreview)
	}

	// LinkedIn returns the new post URN in the X-RestLi-Id header;
	// fall back to the body id field
	if id := resp.Header.Get("X-RestLi-Id"); id != "" {
		return id, nil
	}

	var created ugcPostResponse
	if err := json.Unmarshal(body, &created); err != nil {
		return "", fmt.Errorf("failed to parse linkedin response: %w", err)
	}
	if created.ID == "" {
		return "", fmt.Errorf("linkedin response missing post id")
	}

	return created.ID, nil
}

// RefreshAccessToken exchanges a refresh token for a new access token
// and returns the token with its absolute expiry time
func (c *Client) RefreshAccessToken(ctx context.Context, refreshToken string) (string, time.Time, error) {
	if refreshToken == "" {
		return "", time.Time{}, fmt.Errorf("refresh token is required")
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	endpoint := fmt.Sprintf("%s/oauth/v2/accessToken", c.oauthBaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("linkedin token refresh request failed: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Printf("Warning: failed to close response body: %v", closeErr)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to read token response: %w", err)
	}

	var token tokenResponse
	if err := json.Unmarshal(body, &token); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to parse token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || token.Error != "" {
		if token.ErrorDescription != "" {
			return "", time.Time{}, fmt.Errorf("linkedin token refresh failed: %s", token.ErrorDescription)
		}
		return "", time.Time{}, fmt.Errorf("linkedin token refresh failed with status %d", resp.StatusCode)
	}
	if token.AccessToken == "" {
		return "", time.Time{}, fmt.Errorf("token response missing access_token")
	}

	expiresAt := time.Now().UTC().Add(time.Duration(token.ExpiresIn) * time.Second)
	return token.AccessToken, expiresAt, nil
}
