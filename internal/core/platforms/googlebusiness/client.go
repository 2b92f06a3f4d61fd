package googlebusiness

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

const defaultBaseURL = "https://mybusiness.googleapis.com/v4"

// LocalPost is the Google Business Profile "local post" payload.
// https://developers.google.com/my-business/reference/rest/v4/accounts.locations.localPosts
type LocalPost struct {
	Name         string           `json:"name,omitempty"` // set by Google on create
	LanguageCode string           `json:"languageCode,omitempty"`
	Summary      string           `json:"summary"`
	TopicType    string           `json:"topicType"`
	CallToAction *LocalCTA        `json:"callToAction,omitempty"`
	Media        []LocalPostMedia `json:"media,omitempty"`
}

// LocalCTA is a local post call-to-action button
type LocalCTA struct {
	ActionType string `json:"actionType"`
	URL        string `json:"url,omitempty"`
}

// LocalPostMedia attaches a photo to a local post by source URL
type LocalPostMedia struct {
	MediaFormat string `json:"mediaFormat"`
	SourceURL   string `json:"sourceUrl"`
}

// Client talks to the Google Business Profile API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Google Business Profile API client
func NewClient() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		// Extended timeout for write operations (30 seconds)
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SetBaseURL overrides the API base URL (used for testing)
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

// CreateLocalPost publishes a local post under the given location.
// location is the fully-qualified resource name,
// "accounts/{accountId}/locations/{locationId}".
func (c *Client) CreateLocalPost(ctx context.Context, accessToken, location string, post LocalPost) (*LocalPost, error) {
	endpoint := fmt.Sprintf("%s/%s/localPosts", c.baseURL, location)

	jsonData, err := json.Marshal(post)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal local post: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google business profile request failed: %w", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Printf("Warning: failed to close response body: %v", closeErr)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Sanitize error body for logging (prevent sensitive data leakage)
		bodyPreview := string(body)
		if len(bodyPreview) > 200 {
			bodyPreview = bodyPreview[:200] + "... (truncated)"
		}
		log.Printf("[GBP-PUBLISH-ERROR] Status: %d, Body: %s", resp.StatusCode, bodyPreview)
		return nil, fmt.Errorf("google business profile returned error %d: %s", resp.StatusCode, bodyPreview)
	}

	var created LocalPost
	if err := json.Unmarshal(body, &created); err != nil {
		return nil, fmt.Errorf("failed to parse local post response: %w", err)
	}

	return &created, nil
}
