package googlebusiness

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ReviewHub/internal/core/platforms"
)

const testLocation = "accounts/100/locations/200"

func testAdapter(t *testing.T, handler http.Handler) platforms.Adapter {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient()
	client.SetBaseURL(server.URL)
	return NewAdapter(Auth{AccessToken: "gbp-token"}, testLocation, client)
}

func TestAdapter_Platform(t *testing.T) {
	a := NewAdapter(Auth{}, testLocation, nil)
	if a.Platform() != platforms.GoogleBusinessProfile {
		t.Errorf("Platform() = %q", a.Platform())
	}
}

func TestValidatePost(t *testing.T) {
	tests := []struct {
		name      string
		location  string
		post      platforms.UniversalPost
		wantValid bool
		wantErr   string
		wantWarn  bool
	}{
		{
			name:      "valid post",
			location:  testLocation,
			post:      platforms.UniversalPost{Content: "Open late on Fridays"},
			wantValid: true,
		},
		{
			name:      "empty content",
			location:  testLocation,
			post:      platforms.UniversalPost{},
			wantValid: false,
			wantErr:   "post content is required",
		},
		{
			name:      "content over limit",
			location:  testLocation,
			post:      platforms.UniversalPost{Content: strings.Repeat("x", 1501)},
			wantValid: false,
			wantErr:   "1500 character limit",
		},
		{
			name:      "missing location",
			location:  "",
			post:      platforms.UniversalPost{Content: "hi"},
			wantValid: false,
			wantErr:   "no business location",
		},
		{
			name:     "extra media warns",
			location: testLocation,
			post: platforms.UniversalPost{
				Content:   "hi",
				MediaURLs: []string{"https://a.jpg", "https://b.jpg"},
			},
			wantValid: true,
			wantWarn:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAdapter(Auth{}, tt.location, nil)
			result := a.ValidatePost(context.Background(), tt.post)

			if result.IsValid != tt.wantValid {
				t.Errorf("IsValid = %v, want %v (errors: %v)", result.IsValid, tt.wantValid, result.Errors)
			}
			if tt.wantErr != "" {
				found := false
				for _, e := range result.Errors {
					if strings.Contains(e, tt.wantErr) {
						found = true
					}
				}
				if !found {
					t.Errorf("Errors = %v, want one containing %q", result.Errors, tt.wantErr)
				}
			}
			if tt.wantWarn && len(result.Warnings) == 0 {
				t.Error("Warnings empty, want media warning")
			}
		})
	}
}

func TestPublishPost_CreatesLocalPost(t *testing.T) {
	var gotPath, gotAuth string
	var gotPost LocalPost

	a := testAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotPost)

		created := gotPost
		created.Name = testLocation + "/localPosts/999"
		json.NewEncoder(w).Encode(created)
	}))

	post := platforms.UniversalPost{
		Content:      "Summer sale all week",
		MediaURLs:    []string{"https://example.com/first.jpg", "https://example.com/second.jpg"},
		CallToAction: &platforms.CallToAction{ActionType: "LEARN_MORE", URL: "https://example.com/sale"},
	}

	result := a.PublishPost(context.Background(), post)

	if !result.Success {
		t.Fatalf("PublishPost() = %+v, want success", result)
	}
	if result.PlatformPostID != testLocation+"/localPosts/999" {
		t.Errorf("PlatformPostID = %q", result.PlatformPostID)
	}
	if gotPath != "/"+testLocation+"/localPosts" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "Bearer gbp-token" {
		t.Errorf("auth = %q", gotAuth)
	}
	if gotPost.Summary != "Summer sale all week" || gotPost.TopicType != "STANDARD" {
		t.Errorf("payload = %+v", gotPost)
	}
	if gotPost.CallToAction == nil || gotPost.CallToAction.ActionType != "LEARN_MORE" {
		t.Errorf("callToAction = %+v", gotPost.CallToAction)
	}
	// Only the first photo is attached
	if len(gotPost.Media) != 1 || gotPost.Media[0].SourceURL != "https://example.com/first.jpg" {
		t.Errorf("media = %+v", gotPost.Media)
	}
	if gotPost.Media[0].MediaFormat != "PHOTO" {
		t.Errorf("media format = %q", gotPost.Media[0].MediaFormat)
	}
}

func TestPublishPost_APIErrorBecomesFailedResult(t *testing.T) {
	a := testAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"message":"insufficient permissions"}}`))
	}))

	result := a.PublishPost(context.Background(), platforms.UniversalPost{Content: "hi"})

	if result.Success {
		t.Fatal("Success = true, want false")
	}
	if !strings.Contains(result.Error, "403") {
		t.Errorf("Error = %q, want status code", result.Error)
	}
}
