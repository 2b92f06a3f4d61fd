package socialposting

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"ReviewHub/internal/api/middleware"
	"ReviewHub/internal/core/accounts"
	"ReviewHub/internal/core/platforms"
	"ReviewHub/internal/core/publisher"
)

// PostsHandler handles the social posting publish endpoint
type PostsHandler struct {
	publisher publisher.Service
	accounts  accounts.Service
}

// NewPostsHandler creates a new posts handler
func NewPostsHandler(publisherService publisher.Service, accountService accounts.Service) *PostsHandler {
	return &PostsHandler{
		publisher: publisherService,
		accounts:  accountService,
	}
}

// publishData is the data envelope for a completed publish request
type publishData struct {
	ValidationResults map[string]platforms.ValidationResult `json:"validationResults"`
	PublishResults    map[string]platforms.PublishResult    `json:"publishResults"`
	LinkedIn          []publisher.TargetResult              `json:"linkedin,omitempty"`
	OptimizedContent  map[string]string                     `json:"optimizedContent"`
}

// HandleCreate handles POST /api/social-posting/posts.
//
// Input validation runs before the auth check: a request missing
// content or platforms gets 400 without touching session or account
// state. Partial publish failures still complete with 200; callers
// inspect the success flag.
func (h *PostsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	// Limit request body size to prevent abuse
	r.Body = http.MaxBytesReader(w, r.Body, 1*1024*1024)

	var req publisher.PublishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeFailure(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// 1. Input validation, before any auth or account lookup
	if req.Content == "" || len(req.Platforms) == 0 {
		writeFailure(w, http.StatusBadRequest, "Post content and platforms are required")
		return
	}

	// 2. Session check (injected by OptionalAuth so validation above
	// can run for anonymous callers too)
	userID := middleware.GetUserID(r)
	if userID == "" {
		writeBareError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	// 3. Account resolution
	account, err := h.accounts.ResolveForUser(r.Context(), userID)
	if err != nil {
		if err == accounts.ErrAccountNotFound {
			writeBareError(w, http.StatusNotFound, "Account not found")
			return
		}
		log.Printf("[SOCIAL-POST] Account resolution failed for user %s: %v", userID, err)
		writeFailure(w, http.StatusInternalServerError, "Failed to publish post")
		return
	}

	// 4. Publish
	resp, err := h.publisher.Publish(r.Context(), account.ID, req)
	if err != nil {
		h.handlePublishError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Success bool        `json:"success"`
		Data    publishData `json:"data"`
	}{
		Success: resp.Success,
		Data: publishData{
			ValidationResults: resp.ValidationResults,
			PublishResults:    resp.PublishResults,
			LinkedIn:          resp.LinkedIn,
			OptimizedContent:  resp.OptimizedContent,
		},
	})
}

// HandleList handles GET /api/social-posting/posts
func (h *PostsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Success bool `json:"success"`
		Data    struct {
			Posts   []interface{} `json:"posts"`
			Message string        `json:"message"`
		} `json:"data"`
	}{
		Success: true,
		Data: struct {
			Posts   []interface{} `json:"posts"`
			Message string        `json:"message"`
		}{
			Posts:   []interface{}{},
			Message: "Post history not yet implemented",
		},
	})
}

// handlePublishError maps publisher errors to HTTP responses
func (h *PostsHandler) handlePublishError(w http.ResponseWriter, err error) {
	var validationFailed *publisher.ValidationFailedError

	switch {
	case err == publisher.ErrInvalidRequest:
		writeFailure(w, http.StatusBadRequest, "Post content and platforms are required")

	case publisher.IsNotAuthenticated(err):
		writeFailure(w, http.StatusUnauthorized, err.Error())

	case errors.As(err, &validationFailed):
		writeJSON(w, http.StatusBadRequest, struct {
			Success           bool                                  `json:"success"`
			Error             string                                `json:"error"`
			ValidationResults map[string]platforms.ValidationResult `json:"validationResults"`
		}{
			Success:           false,
			Error:             "Post validation failed",
			ValidationResults: validationFailed.Results,
		})

	default:
		log.Printf("Unexpected error in social posting handler: %v", err)
		writeJSON(w, http.StatusInternalServerError, struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
			Details string `json:"details"`
		}{
			Success: false,
			Error:   "Failed to publish post",
			Details: err.Error(),
		})
	}
}
