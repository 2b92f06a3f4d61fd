package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Context keys for storing user information
type contextKey string

const UserIDKey contextKey = "user_id"

// SessionName is the cookie holding the browser session
const SessionName = "reviewhub_session"

// SessionAuthMiddleware authenticates requests from the dashboard via
// cookie sessions, with Bearer JWT fallback for service-to-service
// callers (HS256, shared secret).
type SessionAuthMiddleware struct {
	store     sessions.Store
	jwtSecret []byte
}

// NewSessionAuthMiddleware creates the auth middleware. jwtSecret may
// be empty to disable Bearer authentication.
func NewSessionAuthMiddleware(store sessions.Store, jwtSecret []byte) *SessionAuthMiddleware {
	return &SessionAuthMiddleware{
		store:     store,
		jwtSecret: jwtSecret,
	}
}

// RequireAuth ensures the caller is authenticated, returning 401
// otherwise. On success the user ID is injected into the context.
func (m *SessionAuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := m.resolveUser(r)
		if userID == "" {
			writeAuthError(w)
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth loads the user if authenticated but never rejects.
// Used by routes that must run their own input validation before the
// auth check (the publish endpoint reports missing fields with 400
// even for anonymous callers).
func (m *SessionAuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID := m.resolveUser(r); userID != "" {
			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// resolveUser tries the session cookie first, then a Bearer JWT
func (m *SessionAuthMiddleware) resolveUser(r *http.Request) string {
	if session, err := m.store.Get(r, SessionName); err == nil {
		if userID, ok := session.Values["user_id"].(string); ok && userID != "" {
			return userID
		}
	}

	authHeader := r.Header.Get("Authorization")
	if len(m.jwtSecret) == 0 || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	parsed, err := jwt.Parse([]byte(token),
		jwt.WithKey(jwa.HS256, m.jwtSecret),
		jwt.WithValidate(true),
	)
	if err != nil {
		log.Printf("[AUTH_FAILURE] type=jwt_invalid ip=%s method=%s path=%s error=%v",
			r.RemoteAddr, r.Method, r.URL.Path, err)
		return ""
	}

	return parsed.Subject()
}

// GetUserID extracts the authenticated user's ID from the request
// context. Returns empty string if not authenticated.
func GetUserID(r *http.Request) string {
	userID, _ := r.Context().Value(UserIDKey).(string)
	return userID
}

// SetTestUserID sets the user ID in the context for testing purposes
func SetTestUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// writeAuthError writes the JSON error response for auth failures
func writeAuthError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if _, err := w.Write([]byte(`{"error":"Unauthorized"}`)); err != nil {
		log.Printf("Failed to write auth error response: %v", err)
	}
}
