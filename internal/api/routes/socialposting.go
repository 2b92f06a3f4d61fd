package routes

import (
	"ReviewHub/internal/api/handlers/socialposting"
	"ReviewHub/internal/api/middleware"
	"ReviewHub/internal/core/accounts"
	"ReviewHub/internal/core/connections"
	"ReviewHub/internal/core/publisher"

	"github.com/go-chi/chi/v5"
)

// RegisterSocialPostingRoutes registers the social posting endpoints.
//
// The publish endpoint uses OptionalAuth rather than RequireAuth:
// input validation must run before the session check so malformed
// requests get 400 regardless of auth state.
func RegisterSocialPostingRoutes(
	r chi.Router,
	publisherService publisher.Service,
	accountService accounts.Service,
	connectionRepo connections.Repository,
	auth *middleware.SessionAuthMiddleware,
) {
	postsHandler := socialposting.NewPostsHandler(publisherService, accountService)
	platformsHandler := socialposting.NewPlatformsHandler(connectionRepo, accountService)

	r.With(auth.OptionalAuth).Post("/api/social-posting/posts", postsHandler.HandleCreate)
	r.Get("/api/social-posting/posts", postsHandler.HandleList)
	r.With(auth.RequireAuth).Get("/api/social-posting/platforms", platformsHandler.HandleList)
}
