package socialposting

import (
	"log"
	"net/http"
	"time"

	"ReviewHub/internal/api/middleware"
	"ReviewHub/internal/core/accounts"
	"ReviewHub/internal/core/connections"
)

// PlatformsHandler lists an account's social platform connections
type PlatformsHandler struct {
	connections connections.Repository
	accounts    accounts.Service
}

// NewPlatformsHandler creates a new platforms handler
func NewPlatformsHandler(connectionRepo connections.Repository, accountService accounts.Service) *PlatformsHandler {
	return &PlatformsHandler{
		connections: connectionRepo,
		accounts:    accountService,
	}
}

// connectionView hides credentials from the listing response
type connectionView struct {
	ID          string    `json:"id"`
	Platform    string    `json:"platform"`
	Status      string    `json:"status"`
	ConnectedAt time.Time `json:"connectedAt"`
}

// HandleList handles GET /api/social-posting/platforms
func (h *PlatformsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		writeBareError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	account, err := h.accounts.ResolveForUser(r.Context(), userID)
	if err != nil {
		if err == accounts.ErrAccountNotFound {
			writeBareError(w, http.StatusNotFound, "Account not found")
			return
		}
		log.Printf("[SOCIAL-POST] Account resolution failed for user %s: %v", userID, err)
		writeFailure(w, http.StatusInternalServerError, "Failed to list platforms")
		return
	}

	conns, err := h.connections.ListByAccount(r.Context(), account.ID)
	if err != nil {
		log.Printf("[SOCIAL-POST] Failed to list connections for account %s: %v", account.ID, err)
		writeFailure(w, http.StatusInternalServerError, "Failed to list platforms")
		return
	}

	views := make([]connectionView, 0, len(conns))
	for _, conn := range conns {
		views = append(views, connectionView{
			ID:          conn.ID,
			Platform:    conn.Platform,
			Status:      conn.Status,
			ConnectedAt: conn.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, struct {
		Success bool `json:"success"`
		Data    struct {
			Platforms []connectionView `json:"platforms"`
		} `json:"data"`
	}{
		Success: true,
		Data: struct {
			Platforms []connectionView `json:"platforms"`
		}{Platforms: views},
	})
}
