package logout

import (
	"net/http"

	"github.com/m04kA/ADM-InterviewPortal/internal/api/handlers"
)

type Handler struct {
	client    AuthClient
	sessions  SessionManager
	selectors SelectorRegistry
	logger    Logger
}

func NewHandler(client AuthClient, sessions SessionManager, selectors SelectorRegistry, logger Logger) *Handler {
	return &Handler{
		client:    client,
		sessions:  sessions,
		selectors: selectors,
		logger:    logger,
	}
}

// LogoutResponse HTTP response model
type LogoutResponse struct {
	Status string `json:"status"`
}

// Handle POST /api/v1/auth/logout
// Инвалидирует токен upstream и уничтожает локальную сессию.
// Ошибка upstream не блокирует локальный выход.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	auth, _, err := h.sessions.Auth(r)
	if err == nil && auth.HasToken() {
		if err := h.client.Logout(r.Context(), auth.Token); err != nil {
			h.logger.Warn("POST /auth/logout - Failed to invalidate token upstream: user_id=%d, error=%v",
				auth.UserID, err)
		}
	}

	sessionID, err := h.sessions.Clear(w, r)
	if err != nil {
		h.logger.Warn("POST /auth/logout - Failed to clear session: %v", err)
	}
	if sessionID != "" {
		h.selectors.Remove(sessionID)
	}

	h.logger.Info("POST /auth/logout - Session terminated: user_id=%d", auth.UserID)
	handlers.RespondJSON(w, http.StatusOK, LogoutResponse{Status: "success"})
}
