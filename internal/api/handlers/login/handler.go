package login

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/ADM-InterviewPortal/internal/api/handlers"
	"github.com/m04kA/ADM-InterviewPortal/internal/domain"
	"github.com/m04kA/ADM-InterviewPortal/internal/integrations/admissionapi"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingCredentials = "укажите email и пароль"
	msgInvalidCredentials = "неверный email или пароль"
)

type Handler struct {
	client   AuthClient
	sessions SessionManager
	logger   Logger
}

func NewHandler(client AuthClient, sessions SessionManager, logger Logger) *Handler {
	return &Handler{
		client:   client,
		sessions: sessions,
		logger:   logger,
	}
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		handlers.RespondBadRequest(w, msgMissingCredentials)
		return
	}

	result, err := h.client.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, admissionapi.ErrInvalidCredentials) {
			h.logger.Warn("POST /auth/login - Invalid credentials: email=%s", req.Email)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)
			return
		}
		h.logger.Error("POST /auth/login - Login failed: email=%s, error=%v", req.Email, err)
		handlers.RespondInternalError(w)
		return
	}

	auth := domain.AuthContext{
		Token:  result.Token,
		UserID: result.UserID,
		Roles:  result.Roles,
	}
	if _, err := h.sessions.Establish(w, r, auth, result.UserName); err != nil {
		h.logger.Error("POST /auth/login - Failed to establish session: user_id=%d, error=%v", result.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/login - User authenticated: user_id=%d", result.UserID)
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{
		Status:   "success",
		UserID:   result.UserID,
		UserName: result.UserName,
		Roles:    result.Roles,
	})
}
