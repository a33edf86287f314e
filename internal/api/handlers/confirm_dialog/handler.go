package confirm_dialog

import (
	"net/http"

	"github.com/m04kA/ADM-InterviewPortal/internal/api/handlers"
	"github.com/m04kA/ADM-InterviewPortal/internal/api/middleware"
)

const (
	msgSessionExpired = "сессия истекла, войдите в систему заново"
	msgNoSlotSelected = "сначала выберите слот"
)

type Handler struct {
	selectors SelectorRegistry
	logger    Logger
}

func NewHandler(selectors SelectorRegistry, logger Logger) *Handler {
	return &Handler{
		selectors: selectors,
		logger:    logger,
	}
}

// HandleOpen POST /api/v1/interview/selection/confirm
// Открывает диалог подтверждения для выбранного слота
func (h *Handler) HandleOpen(w http.ResponseWriter, r *http.Request) {
	auth, ok := middleware.AuthFrom(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgSessionExpired)
		return
	}
	sessionID, _ := middleware.SessionIDFrom(r.Context())

	selector := h.selectors.Get(sessionID)
	if !selector.OpenConfirm() {
		h.logger.Warn("POST /interview/selection/confirm - No slot selected: user_id=%d", auth.UserID)
		handlers.RespondConflict(w, msgNoSlotSelected)
		return
	}

	snap := selector.Snapshot()
	h.logger.Info("POST /interview/selection/confirm - Dialog opened: user_id=%d", auth.UserID)
	handlers.RespondJSON(w, http.StatusOK, DialogResponse{
		Status:      "success",
		State:       string(snap.State),
		ConfirmOpen: snap.ConfirmOpen,
	})
}

// HandleClose DELETE /api/v1/interview/selection/confirm
// Закрывает диалог без подтверждения, выбор слота сохраняется
func (h *Handler) HandleClose(w http.ResponseWriter, r *http.Request) {
	auth, ok := middleware.AuthFrom(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgSessionExpired)
		return
	}
	sessionID, _ := middleware.SessionIDFrom(r.Context())

	selector := h.selectors.Get(sessionID)
	selector.CloseConfirm()

	snap := selector.Snapshot()
	h.logger.Info("DELETE /interview/selection/confirm - Dialog closed: user_id=%d", auth.UserID)
	handlers.RespondJSON(w, http.StatusOK, DialogResponse{
		Status:      "success",
		State:       string(snap.State),
		ConfirmOpen: snap.ConfirmOpen,
	})
}
