package clear_selection

import (
	"errors"
	"net/http"

	"github.com/m04kA/ADM-InterviewPortal/internal/api/handlers"
	"github.com/m04kA/ADM-InterviewPortal/internal/api/middleware"
	"github.com/m04kA/ADM-InterviewPortal/internal/service/selection"
)

const (
	msgSessionExpired     = "сессия истекла, войдите в систему заново"
	msgSubmissionInFlight = "запись уже отправляется, дождитесь результата"
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

// ClearResponse HTTP response model
type ClearResponse struct {
	Status string `json:"status"`
	State  string `json:"state"`
}

// Handle DELETE /api/v1/interview/selection
// Сбрасывает выбранный слот и итоговое сообщение
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	auth, ok := middleware.AuthFrom(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgSessionExpired)
		return
	}
	sessionID, _ := middleware.SessionIDFrom(r.Context())

	selector := h.selectors.Get(sessionID)
	if err := selector.Clear(); err != nil {
		if errors.Is(err, selection.ErrSubmissionInFlight) {
			h.logger.Warn("DELETE /interview/selection - Submission in flight: user_id=%d", auth.UserID)
			handlers.RespondConflict(w, msgSubmissionInFlight)
			return
		}
		handlers.RespondInternalError(w)
		return
	}

	snap := selector.Snapshot()
	h.logger.Info("DELETE /interview/selection - Selection cleared: user_id=%d", auth.UserID)
	handlers.RespondJSON(w, http.StatusOK, ClearResponse{
		Status: "success",
		State:  string(snap.State),
	})
}
