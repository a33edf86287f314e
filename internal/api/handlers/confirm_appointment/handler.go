package confirm_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/ADM-InterviewPortal/internal/api/handlers"
	"github.com/m04kA/ADM-InterviewPortal/internal/api/middleware"
	"github.com/m04kA/ADM-InterviewPortal/internal/service/selection"
)

const (
	msgSessionExpired      = "сессия истекла, войдите в систему заново"
	msgSubmissionInFlight  = "запись уже отправляется, дождитесь результата"
	msgNoSlotSelected      = "сначала выберите слот"
	msgConfirmNotRequested = "подтверждение не запрошено"
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

// Handle POST /api/v1/interview/appointments
// Подтверждает бронирование выбранного слота
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	auth, ok := middleware.AuthFrom(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgSessionExpired)
		return
	}
	sessionID, _ := middleware.SessionIDFrom(r.Context())

	selector := h.selectors.Get(sessionID)
	result, err := selector.Confirm(r.Context(), auth)
	if err != nil {
		switch {
		case errors.Is(err, selection.ErrSubmissionInFlight):
			h.logger.Warn("POST /interview/appointments - Submission already in flight: user_id=%d", auth.UserID)
			handlers.RespondConflict(w, msgSubmissionInFlight)
		case errors.Is(err, selection.ErrNoSlotSelected):
			handlers.RespondConflict(w, msgNoSlotSelected)
		case errors.Is(err, selection.ErrConfirmNotRequested):
			handlers.RespondConflict(w, msgConfirmNotRequested)
		default:
			h.logger.Error("POST /interview/appointments - Confirm failed: user_id=%d, error=%v", auth.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	snap := selector.Snapshot()
	h.logger.Info("POST /interview/appointments - Result kind=%s: user_id=%d", result.Kind, auth.UserID)
	handlers.RespondJSON(w, http.StatusOK, FromResult(result, snap))
}
