package get_interview_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/ADM-InterviewPortal/internal/api/handlers"
	"github.com/m04kA/ADM-InterviewPortal/internal/api/middleware"
	resolveInterviewView "github.com/m04kA/ADM-InterviewPortal/internal/usecase/resolve_interview_view"
)

const (
	msgSessionExpired = "сессия истекла, войдите в систему заново"
)

type Handler struct {
	useCase   ResolveInterviewViewUseCase
	selectors SelectorRegistry
	logger    Logger
}

func NewHandler(useCase ResolveInterviewViewUseCase, selectors SelectorRegistry, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		selectors: selectors,
		logger:    logger,
	}
}

// Handle GET /api/v1/interview/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	auth, ok := middleware.AuthFrom(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgSessionExpired)
		return
	}
	sessionID, _ := middleware.SessionIDFrom(r.Context())

	result, err := h.useCase.Execute(r.Context(), &resolveInterviewView.Request{Auth: auth})
	if err != nil {
		switch {
		case errors.Is(err, resolveInterviewView.ErrUnauthorized):
			h.logger.Warn("GET /interview/schedule - Token rejected upstream: user_id=%d", auth.UserID)
			handlers.RespondUnauthorized(w, msgSessionExpired)
		default:
			h.logger.Error("GET /interview/schedule - Failed to resolve view: user_id=%d, error=%v", auth.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	snap := h.selectors.Get(sessionID).Snapshot()
	response := FromUseCaseResponse(result, snap)

	h.logger.Info("GET /interview/schedule - Resolved branch=%s: user_id=%d", result.Branch, auth.UserID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
