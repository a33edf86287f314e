package get_applicant_documents

import (
	"errors"
	"net/http"

	"github.com/m04kA/ADM-InterviewPortal/internal/api/handlers"
	"github.com/m04kA/ADM-InterviewPortal/internal/api/middleware"
	"github.com/m04kA/ADM-InterviewPortal/internal/integrations/admissionapi"
)

const msgSessionExpired = "сессия истекла, войдите в систему заново"

type Handler struct {
	client DocumentClient
	logger Logger
}

func NewHandler(client DocumentClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Handle GET /api/v1/applicant/documents
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	auth, ok := middleware.AuthFrom(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgSessionExpired)
		return
	}

	documents, err := h.client.GetApplicantDocuments(r.Context(), auth.Token)
	if err != nil {
		if errors.Is(err, admissionapi.ErrUnauthorized) {
			handlers.RespondUnauthorized(w, msgSessionExpired)
			return
		}
		h.logger.Error("GET /applicant/documents - Failed to fetch documents: user_id=%d, error=%v", auth.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /applicant/documents - Returned %d documents: user_id=%d", len(documents), auth.UserID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(documents))
}
