package delete_document

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/ADM-InterviewPortal/internal/api/handlers"
	"github.com/m04kA/ADM-InterviewPortal/internal/api/middleware"
	"github.com/m04kA/ADM-InterviewPortal/internal/integrations/admissionapi"
)

const (
	msgSessionExpired    = "сессия истекла, войдите в систему заново"
	msgInvalidDocumentID = "некорректный ID документа"
	msgDocumentNotFound  = "документ не найден"
)

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

// DeleteResponse HTTP response model
type DeleteResponse struct {
	Status string `json:"status"`
}

// Handle DELETE /api/v1/applicant/documents/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	auth, ok := middleware.AuthFrom(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgSessionExpired)
		return
	}

	documentID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || documentID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidDocumentID)
		return
	}

	if err := h.client.DeleteDocument(r.Context(), auth.Token, documentID); err != nil {
		switch {
		case errors.Is(err, admissionapi.ErrUnauthorized):
			handlers.RespondUnauthorized(w, msgSessionExpired)
		case errors.Is(err, admissionapi.ErrNotFound):
			h.logger.Warn("DELETE /applicant/documents/{id} - Document not found: document_id=%d, user_id=%d",
				documentID, auth.UserID)
			handlers.RespondNotFound(w, msgDocumentNotFound)
		default:
			h.logger.Error("DELETE /applicant/documents/{id} - Failed to delete: document_id=%d, user_id=%d, error=%v",
				documentID, auth.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /applicant/documents/{id} - Document deleted: document_id=%d, user_id=%d",
		documentID, auth.UserID)
	handlers.RespondJSON(w, http.StatusOK, DeleteResponse{Status: "success"})
}
