package get_program_documents

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/ADM-InterviewPortal/internal/api/handlers"
	"github.com/m04kA/ADM-InterviewPortal/internal/api/middleware"
	"github.com/m04kA/ADM-InterviewPortal/internal/domain"
	"github.com/m04kA/ADM-InterviewPortal/internal/integrations/admissionapi"
)

const (
	msgSessionExpired   = "сессия истекла, войдите в систему заново"
	msgInvalidProgramID = "некорректный ID программы"
)

type Handler struct {
	client CatalogClient
	logger Logger
}

func NewHandler(client CatalogClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// DocumentView HTTP модель документа программы
type DocumentView struct {
	ID           int64  `json:"id"`
	DocumentName string `json:"documentName"`
	DocumentType string `json:"documentType"`
	FullURL      string `json:"fullUrl"`
}

// DocumentsResponse HTTP response model
type DocumentsResponse struct {
	Status    string         `json:"status"`
	Documents []DocumentView `json:"documents"`
}

// Handle GET /api/v1/programs/{id}/documents
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	auth, ok := middleware.AuthFrom(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgSessionExpired)
		return
	}

	programID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || programID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidProgramID)
		return
	}

	documents, err := h.client.GetProgramDocuments(r.Context(), auth.Token, programID)
	if err != nil {
		if errors.Is(err, admissionapi.ErrUnauthorized) {
			handlers.RespondUnauthorized(w, msgSessionExpired)
			return
		}
		h.logger.Error("GET /programs/{id}/documents - Failed to fetch documents: program_id=%d, error=%v",
			programID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /programs/{id}/documents - Returned %d documents: program_id=%d", len(documents), programID)
	handlers.RespondJSON(w, http.StatusOK, fromDomain(documents))
}

func fromDomain(documents []domain.ProgramDocument) DocumentsResponse {
	views := make([]DocumentView, 0, len(documents))
	for _, doc := range documents {
		views = append(views, DocumentView{
			ID:           doc.ID,
			DocumentName: doc.DocumentName,
			DocumentType: doc.DocumentType,
			FullURL:      doc.FullURL,
		})
	}
	return DocumentsResponse{Status: "success", Documents: views}
}
