package upload_document

import (
	"errors"
	"net/http"

	"github.com/m04kA/ADM-InterviewPortal/internal/api/handlers"
	"github.com/m04kA/ADM-InterviewPortal/internal/api/middleware"
	"github.com/m04kA/ADM-InterviewPortal/internal/domain"
	"github.com/m04kA/ADM-InterviewPortal/internal/integrations/admissionapi"
)

const (
	msgSessionExpired      = "сессия истекла, войдите в систему заново"
	msgMissingFile         = "файл документа не передан"
	msgMissingDocumentName = "укажите название документа"
	msgDocumentNameTooLong = "название документа слишком длинное"
	msgFileTooLarge        = "файл превышает допустимый размер"
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

// UploadResponse HTTP response model
type UploadResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	Path         string `json:"path"`
	DocumentName string `json:"documentName"`
}

// Handle POST /api/v1/applicant/documents (multipart)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	auth, ok := middleware.AuthFrom(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgSessionExpired)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, domain.MaxUploadSizeBytes)
	if err := r.ParseMultipartForm(domain.MaxUploadSizeBytes); err != nil {
		h.logger.Warn("POST /applicant/documents - Invalid multipart form: user_id=%d, error=%v", auth.UserID, err)
		handlers.RespondBadRequest(w, msgFileTooLarge)
		return
	}

	file, header, err := r.FormFile("document")
	if err != nil {
		handlers.RespondBadRequest(w, msgMissingFile)
		return
	}
	defer file.Close()

	documentName := r.FormValue("document_name")
	if documentName == "" {
		handlers.RespondBadRequest(w, msgMissingDocumentName)
		return
	}
	if len(documentName) > domain.MaxDocumentNameLength {
		handlers.RespondBadRequest(w, msgDocumentNameTooLong)
		return
	}

	result, err := h.client.UploadDocument(r.Context(), auth.Token, documentName, header.Filename, file)
	if err != nil {
		if errors.Is(err, admissionapi.ErrUnauthorized) {
			handlers.RespondUnauthorized(w, msgSessionExpired)
			return
		}
		h.logger.Error("POST /applicant/documents - Upload failed: user_id=%d, document_name=%s, error=%v",
			auth.UserID, documentName, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /applicant/documents - Document uploaded: user_id=%d, document_name=%s",
		auth.UserID, result.DocumentName)
	handlers.RespondJSON(w, http.StatusCreated, UploadResponse{
		Status:       result.Status,
		Message:      result.Message,
		Path:         result.Path,
		DocumentName: result.DocumentName,
	})
}
