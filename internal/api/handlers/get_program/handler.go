package get_program

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/ADM-InterviewPortal/internal/api/handlers"
	"github.com/m04kA/ADM-InterviewPortal/internal/integrations/admissionapi"
)

const (
	msgInvalidUUID     = "некорректный UUID программы"
	msgProgramNotFound = "программа не найдена"
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

// ProgramResponse HTTP response model
type ProgramResponse struct {
	Status      string `json:"status"`
	ID          int64  `json:"id"`
	UUID        string `json:"uuid"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Handle GET /api/v1/programs/{uuid} (публичный endpoint)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	uuid := mux.Vars(r)["uuid"]
	if uuid == "" {
		handlers.RespondBadRequest(w, msgInvalidUUID)
		return
	}

	program, err := h.client.GetProgramByUUID(r.Context(), uuid)
	if err != nil {
		if errors.Is(err, admissionapi.ErrNotFound) {
			h.logger.Warn("GET /programs/{uuid} - Program not found: uuid=%s", uuid)
			handlers.RespondNotFound(w, msgProgramNotFound)
			return
		}
		h.logger.Error("GET /programs/{uuid} - Failed to fetch program: uuid=%s, error=%v", uuid, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /programs/{uuid} - Program resolved: program_id=%d", program.ID)
	handlers.RespondJSON(w, http.StatusOK, ProgramResponse{
		Status:      "success",
		ID:          program.ID,
		UUID:        program.UUID,
		Name:        program.Name,
		Description: program.Description,
	})
}
