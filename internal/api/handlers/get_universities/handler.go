package get_universities

import (
	"net/http"

	"github.com/m04kA/ADM-InterviewPortal/internal/api/handlers"
	"github.com/m04kA/ADM-InterviewPortal/internal/domain"
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

// UniversityView HTTP модель университета
type UniversityView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UniversitiesResponse HTTP response model
type UniversitiesResponse struct {
	Status       string           `json:"status"`
	Universities []UniversityView `json:"universities"`
}

// Handle GET /api/v1/universities (публичный endpoint)
// Справочник университетов для выпадающего списка формы регистрации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	universities, err := h.client.GetUniversities(r.Context())
	if err != nil {
		h.logger.Error("GET /universities - Failed to fetch universities: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /universities - Returned %d universities", len(universities))
	handlers.RespondJSON(w, http.StatusOK, fromDomain(universities))
}

func fromDomain(universities []domain.University) UniversitiesResponse {
	views := make([]UniversityView, 0, len(universities))
	for _, u := range universities {
		views = append(views, UniversityView{ID: u.ID, Name: u.Name})
	}
	return UniversitiesResponse{Status: "success", Universities: views}
}
