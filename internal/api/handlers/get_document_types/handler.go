package get_document_types

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

// TypeView HTTP модель типа документа
type TypeView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TypesResponse HTTP response model
type TypesResponse struct {
	Status string     `json:"status"`
	Types  []TypeView `json:"types"`
}

// Handle GET /api/v1/document-types (публичный endpoint)
// При недоступности admission API отдаётся дефолтный справочник
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	types := h.client.GetDocumentTypesWithGracefulDegradation(r.Context())

	h.logger.Info("GET /document-types - Returned %d types", len(types))
	handlers.RespondJSON(w, http.StatusOK, fromDomain(types))
}

func fromDomain(types []domain.DocumentType) TypesResponse {
	views := make([]TypeView, 0, len(types))
	for _, t := range types {
		views = append(views, TypeView{ID: t.ID, Name: t.Name})
	}
	return TypesResponse{Status: "success", Types: views}
}
