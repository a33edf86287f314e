package get_banks

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

// BankView HTTP модель банка
type BankView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BanksResponse HTTP response model
type BanksResponse struct {
	Status string     `json:"status"`
	Banks  []BankView `json:"banks"`
}

// Handle GET /api/v1/banks (публичный endpoint)
// Справочник банков для выпадающего списка формы регистрации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	banks, err := h.client.GetBanks(r.Context())
	if err != nil {
		h.logger.Error("GET /banks - Failed to fetch banks: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /banks - Returned %d banks", len(banks))
	handlers.RespondJSON(w, http.StatusOK, fromDomain(banks))
}

func fromDomain(banks []domain.Bank) BanksResponse {
	views := make([]BankView, 0, len(banks))
	for _, b := range banks {
		views = append(views, BankView{ID: b.ID, Name: b.Name})
	}
	return BanksResponse{Status: "success", Banks: views}
}
