package get_active_period

import (
	"errors"
	"net/http"

	"github.com/m04kA/ADM-InterviewPortal/internal/api/handlers"
	"github.com/m04kA/ADM-InterviewPortal/internal/integrations/admissionapi"
)

const msgNoActivePeriod = "активный период приёма не найден"

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

// PeriodResponse HTTP response model
type PeriodResponse struct {
	Status    string `json:"status"`
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Active    bool   `json:"active"`
	Admission bool   `json:"admission"`
}

// Handle GET /api/v1/period (публичный endpoint)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	period, err := h.client.GetActivePeriod(r.Context())
	if err != nil {
		if errors.Is(err, admissionapi.ErrNotFound) {
			handlers.RespondNotFound(w, msgNoActivePeriod)
			return
		}
		h.logger.Error("GET /period - Failed to fetch active period: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /period - Active period resolved: period_id=%d", period.ID)
	handlers.RespondJSON(w, http.StatusOK, PeriodResponse{
		Status:    "success",
		ID:        period.ID,
		Name:      period.Name,
		Active:    period.Active,
		Admission: period.Admission,
	})
}
