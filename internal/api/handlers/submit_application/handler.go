package submit_application

import (
	"net/http"
	"strings"

	"github.com/m04kA/ADM-InterviewPortal/internal/api/handlers"
	"github.com/m04kA/ADM-InterviewPortal/internal/integrations/admissionapi"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingFields      = "заполните обязательные поля заявки"
)

type Handler struct {
	client ApplicationClient
	logger Logger
}

func NewHandler(client ApplicationClient, logger Logger) *Handler {
	return &Handler{
		client: client,
		logger: logger,
	}
}

// Handle POST /api/v1/admission/apply (публичный endpoint)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ApplicationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admission/apply - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	req.PersonalEmail = strings.TrimSpace(req.PersonalEmail)
	if req.FirstName == "" || req.LastName == "" || req.PersonalEmail == "" ||
		req.DocumentNumber == "" || req.ProgramID <= 0 || req.AcademicPeriodID <= 0 {
		handlers.RespondBadRequest(w, msgMissingFields)
		return
	}

	result, err := h.client.SubmitApplication(r.Context(), req.ToIntegrationRequest())
	if err != nil {
		h.logger.Error("POST /admission/apply - Submission failed: email=%s, error=%v", req.PersonalEmail, err)
		handlers.RespondInternalError(w)
		return
	}

	response := ApplicationResponse{
		Status:      result.Status,
		Message:     result.Message,
		ApplicantID: result.ApplicantID,
		Errors:      result.Errors,
	}

	// Отказ валидации backend отдаётся как 422 с ошибками по полям —
	// форма показывает их под соответствующими инпутами
	if result.Status != admissionapi.StatusSuccess {
		h.logger.Warn("POST /admission/apply - Rejected by backend: email=%s, message=%s",
			req.PersonalEmail, result.Message)
		handlers.RespondJSON(w, http.StatusUnprocessableEntity, response)
		return
	}

	h.logger.Info("POST /admission/apply - Application accepted: applicant_id=%d", result.ApplicantID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
