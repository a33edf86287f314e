package select_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/ADM-InterviewPortal/internal/api/handlers"
	"github.com/m04kA/ADM-InterviewPortal/internal/api/middleware"
	"github.com/m04kA/ADM-InterviewPortal/internal/integrations/admissionapi"
	groupAvailabilities "github.com/m04kA/ADM-InterviewPortal/internal/usecase/group_availabilities"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidAvailability  = "некорректный ID доступности"
	msgAvailabilityNotFound = "доступность не найдена"
	msgSessionExpired       = "сессия истекла, войдите в систему заново"
)

type Handler struct {
	availabilities AvailabilityProvider
	grouper        GroupAvailabilitiesUseCase
	selectors      SelectorRegistry
	logger         Logger
}

func NewHandler(availabilities AvailabilityProvider, grouper GroupAvailabilitiesUseCase, selectors SelectorRegistry, logger Logger) *Handler {
	return &Handler{
		availabilities: availabilities,
		grouper:        grouper,
		selectors:      selectors,
		logger:         logger,
	}
}

// Handle POST /api/v1/interview/selection
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	auth, ok := middleware.AuthFrom(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgSessionExpired)
		return
	}
	sessionID, _ := middleware.SessionIDFrom(r.Context())

	var req SelectSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /interview/selection - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.AvailabilityID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidAvailability)
		return
	}

	// Слот ищется в свежем списке доступностей: выбрать можно только то,
	// что backend отдаёт прямо сейчас
	raw, err := h.availabilities.GetInterviewAvailabilities(r.Context(), auth.Token)
	if err != nil {
		if errors.Is(err, admissionapi.ErrUnauthorized) {
			handlers.RespondUnauthorized(w, msgSessionExpired)
			return
		}
		h.logger.Error("POST /interview/selection - Failed to fetch availabilities: user_id=%d, error=%v", auth.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	schedule := h.grouper.Execute(&groupAvailabilities.Request{Availabilities: raw})

	slot := schedule.FindByAvailabilityID(req.AvailabilityID)
	if slot == nil {
		h.logger.Warn("POST /interview/selection - Availability not found: availability_id=%d, user_id=%d",
			req.AvailabilityID, auth.UserID)
		handlers.RespondNotFound(w, msgAvailabilityNotFound)
		return
	}

	// Недоступный слот — no-op: состояние селектора не меняется,
	// пользовательской ошибки нет
	selector := h.selectors.Get(sessionID)
	changed := selector.Select(slot)
	snap := selector.Snapshot()

	h.logger.Info("POST /interview/selection - availability_id=%d, user_id=%d, selected=%t",
		req.AvailabilityID, auth.UserID, changed)
	handlers.RespondJSON(w, http.StatusOK, SelectSlotResponse{
		Status:   "success",
		State:    string(snap.State),
		Selected: changed,
	})
}
