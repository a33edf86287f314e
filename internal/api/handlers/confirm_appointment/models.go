package confirm_appointment

import (
	"github.com/m04kA/ADM-InterviewPortal/internal/service/selection"
)

// ConfirmResponse HTTP response model итога попытки бронирования
type ConfirmResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	State        string `json:"state"`
	NeedsRefresh bool   `json:"needsRefresh"`
}

// FromResult конвертирует итог селектора в HTTP response
func FromResult(result *selection.Result, snap selection.Snapshot) ConfirmResponse {
	return ConfirmResponse{
		Status:       string(result.Kind),
		Message:      result.Text,
		State:        string(snap.State),
		NeedsRefresh: snap.NeedsRefresh,
	}
}
