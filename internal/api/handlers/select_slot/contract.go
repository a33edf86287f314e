package select_slot

import (
	"context"

	"github.com/m04kA/ADM-InterviewPortal/internal/domain"
	"github.com/m04kA/ADM-InterviewPortal/internal/service/selection"
	groupAvailabilities "github.com/m04kA/ADM-InterviewPortal/internal/usecase/group_availabilities"
)

// AvailabilityProvider источник актуальных доступностей
type AvailabilityProvider interface {
	GetInterviewAvailabilities(ctx context.Context, token string) ([]domain.InterviewAvailability, error)
}

// GroupAvailabilitiesUseCase интерфейс нормализатора доступностей
type GroupAvailabilitiesUseCase interface {
	Execute(req *groupAvailabilities.Request) *groupAvailabilities.Response
}

// SelectorRegistry реестр селекторов по сессиям
type SelectorRegistry interface {
	Get(sessionID string) *selection.Selector
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
