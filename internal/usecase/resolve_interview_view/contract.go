package resolve_interview_view

import (
	"context"

	"github.com/m04kA/ADM-InterviewPortal/internal/domain"
	groupAvailabilities "github.com/m04kA/ADM-InterviewPortal/internal/usecase/group_availabilities"
)

// AdmissionClient интерфейс клиента admission API
type AdmissionClient interface {
	GetApplicantDetails(ctx context.Context, token string) (*domain.ApplicantDetails, error)
	GetInterviewAppointments(ctx context.Context, token string) ([]domain.InterviewAppointment, error)
	GetInterviewAvailabilities(ctx context.Context, token string) ([]domain.InterviewAvailability, error)
	CanRegisterForInterviews(ctx context.Context, token string) (bool, error)
}

// GroupAvailabilitiesUseCase интерфейс нормализатора доступностей
type GroupAvailabilitiesUseCase interface {
	Execute(req *groupAvailabilities.Request) *groupAvailabilities.Response
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
