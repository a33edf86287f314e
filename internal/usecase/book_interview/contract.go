package book_interview

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/ADM-InterviewPortal/internal/integrations/admissionapi"
)

// BookingClient интерфейс клиента бронирования admission API
type BookingClient interface {
	// CreateInterviewAppointment выполняет один запрос на бронирование
	// и всегда возвращает структурированный результат
	CreateInterviewAppointment(ctx context.Context, token string, availabilityID int64, idempotencyKey string) *admissionapi.AppointmentResult
}

// KeySource источник идемпотентных ключей (для тестирования)
type KeySource interface {
	NewKey() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// UUIDKeySource реальный источник ключей для production
type UUIDKeySource struct{}

// NewKey возвращает новый уникальный ключ
func (s *UUIDKeySource) NewKey() string {
	return uuid.NewString()
}
