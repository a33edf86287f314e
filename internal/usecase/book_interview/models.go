package book_interview

import (
	"github.com/m04kA/ADM-InterviewPortal/internal/domain"
)

// Статусы результата бронирования
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Request модель запроса на бронирование интервью
type Request struct {
	Auth           domain.AuthContext
	AvailabilityID int64
}

// Response структурированный результат бронирования
// Message при бизнес-отказе — дословное сообщение backend
type Response struct {
	Status         string
	Message        string
	Appointment    *domain.InterviewAppointment
	IdempotencyKey string // Ключ, под которым ушёл запрос
}

// IsSuccess returns true if the appointment was created
func (r *Response) IsSuccess() bool {
	return r.Status == StatusSuccess
}
