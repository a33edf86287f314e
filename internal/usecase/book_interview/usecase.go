package book_interview

import (
	"context"
	"fmt"
)

// UseCase use case бронирования интервью
type UseCase struct {
	client    BookingClient
	keySource KeySource
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client BookingClient, logger Logger) *UseCase {
	return &UseCase{
		client:    client,
		keySource: &UUIDKeySource{},
		logger:    logger,
	}
}

// Execute выполняет бронирование выбранной доступности.
// На каждое подтверждение генерируется новый идемпотентный ключ и уходит
// ровно один запрос; автоматических повторов нет — повтор это действие
// пользователя. Пустой токен отсекает клиент до сетевого вызова.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.AvailabilityID <= 0 {
		uc.logger.Warn("BookInterview: invalid availability_id=%d", req.AvailabilityID)
		return nil, fmt.Errorf("%w: availabilityID must be positive", ErrInvalidInput)
	}

	// 2. Ключ идемпотентности на это конкретное подтверждение
	key := uc.keySource.NewKey()

	uc.logger.Info("BookInterview: user=%d, availability_id=%d, key=%s",
		req.Auth.UserID, req.AvailabilityID, key)

	// 3. Один запрос к admission API; результат всегда структурированный
	result := uc.client.CreateInterviewAppointment(ctx, req.Auth.Token, req.AvailabilityID, key)

	resp := &Response{
		Status:         result.Status,
		Message:        result.Message,
		Appointment:    result.Appointment,
		IdempotencyKey: key,
	}

	if resp.IsSuccess() {
		uc.logger.Info("BookInterview: booked availability_id=%d for user=%d", req.AvailabilityID, req.Auth.UserID)
	} else {
		uc.logger.Warn("BookInterview: rejected availability_id=%d for user=%d: %s",
			req.AvailabilityID, req.Auth.UserID, resp.Message)
	}

	return resp, nil
}
