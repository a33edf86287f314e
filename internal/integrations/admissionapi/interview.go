package admissionapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/m04kA/ADM-InterviewPortal/internal/domain"
)

// Сообщения для structured-результатов бронирования
// Backend-ошибки пробрасываются дословно, эти — только для локальных отказов
const (
	msgSessionExpired  = "сессия истекла, войдите в систему заново"
	msgConnectionError = "ошибка соединения с сервером, попробуйте позже"
)

// GetInterviewAvailabilities получает список доступностей интервьюеров
func (c *Client) GetInterviewAvailabilities(ctx context.Context, token string) ([]domain.InterviewAvailability, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	var resp struct {
		apiEnvelope
		Data []availabilityDTO `json:"data"`
	}

	if err := c.doJSON(ctx, http.MethodGet, "/admission/interview-availabilities", token, nil, &resp); err != nil {
		return nil, err
	}

	if resp.Status != StatusSuccess {
		return nil, fmt.Errorf("%w: status=%s message=%s", ErrInvalidResponse, resp.Status, resp.Message)
	}

	availabilities := make([]domain.InterviewAvailability, 0, len(resp.Data))
	for _, dto := range resp.Data {
		availability, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		availabilities = append(availabilities, availability)
	}

	return availabilities, nil
}

// CreateInterviewAppointment создает запись на интервью.
// Всегда возвращает структурированный результат: транспортные ошибки
// конвертируются в Status=error и не выходят за границу клиента.
// Пустой токен отсекается до сетевого вызова.
// Повторов нет — один запрос на одно подтверждение.
func (c *Client) CreateInterviewAppointment(ctx context.Context, token string, availabilityID int64, idempotencyKey string) *AppointmentResult {
	if token == "" {
		c.log.Warn("CreateInterviewAppointment: empty token, skipping network call")
		return &AppointmentResult{Status: StatusError, Message: msgSessionExpired}
	}

	body := createAppointmentRequest{InterviewerAvailabilitieID: availabilityID}

	req, err := c.newRequest(ctx, http.MethodPost, "/admission/interview-appointments", token, body)
	if err != nil {
		c.log.Error("CreateInterviewAppointment: failed to build request: %v", err)
		return &AppointmentResult{Status: StatusError, Message: msgConnectionError}
	}
	if idempotencyKey != "" {
		req.Header.Set("X-Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("CreateInterviewAppointment: request failed for availability_id=%d: %v", availabilityID, err)
		return &AppointmentResult{Status: StatusError, Message: msgConnectionError}
	}
	defer resp.Body.Close()

	// Ответ декодируется как есть и при 2xx, и при бизнес-отказе:
	// backend кладёт и успех, и ошибку в один envelope {status, message, data}
	var payload struct {
		apiEnvelope
		Data *struct {
			Appointment appointmentDTO `json:"appointment"`
		} `json:"data,omitempty"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.Error("CreateInterviewAppointment: failed to decode response (http %d): %v", resp.StatusCode, err)
		return &AppointmentResult{Status: StatusError, Message: msgConnectionError}
	}

	result := &AppointmentResult{
		Status:  payload.Status,
		Message: payload.Message,
	}

	if payload.Status == StatusSuccess && payload.Data != nil {
		appointment, err := payload.Data.Appointment.toDomain()
		if err != nil {
			// Запись создана, но ответ не разобрался — успех не скрываем
			c.log.Error("CreateInterviewAppointment: booked but failed to parse appointment: %v", err)
		} else {
			result.Appointment = &appointment
		}
	}

	if result.IsSuccess() {
		c.log.Info("CreateInterviewAppointment: booked availability_id=%d", availabilityID)
	} else {
		c.log.Warn("CreateInterviewAppointment: rejected availability_id=%d: %s", availabilityID, result.Message)
	}

	return result
}

// GetInterviewAppointments получает записи абитуриента на интервью
// Обычно список пуст или содержит одну запись — backend гарантирует
// не больше одной активной записи на абитуриента
func (c *Client) GetInterviewAppointments(ctx context.Context, token string) ([]domain.InterviewAppointment, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	var resp struct {
		apiEnvelope
		Data []appointmentDTO `json:"data"`
	}

	if err := c.doJSON(ctx, http.MethodGet, "/admission/interview-appointments", token, nil, &resp); err != nil {
		return nil, err
	}

	if resp.Status != StatusSuccess {
		return nil, fmt.Errorf("%w: status=%s message=%s", ErrInvalidResponse, resp.Status, resp.Message)
	}

	appointments := make([]domain.InterviewAppointment, 0, len(resp.Data))
	for _, dto := range resp.Data {
		appointment, err := dto.toDomain()
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, appointment)
	}

	return appointments, nil
}
