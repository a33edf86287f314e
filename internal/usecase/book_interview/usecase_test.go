package book_interview

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ADM-InterviewPortal/internal/domain"
	"github.com/m04kA/ADM-InterviewPortal/internal/integrations/admissionapi"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// mockBookingClient записывает параметры каждого вызова
type mockBookingClient struct {
	result *admissionapi.AppointmentResult
	tokens []string
	ids    []int64
	keys   []string
}

func (m *mockBookingClient) CreateInterviewAppointment(_ context.Context, token string, availabilityID int64, idempotencyKey string) *admissionapi.AppointmentResult {
	m.tokens = append(m.tokens, token)
	m.ids = append(m.ids, availabilityID)
	m.keys = append(m.keys, idempotencyKey)
	return m.result
}

func request(availabilityID int64) *Request {
	return &Request{
		Auth:           domain.AuthContext{Token: "tok", UserID: 42},
		AvailabilityID: availabilityID,
	}
}

func TestExecute_InvalidAvailabilityID(t *testing.T) {
	client := &mockBookingClient{}
	uc := NewUseCase(client, nopLogger{})

	_, err := uc.Execute(context.Background(), request(0))
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, client.ids)
}

func TestExecute_SingleCallWithFreshKey(t *testing.T) {
	client := &mockBookingClient{result: &admissionapi.AppointmentResult{
		Status:  "success",
		Message: "запись создана",
	}}
	uc := NewUseCase(client, nopLogger{})

	first, err := uc.Execute(context.Background(), request(11))
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), request(11))
	require.NoError(t, err)

	require.Len(t, client.keys, 2)
	assert.Equal(t, "tok", client.tokens[0])
	assert.Equal(t, int64(11), client.ids[0])

	// Каждое подтверждение уходит под собственным ключом
	assert.NotEmpty(t, client.keys[0])
	assert.NotEqual(t, client.keys[0], client.keys[1])
	assert.Equal(t, client.keys[0], first.IdempotencyKey)
	assert.Equal(t, client.keys[1], second.IdempotencyKey)
}

func TestExecute_BusinessRejectionPassedThrough(t *testing.T) {
	client := &mockBookingClient{result: &admissionapi.AppointmentResult{
		Status:  "error",
		Message: "слот уже занят",
	}}
	uc := NewUseCase(client, nopLogger{})

	resp, err := uc.Execute(context.Background(), request(11))
	require.NoError(t, err)

	assert.False(t, resp.IsSuccess())
	assert.Equal(t, "слот уже занят", resp.Message)
	assert.Nil(t, resp.Appointment)
}

func TestExecute_SuccessCarriesAppointment(t *testing.T) {
	appt := &domain.InterviewAppointment{ID: 77, Status: domain.AppointmentScheduled}
	client := &mockBookingClient{result: &admissionapi.AppointmentResult{
		Status:      "success",
		Message:     "запись создана",
		Appointment: appt,
	}}
	uc := NewUseCase(client, nopLogger{})

	resp, err := uc.Execute(context.Background(), request(11))
	require.NoError(t, err)

	assert.True(t, resp.IsSuccess())
	require.NotNil(t, resp.Appointment)
	assert.Equal(t, int64(77), resp.Appointment.ID)
}
