package resolve_interview_view

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ADM-InterviewPortal/internal/domain"
	"github.com/m04kA/ADM-InterviewPortal/internal/integrations/admissionapi"
	groupAvailabilities "github.com/m04kA/ADM-InterviewPortal/internal/usecase/group_availabilities"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// mockClient отдаёт заранее подготовленные ответы admission API
type mockClient struct {
	details     *domain.ApplicantDetails
	detailsErr  error
	appts       []domain.InterviewAppointment
	apptsErr    error
	avails      []domain.InterviewAvailability
	availsErr   error
	canRegister bool
	canRegErr   error
}

func (m *mockClient) GetApplicantDetails(context.Context, string) (*domain.ApplicantDetails, error) {
	return m.details, m.detailsErr
}

func (m *mockClient) GetInterviewAppointments(context.Context, string) ([]domain.InterviewAppointment, error) {
	return m.appts, m.apptsErr
}

func (m *mockClient) GetInterviewAvailabilities(context.Context, string) ([]domain.InterviewAvailability, error) {
	return m.avails, m.availsErr
}

func (m *mockClient) CanRegisterForInterviews(context.Context, string) (bool, error) {
	return m.canRegister, m.canRegErr
}

func details() *domain.ApplicantDetails {
	return &domain.ApplicantDetails{
		ID:      5,
		Program: domain.Program{ID: 1, Name: "MBA"},
		AcademicPeriod: domain.AcademicPeriod{
			ID:   2,
			Name: "2026-I",
		},
	}
}

func newUseCase(client *mockClient) *UseCase {
	return NewUseCase(client, groupAvailabilities.NewUseCase(nopLogger{}), nopLogger{})
}

func request() *Request {
	return &Request{Auth: domain.AuthContext{Token: "tok", UserID: 42}}
}

func TestExecute_ScheduledBranch(t *testing.T) {
	appt := domain.InterviewAppointment{
		ID:      77,
		Status:  domain.AppointmentScheduled,
		StartAt: time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local),
	}
	uc := newUseCase(&mockClient{details: details(), appts: []domain.InterviewAppointment{appt}})

	resp, err := uc.Execute(context.Background(), request())
	require.NoError(t, err)

	assert.Equal(t, BranchScheduled, resp.Branch)
	require.NotNil(t, resp.Appointment)
	assert.Equal(t, int64(77), resp.Appointment.ID)
	assert.Nil(t, resp.Schedule)
	require.NotNil(t, resp.Applicant)
	assert.Equal(t, "MBA", resp.Applicant.Program.Name)
}

func TestExecute_RegistrationClosedBranch(t *testing.T) {
	uc := newUseCase(&mockClient{details: details(), canRegister: false})

	resp, err := uc.Execute(context.Background(), request())
	require.NoError(t, err)

	assert.Equal(t, BranchRegistrationClosed, resp.Branch)
	assert.Nil(t, resp.Appointment)
	assert.Nil(t, resp.Schedule)
}

func TestExecute_PickerBranch(t *testing.T) {
	uc := newUseCase(&mockClient{
		details:     details(),
		canRegister: true,
		avails: []domain.InterviewAvailability{
			{
				ID:       11,
				StartAt:  time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local),
				EndAt:    time.Date(2026, 3, 10, 9, 30, 0, 0, time.Local),
				Capacity: 1,
			},
		},
	})

	resp, err := uc.Execute(context.Background(), request())
	require.NoError(t, err)

	assert.Equal(t, BranchPicker, resp.Branch)
	require.NotNil(t, resp.Schedule)
	assert.Equal(t, 1, resp.Schedule.Total)
	assert.NotNil(t, resp.Schedule.FindByAvailabilityID(11))
}

func TestExecute_PickerBranchWithEmptySchedule(t *testing.T) {
	uc := newUseCase(&mockClient{details: details(), canRegister: true})

	resp, err := uc.Execute(context.Background(), request())
	require.NoError(t, err)

	assert.Equal(t, BranchPicker, resp.Branch)
	require.NotNil(t, resp.Schedule)
	assert.True(t, resp.Schedule.IsEmpty())
}

func TestExecute_UnauthorizedMapped(t *testing.T) {
	uc := newUseCase(&mockClient{detailsErr: admissionapi.ErrUnauthorized})

	_, err := uc.Execute(context.Background(), request())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestExecute_UpstreamFailureWrapped(t *testing.T) {
	uc := newUseCase(&mockClient{details: details(), apptsErr: admissionapi.ErrInvalidResponse})

	_, err := uc.Execute(context.Background(), request())
	assert.ErrorIs(t, err, ErrInternal)
}
