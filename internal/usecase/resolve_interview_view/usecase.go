package resolve_interview_view

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/ADM-InterviewPortal/internal/integrations/admissionapi"
	groupAvailabilities "github.com/m04kA/ADM-InterviewPortal/internal/usecase/group_availabilities"
)

// UseCase use case выбора ветки страницы интервью
type UseCase struct {
	client  AdmissionClient
	grouper GroupAvailabilitiesUseCase
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client AdmissionClient, grouper GroupAvailabilitiesUseCase, logger Logger) *UseCase {
	return &UseCase{
		client:  client,
		grouper: grouper,
		logger:  logger,
	}
}

// Execute решает, какую ветку страницы интервью показать.
// Непустой список записей означает ветку "уже записан" по первой записи:
// инвариант "не больше одной активной записи" обеспечивает backend,
// здесь он не перепроверяется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ResolveInterviewView: user=%d", req.Auth.UserID)

	// 1. Данные абитуриента (программа и период для шапки страницы)
	applicant, err := uc.client.GetApplicantDetails(ctx, req.Auth.Token)
	if err != nil {
		if errors.Is(err, admissionapi.ErrUnauthorized) {
			return nil, ErrUnauthorized
		}
		uc.logger.Error("ResolveInterviewView: failed to get applicant details: %v", err)
		return nil, fmt.Errorf("%w: failed to get applicant details: %v", ErrInternal, err)
	}

	// 2. Существующие записи: непустой список подавляет выбор слота
	appointments, err := uc.client.GetInterviewAppointments(ctx, req.Auth.Token)
	if err != nil {
		if errors.Is(err, admissionapi.ErrUnauthorized) {
			return nil, ErrUnauthorized
		}
		uc.logger.Error("ResolveInterviewView: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	if len(appointments) > 0 {
		uc.logger.Info("ResolveInterviewView: user=%d already scheduled, appointment_id=%d",
			req.Auth.UserID, appointments[0].ID)
		return &Response{
			Branch:      BranchScheduled,
			Applicant:   applicant,
			Appointment: &appointments[0],
		}, nil
	}

	// 3. Допуск к записи на интервью
	canRegister, err := uc.client.CanRegisterForInterviews(ctx, req.Auth.Token)
	if err != nil {
		if errors.Is(err, admissionapi.ErrUnauthorized) {
			return nil, ErrUnauthorized
		}
		uc.logger.Error("ResolveInterviewView: failed to check registration eligibility: %v", err)
		return nil, fmt.Errorf("%w: failed to check registration eligibility: %v", ErrInternal, err)
	}

	if !canRegister {
		uc.logger.Info("ResolveInterviewView: user=%d not yet eligible for interviews", req.Auth.UserID)
		return &Response{
			Branch:    BranchRegistrationClosed,
			Applicant: applicant,
		}, nil
	}

	// 4. Доступности — свежие при каждом запросе, локального кеша нет
	availabilities, err := uc.client.GetInterviewAvailabilities(ctx, req.Auth.Token)
	if err != nil {
		if errors.Is(err, admissionapi.ErrUnauthorized) {
			return nil, ErrUnauthorized
		}
		uc.logger.Error("ResolveInterviewView: failed to get availabilities: %v", err)
		return nil, fmt.Errorf("%w: failed to get availabilities: %v", ErrInternal, err)
	}

	// 5. Нормализуем в группы по дням
	schedule := uc.grouper.Execute(&groupAvailabilities.Request{Availabilities: availabilities})

	return &Response{
		Branch:    BranchPicker,
		Applicant: applicant,
		Schedule:  schedule,
	}, nil
}
