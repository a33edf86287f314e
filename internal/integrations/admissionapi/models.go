package admissionapi

import (
	"fmt"
	"time"

	"github.com/m04kA/ADM-InterviewPortal/internal/domain"
)

// Статусы ответов admission API
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// apiEnvelope стандартная обёртка ответов admission API
type apiEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// availabilityDTO модель доступности интервьюера из admission API
type availabilityDTO struct {
	ID                 int64  `json:"id"`
	InterviewerStartAt string `json:"interviewer_start_at"`
	InterviewerEndAt   string `json:"interviewer_end_at"`
	ProfessorName      string `json:"professor_name"`
	AcademicPeriodName string `json:"academic_period_name"`
	ProgramName        string `json:"program_name"`
	Capacity           int    `json:"capacity"`
	Mode               string `json:"mode"`
	Location           string `json:"location"`
	MeetingLink        string `json:"meeting_link"`
}

func (d *availabilityDTO) toDomain() (domain.InterviewAvailability, error) {
	startAt, err := parseAPITime(d.InterviewerStartAt)
	if err != nil {
		return domain.InterviewAvailability{}, fmt.Errorf("availability id=%d: %w", d.ID, err)
	}
	endAt, err := parseAPITime(d.InterviewerEndAt)
	if err != nil {
		return domain.InterviewAvailability{}, fmt.Errorf("availability id=%d: %w", d.ID, err)
	}

	return domain.InterviewAvailability{
		ID:                 d.ID,
		StartAt:            startAt,
		EndAt:              endAt,
		ProfessorName:      d.ProfessorName,
		ProgramName:        d.ProgramName,
		AcademicPeriodName: d.AcademicPeriodName,
		Capacity:           d.Capacity,
		Mode:               domain.InterviewMode(d.Mode),
		Location:           d.Location,
		MeetingLink:        d.MeetingLink,
	}, nil
}

// appointmentDTO модель записи на интервью из admission API
type appointmentDTO struct {
	ID                 int64  `json:"id"`
	ApplicantID        int64  `json:"applicant_id"`
	AvailabilityID     int64  `json:"availability_id"`
	Status             string `json:"status"`
	BookedAt           string `json:"booked_at"`
	InterviewerStartAt string `json:"interviewer_start_at"`
	InterviewerEndAt   string `json:"interviewer_end_at"`
	ProfessorName      string `json:"professor_name"`
	ProgramName        string `json:"program_name"`
	Mode               string `json:"mode"`
	Location           string `json:"location"`
	MeetingLink        string `json:"meeting_link"`
}

func (d *appointmentDTO) toDomain() (domain.InterviewAppointment, error) {
	startAt, err := parseAPITime(d.InterviewerStartAt)
	if err != nil {
		return domain.InterviewAppointment{}, fmt.Errorf("appointment id=%d: %w", d.ID, err)
	}
	endAt, err := parseAPITime(d.InterviewerEndAt)
	if err != nil {
		return domain.InterviewAppointment{}, fmt.Errorf("appointment id=%d: %w", d.ID, err)
	}

	appt := domain.InterviewAppointment{
		ID:             d.ID,
		ApplicantID:    d.ApplicantID,
		AvailabilityID: d.AvailabilityID,
		Status:         domain.AppointmentStatus(d.Status),
		StartAt:        startAt,
		EndAt:          endAt,
		ProfessorName:  d.ProfessorName,
		ProgramName:    d.ProgramName,
		Mode:           domain.InterviewMode(d.Mode),
		Location:       d.Location,
		MeetingLink:    d.MeetingLink,
	}

	// booked_at может отсутствовать в старых записях
	if d.BookedAt != "" {
		bookedAt, err := parseAPITime(d.BookedAt)
		if err != nil {
			return domain.InterviewAppointment{}, fmt.Errorf("appointment id=%d: %w", d.ID, err)
		}
		appt.BookedAt = bookedAt
	}

	return appt, nil
}

// createAppointmentRequest тело запроса на создание записи
// Имя поля с опечаткой сохранено как в admission API — менять нельзя
type createAppointmentRequest struct {
	InterviewerAvailabilitieID int64 `json:"interviewer_availabilitie_id"`
}

// AppointmentResult structured outcome of a booking attempt.
// Транспортные ошибки конвертируются в Status=error, наружу исключений нет.
type AppointmentResult struct {
	Status      string
	Message     string
	Appointment *domain.InterviewAppointment
}

// IsSuccess returns true if the booking was accepted by the backend
func (r *AppointmentResult) IsSuccess() bool {
	return r.Status == StatusSuccess
}

// loginResponse ответ admission API на логин
type loginResponse struct {
	Token   string   `json:"token"`
	Message string   `json:"message"`
	Roles   []string `json:"role"`
	User    struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
}

// LoginResult результат логина для session-слоя портала
type LoginResult struct {
	Token    string
	UserID   int64
	UserName string
	Email    string
	Roles    []string
	Message  string
}

// ApplicationRequest заявка на поступление (admission/apply)
type ApplicationRequest struct {
	FirstName          string  `json:"first_name"`
	LastName           string  `json:"last_name"`
	PersonalEmail      string  `json:"personal_email"`
	Phones             string  `json:"phones"`
	DocumentType       string  `json:"document_type"`
	DocumentNumber     string  `json:"document_number"`
	ProgramID          int64   `json:"program_id"`
	AcademicPeriodID   int64   `json:"academic_period_id"`
	PaymentOrderBank   string  `json:"payment_order_bank"`
	BirthDate          string  `json:"birth_date"`
	UniversityID       int64   `json:"university_id"`
	UndergraduateMajor string  `json:"undergraduate_major"`
	WithInvoice        bool    `json:"with_invoice"`
	RUCNumber          *string `json:"ruc_number,omitempty"`
	BusinessName       *string `json:"business_name,omitempty"`
	BusinessAddress    *string `json:"business_address,omitempty"`
	RegisteredAddress  *string `json:"registered_address,omitempty"`
}

// ApplicationResult результат подачи заявки
// Errors заполняется при отказе валидации на стороне backend (по полям)
type ApplicationResult struct {
	Status      string
	Message     string
	ApplicantID int64
	Errors      map[string][]string
}

// UploadResult результат загрузки документа
type UploadResult struct {
	Status       string
	Message      string
	Path         string
	DocumentName string
}

// applicantDocumentDTO документ абитуриента из admission API
type applicantDocumentDTO struct {
	ID           int64  `json:"id"`
	DocumentName string `json:"document_name"`
	DocumentPath string `json:"document_path"`
	DocumentType string `json:"document_type"`
	CreatedAt    string `json:"created_at"`
}

func (d *applicantDocumentDTO) toDomain() domain.ApplicantDocument {
	doc := domain.ApplicantDocument{
		ID:           d.ID,
		DocumentName: d.DocumentName,
		DocumentPath: d.DocumentPath,
		DocumentType: d.DocumentType,
	}
	if t, err := parseAPITime(d.CreatedAt); err == nil {
		doc.CreatedAt = t
	}
	return doc
}

// applicantDetailsDTO детали абитуриента из admission API
type applicantDetailsDTO struct {
	ID               int64 `json:"id"`
	StudentID        int64 `json:"student_id"`
	AcademicPeriodID int64 `json:"academic_period_id"`
	ProgramID        int64 `json:"program_id"`
	Admission        bool  `json:"admission"`
	IsAccepted       bool  `json:"is_accepted"`
	Student          struct {
		ID                 int64  `json:"id"`
		Code               string `json:"code"`
		FirstName          string `json:"first_name"`
		LastName           string `json:"last_name"`
		PersonalEmail      string `json:"personal_email"`
		Phones             string `json:"phones"`
		DocumentType       string `json:"document_type"`
		DocumentNumber     string `json:"document_number"`
		BirthDate          string `json:"birth_date"`
		UniversityID       int64  `json:"university_id"`
		UndergraduateMajor string `json:"undergraduate_major"`
	} `json:"student"`
	Program struct {
		ID          int64  `json:"id"`
		UUID        string `json:"uuid"`
		Name        string `json:"name"`
		Description string `json:"description"`
	} `json:"program"`
	AcademicPeriod struct {
		ID        int64  `json:"id"`
		Name      string `json:"name"`
		Active    bool   `json:"active"`
		Admission bool   `json:"admission"`
	} `json:"academic_period"`
}

func (d *applicantDetailsDTO) toDomain() *domain.ApplicantDetails {
	return &domain.ApplicantDetails{
		ID:               d.ID,
		StudentID:        d.StudentID,
		AcademicPeriodID: d.AcademicPeriodID,
		ProgramID:        d.ProgramID,
		Admission:        d.Admission,
		IsAccepted:       d.IsAccepted,
		Student: domain.Student{
			ID:                 d.Student.ID,
			Code:               d.Student.Code,
			FirstName:          d.Student.FirstName,
			LastName:           d.Student.LastName,
			PersonalEmail:      d.Student.PersonalEmail,
			Phones:             d.Student.Phones,
			DocumentType:       d.Student.DocumentType,
			DocumentNumber:     d.Student.DocumentNumber,
			BirthDate:          d.Student.BirthDate,
			UniversityID:       d.Student.UniversityID,
			UndergraduateMajor: d.Student.UndergraduateMajor,
		},
		Program: domain.Program{
			ID:          d.Program.ID,
			UUID:        d.Program.UUID,
			Name:        d.Program.Name,
			Description: d.Program.Description,
		},
		AcademicPeriod: domain.AcademicPeriod{
			ID:        d.AcademicPeriod.ID,
			Name:      d.AcademicPeriod.Name,
			Active:    d.AcademicPeriod.Active,
			Admission: d.AcademicPeriod.Admission,
		},
	}
}

// programDocumentDTO документ программы из admission API
type programDocumentDTO struct {
	ID           int64  `json:"id"`
	ProgramID    int64  `json:"program_id"`
	DocumentName string `json:"document_name"`
	DocumentType string `json:"document_type"`
	FullURL      string `json:"full_url"`
}

func (d *programDocumentDTO) toDomain() domain.ProgramDocument {
	return domain.ProgramDocument{
		ID:           d.ID,
		ProgramID:    d.ProgramID,
		DocumentName: d.DocumentName,
		DocumentType: d.DocumentType,
		FullURL:      d.FullURL,
	}
}

// apiTimeLayouts форматы времени, встречающиеся в ответах admission API
var apiTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// parseAPITime парсит временную метку admission API
// Laravel отдаёт и ISO 8601, и "Y-m-d H:i:s" в зависимости от сериализатора
func parseAPITime(s string) (time.Time, error) {
	for _, layout := range apiTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unparseable timestamp %q", ErrInvalidResponse, s)
}
