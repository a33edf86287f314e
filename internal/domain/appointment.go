package domain

import "time"

// AppointmentStatus represents the status of an interview appointment
type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "scheduled"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// InterviewAppointment represents a confirmed booking linking an applicant
// to one interviewer availability. Created server-side; the portal only reads it.
type InterviewAppointment struct {
	ID             int64
	ApplicantID    int64
	AvailabilityID int64
	Status         AppointmentStatus
	BookedAt       time.Time
	StartAt        time.Time
	EndAt          time.Time
	ProfessorName  string
	ProgramName    string
	Mode           InterviewMode
	Location       string
	MeetingLink    string
}

// IsActive returns true if the appointment still occupies the applicant's
// single allowed booking
func (a *InterviewAppointment) IsActive() bool {
	return a.Status != AppointmentCancelled
}
