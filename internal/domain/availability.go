package domain

import "time"

// InterviewMode represents how the interview is conducted
type InterviewMode string

const (
	ModeInPerson InterviewMode = "in-person"
	ModeVirtual  InterviewMode = "virtual"
)

// InterviewAvailability represents a bookable interview time window
// published by an interviewer. Sourced from the admission API, immutable.
type InterviewAvailability struct {
	ID                 int64
	StartAt            time.Time
	EndAt              time.Time
	ProfessorName      string
	ProgramName        string
	AcademicPeriodName string
	Capacity           int // Оставшиеся места; 0 = слот полностью занят
	Mode               InterviewMode
	Location           string
	MeetingLink        string
}

// IsAvailable returns true if the slot still has bookable seats
func (a *InterviewAvailability) IsAvailable() bool {
	return a.Capacity > 0
}

// DateKey returns the calendar-day key of the slot in local time
// Формат YYYY-MM-DD сортируется лексикографически = хронологически
func (a *InterviewAvailability) DateKey() string {
	return a.StartAt.Local().Format(DateKeyFormat)
}
