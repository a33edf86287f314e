package domain

import "time"

// Student персональные данные абитуриента из admission API
type Student struct {
	ID                 int64
	Code               string
	FirstName          string
	LastName           string
	PersonalEmail      string
	Phones             string
	DocumentType       string
	DocumentNumber     string
	BirthDate          string // YYYY-MM-DD, как отдаёт backend
	UniversityID       int64
	UndergraduateMajor string
}

// Program программа магистратуры/аспирантуры
type Program struct {
	ID          int64
	UUID        string
	Name        string
	Description string
}

// AcademicPeriod период приёма
type AcademicPeriod struct {
	ID        int64
	Name      string
	Active    bool
	Admission bool
}

// Bank банк для оплаты заявочного взноса (справочник формы регистрации)
type Bank struct {
	ID   int64
	Name string
}

// University университет бакалавриата абитуриента (справочник формы регистрации)
type University struct {
	ID   int64
	Name string
}

// ApplicantDetails represents the applicant's admission record:
// who applied, to which program, in which period
type ApplicantDetails struct {
	ID               int64
	StudentID        int64
	AcademicPeriodID int64
	ProgramID        int64
	Admission        bool
	IsAccepted       bool
	Student          Student
	Program          Program
	AcademicPeriod   AcademicPeriod
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
