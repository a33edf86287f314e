package submit_application

import (
	"github.com/m04kA/ADM-InterviewPortal/internal/integrations/admissionapi"
)

// ApplicationRequest HTTP request model заявки на поступление
type ApplicationRequest struct {
	FirstName          string  `json:"firstName"`
	LastName           string  `json:"lastName"`
	PersonalEmail      string  `json:"personalEmail"`
	Phones             string  `json:"phones"`
	DocumentType       string  `json:"documentType"`
	DocumentNumber     string  `json:"documentNumber"`
	ProgramID          int64   `json:"programId"`
	AcademicPeriodID   int64   `json:"academicPeriodId"`
	PaymentOrderBank   string  `json:"paymentOrderBank"`
	BirthDate          string  `json:"birthDate"`
	UniversityID       int64   `json:"universityId"`
	UndergraduateMajor string  `json:"undergraduateMajor"`
	WithInvoice        bool    `json:"withInvoice"`
	RUCNumber          *string `json:"rucNumber,omitempty"`
	BusinessName       *string `json:"businessName,omitempty"`
	BusinessAddress    *string `json:"businessAddress,omitempty"`
	RegisteredAddress  *string `json:"registeredAddress,omitempty"`
}

// ToIntegrationRequest конвертирует HTTP model в запрос admission API
func (r *ApplicationRequest) ToIntegrationRequest() *admissionapi.ApplicationRequest {
	return &admissionapi.ApplicationRequest{
		FirstName:          r.FirstName,
		LastName:           r.LastName,
		PersonalEmail:      r.PersonalEmail,
		Phones:             r.Phones,
		DocumentType:       r.DocumentType,
		DocumentNumber:     r.DocumentNumber,
		ProgramID:          r.ProgramID,
		AcademicPeriodID:   r.AcademicPeriodID,
		PaymentOrderBank:   r.PaymentOrderBank,
		BirthDate:          r.BirthDate,
		UniversityID:       r.UniversityID,
		UndergraduateMajor: r.UndergraduateMajor,
		WithInvoice:        r.WithInvoice,
		RUCNumber:          r.RUCNumber,
		BusinessName:       r.BusinessName,
		BusinessAddress:    r.BusinessAddress,
		RegisteredAddress:  r.RegisteredAddress,
	}
}

// ApplicationResponse HTTP response model
type ApplicationResponse struct {
	Status      string              `json:"status"`
	Message     string              `json:"message"`
	ApplicantID int64               `json:"applicantId,omitempty"`
	Errors      map[string][]string `json:"errors,omitempty"`
}
