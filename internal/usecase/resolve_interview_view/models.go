package resolve_interview_view

import (
	"github.com/m04kA/ADM-InterviewPortal/internal/domain"
	groupAvailabilities "github.com/m04kA/ADM-InterviewPortal/internal/usecase/group_availabilities"
)

// ViewBranch ветка UI страницы интервью
type ViewBranch string

const (
	// BranchScheduled у абитуриента уже есть запись — показываем сводку,
	// выбор слота полностью скрыт
	BranchScheduled ViewBranch = "scheduled"

	// BranchPicker записи нет — показываем выбор слота
	BranchPicker ViewBranch = "picker"

	// BranchRegistrationClosed абитуриент ещё не допущен к записи
	// (документы не загружены или не одобрены)
	BranchRegistrationClosed ViewBranch = "registration_closed"
)

// Request модель запроса страницы интервью
type Request struct {
	Auth domain.AuthContext
}

// Response модель страницы интервью: ровно одна активная ветка
type Response struct {
	Branch      ViewBranch
	Applicant   *domain.ApplicantDetails
	Appointment *domain.InterviewAppointment     // Заполнено для BranchScheduled
	Schedule    *groupAvailabilities.Response    // Заполнено для BranchPicker
}
