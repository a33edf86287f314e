package get_interview_schedule

import (
	"github.com/m04kA/ADM-InterviewPortal/internal/domain"
	"github.com/m04kA/ADM-InterviewPortal/internal/service/selection"
	groupAvailabilities "github.com/m04kA/ADM-InterviewPortal/internal/usecase/group_availabilities"
	resolveInterviewView "github.com/m04kA/ADM-InterviewPortal/internal/usecase/resolve_interview_view"
)

// ScheduleResponse HTTP response model страницы интервью
type ScheduleResponse struct {
	Branch      string               `json:"branch"`
	Applicant   *ApplicantHeader     `json:"applicant,omitempty"`
	Appointment *AppointmentView     `json:"appointment,omitempty"`
	Days        []DayGroup           `json:"days,omitempty"`
	Selection   *SelectionView       `json:"selection,omitempty"`
}

// ApplicantHeader шапка страницы: программа и период абитуриента
type ApplicantHeader struct {
	ProgramName        string `json:"programName"`
	AcademicPeriodName string `json:"academicPeriodName"`
}

// AppointmentView сводка существующей записи на интервью
type AppointmentView struct {
	ID            int64  `json:"id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	ProfessorName string `json:"professorName"`
	ProgramName   string `json:"programName"`
	Mode          string `json:"mode"`
	Location      string `json:"location,omitempty"`
	MeetingLink   string `json:"meetingLink,omitempty"`
}

// DayGroup группа слотов одного календарного дня
type DayGroup struct {
	DateKey   string     `json:"dateKey"`
	DateLabel string     `json:"dateLabel"`
	Slots     []SlotView `json:"slots"`
}

// SlotView display-слот для UI
type SlotView struct {
	AvailabilityID     int64  `json:"availabilityId"`
	Time               string `json:"time"`
	Available          bool   `json:"available"`
	ProfessorName      string `json:"professorName"`
	ProgramName        string `json:"programName"`
	AcademicPeriodName string `json:"academicPeriodName"`
	Mode               string `json:"mode"`
	Location           string `json:"location,omitempty"`
}

// SelectionView текущее состояние селектора сессии
type SelectionView struct {
	State        string    `json:"state"`
	SelectedSlot *SlotView `json:"selectedSlot,omitempty"`
	ConfirmOpen  bool      `json:"confirmOpen"`
	Submitting   bool      `json:"submitting"`
	Result       *Result   `json:"result,omitempty"`
	NeedsRefresh bool      `json:"needsRefresh"`
}

// Result итоговое сообщение последней попытки бронирования
type Result struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *resolveInterviewView.Response, snap selection.Snapshot) *ScheduleResponse {
	out := &ScheduleResponse{
		Branch: string(resp.Branch),
	}

	if resp.Applicant != nil {
		out.Applicant = &ApplicantHeader{
			ProgramName:        resp.Applicant.Program.Name,
			AcademicPeriodName: resp.Applicant.AcademicPeriod.Name,
		}
	}

	if resp.Appointment != nil {
		out.Appointment = fromAppointment(resp.Appointment)
	}

	if resp.Schedule != nil {
		out.Days = fromSchedule(resp.Schedule)
		out.Selection = fromSnapshot(snap)
	}

	return out
}

func fromAppointment(a *domain.InterviewAppointment) *AppointmentView {
	return &AppointmentView{
		ID:            a.ID,
		Date:          a.StartAt.Local().Format(domain.DateKeyFormat),
		Time:          a.StartAt.Local().Format(domain.TimeFormat),
		ProfessorName: a.ProfessorName,
		ProgramName:   a.ProgramName,
		Mode:          string(a.Mode),
		Location:      a.Location,
		MeetingLink:   a.MeetingLink,
	}
}

func fromSchedule(schedule *groupAvailabilities.Response) []DayGroup {
	days := make([]DayGroup, 0, len(schedule.DateKeys))
	for _, key := range schedule.DateKeys {
		slots := schedule.Groups[key]

		group := DayGroup{
			DateKey: key,
			Slots:   make([]SlotView, 0, len(slots)),
		}
		if len(slots) > 0 {
			group.DateLabel = slots[0].DateLabel
		}
		for i := range slots {
			group.Slots = append(group.Slots, *fromDisplaySlot(&slots[i]))
		}

		days = append(days, group)
	}
	return days
}

func fromDisplaySlot(slot *groupAvailabilities.DisplaySlot) *SlotView {
	return &SlotView{
		AvailabilityID:     slot.AvailabilityID,
		Time:               slot.Time.String(),
		Available:          slot.Available,
		ProfessorName:      slot.ProfessorName,
		ProgramName:        slot.ProgramName,
		AcademicPeriodName: slot.AcademicPeriodName,
		Mode:               string(slot.Mode),
		Location:           slot.Location,
	}
}

func fromSnapshot(snap selection.Snapshot) *SelectionView {
	view := &SelectionView{
		State:        string(snap.State),
		ConfirmOpen:  snap.ConfirmOpen,
		Submitting:   snap.Submitting,
		NeedsRefresh: snap.NeedsRefresh,
	}
	if snap.SelectedSlot != nil {
		view.SelectedSlot = fromDisplaySlot(snap.SelectedSlot)
	}
	if snap.Result != nil {
		view.Result = &Result{Kind: string(snap.Result.Kind), Text: snap.Result.Text}
	}
	return view
}
