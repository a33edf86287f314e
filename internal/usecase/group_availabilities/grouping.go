package group_availabilities

import (
	"sort"

	"github.com/m04kA/ADM-InterviewPortal/internal/domain"
	"github.com/m04kA/ADM-InterviewPortal/pkg/types"
)

// dateLabelLayout человекочитаемый формат дня для UI
const dateLabelLayout = "Monday, 02 January 2006"

// toDisplaySlot преобразует доступность в display-слот
func toDisplaySlot(a *domain.InterviewAvailability) DisplaySlot {
	startLocal := a.StartAt.Local()

	return DisplaySlot{
		AvailabilityID:     a.ID,
		DateKey:            a.DateKey(),
		DateLabel:          startLocal.Format(dateLabelLayout),
		Time:               types.NewTimeString(a.StartAt),
		StartAt:            a.StartAt,
		EndAt:              a.EndAt,
		Available:          a.IsAvailable(),
		Capacity:           a.Capacity,
		ProfessorName:      a.ProfessorName,
		ProgramName:        a.ProgramName,
		AcademicPeriodName: a.AcademicPeriodName,
		Mode:               a.Mode,
		Location:           a.Location,
		MeetingLink:        a.MeetingLink,
	}
}

// groupByDate раскладывает слоты по ключу календарного дня
// Каждый слот попадает ровно в одну группу
func groupByDate(slots []DisplaySlot) map[string][]DisplaySlot {
	groups := make(map[string][]DisplaySlot)
	for _, slot := range slots {
		groups[slot.DateKey] = append(groups[slot.DateKey], slot)
	}
	return groups
}

// sortSlotsByStart сортирует слоты внутри дня по времени начала
// Стабильная сортировка сохраняет порядок backend для слотов с одинаковым временем
func sortSlotsByStart(slots []DisplaySlot) {
	sort.SliceStable(slots, func(i, j int) bool {
		return slots[i].StartAt.Before(slots[j].StartAt)
	})
}
