package group_availabilities

import (
	"time"

	"github.com/m04kA/ADM-InterviewPortal/internal/domain"
	"github.com/m04kA/ADM-InterviewPortal/pkg/types"
)

// Request модель запроса на группировку доступностей
type Request struct {
	Availabilities []domain.InterviewAvailability
}

// DisplaySlot display-ready представление одной доступности.
// Пересчитывается из списка доступностей при каждом запросе, нигде не хранится.
type DisplaySlot struct {
	AvailabilityID     int64
	DateKey            string           // YYYY-MM-DD, ключ группы
	DateLabel          string           // Человекочитаемая дата для UI
	Time               types.TimeString // HH:MM начала
	StartAt            time.Time
	EndAt              time.Time
	Available          bool // capacity > 0
	Capacity           int
	ProfessorName      string
	ProgramName        string
	AcademicPeriodName string
	Mode               domain.InterviewMode
	Location           string
	MeetingLink        string
}

// Response модель ответа с группировкой по дням
// DateKeys отсортированы по возрастанию: лексикографический порядок
// ключей YYYY-MM-DD совпадает с хронологическим
type Response struct {
	DateKeys []string
	Groups   map[string][]DisplaySlot
	Total    int
}

// IsEmpty returns true if there are no slots to display
func (r *Response) IsEmpty() bool {
	return r.Total == 0
}

// FindByAvailabilityID ищет display-слот по идентификатору доступности
func (r *Response) FindByAvailabilityID(id int64) *DisplaySlot {
	for _, key := range r.DateKeys {
		for i := range r.Groups[key] {
			if r.Groups[key][i].AvailabilityID == id {
				return &r.Groups[key][i]
			}
		}
	}
	return nil
}
