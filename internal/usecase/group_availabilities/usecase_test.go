package group_availabilities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ADM-InterviewPortal/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func availability(id int64, startAt time.Time, capacity int) domain.InterviewAvailability {
	return domain.InterviewAvailability{
		ID:                 id,
		StartAt:            startAt,
		EndAt:              startAt.Add(30 * time.Minute),
		ProfessorName:      "Dr. Ramirez",
		ProgramName:        "MBA",
		AcademicPeriodName: "2026-I",
		Capacity:           capacity,
		Mode:               domain.ModeVirtual,
	}
}

func TestExecute_EmptyInput(t *testing.T) {
	uc := NewUseCase(nopLogger{})

	resp := uc.Execute(&Request{})

	assert.True(t, resp.IsEmpty())
	assert.Empty(t, resp.DateKeys)
	assert.Empty(t, resp.Groups)
}

func TestExecute_GroupsByCalendarDay(t *testing.T) {
	uc := NewUseCase(nopLogger{})

	day1 := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	day2 := time.Date(2026, 3, 11, 10, 0, 0, 0, time.Local)

	resp := uc.Execute(&Request{Availabilities: []domain.InterviewAvailability{
		availability(1, day1, 1),
		availability(2, day2, 1),
		availability(3, day1.Add(time.Hour), 1),
	}})

	require.Equal(t, []string{"2026-03-10", "2026-03-11"}, resp.DateKeys)
	assert.Len(t, resp.Groups["2026-03-10"], 2)
	assert.Len(t, resp.Groups["2026-03-11"], 1)
	assert.Equal(t, 3, resp.Total)
}

// Каждая доступность попадает ровно в один display-слот: сумма размеров групп
// равна размеру входа, capacity=0 не фильтруется
func TestExecute_PartitionWithoutFiltering(t *testing.T) {
	uc := NewUseCase(nopLogger{})

	day := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	resp := uc.Execute(&Request{Availabilities: []domain.InterviewAvailability{
		availability(1, day, 2),
		availability(2, day.Add(time.Hour), 0),
		availability(3, day.Add(2*time.Hour), 1),
	}})

	total := 0
	for _, key := range resp.DateKeys {
		total += len(resp.Groups[key])
	}
	require.Equal(t, 3, total)

	full := resp.FindByAvailabilityID(2)
	require.NotNil(t, full)
	assert.False(t, full.Available)
	assert.Equal(t, 0, full.Capacity)
}

func TestExecute_SortsSlotsWithinDayByStartTime(t *testing.T) {
	uc := NewUseCase(nopLogger{})

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)
	resp := uc.Execute(&Request{Availabilities: []domain.InterviewAvailability{
		availability(1, day.Add(15*time.Hour), 1),
		availability(2, day.Add(9*time.Hour), 1),
		availability(3, day.Add(12*time.Hour), 1),
	}})

	slots := resp.Groups["2026-03-10"]
	require.Len(t, slots, 3)
	assert.Equal(t, "09:00", slots[0].Time.String())
	assert.Equal(t, "12:00", slots[1].Time.String())
	assert.Equal(t, "15:00", slots[2].Time.String())
}

func TestExecute_DateKeysChronological(t *testing.T) {
	uc := NewUseCase(nopLogger{})

	resp := uc.Execute(&Request{Availabilities: []domain.InterviewAvailability{
		availability(1, time.Date(2026, 4, 2, 9, 0, 0, 0, time.Local), 1),
		availability(2, time.Date(2026, 3, 28, 9, 0, 0, 0, time.Local), 1),
		availability(3, time.Date(2026, 4, 1, 9, 0, 0, 0, time.Local), 1),
	}})

	assert.Equal(t, []string{"2026-03-28", "2026-04-01", "2026-04-02"}, resp.DateKeys)
}

func TestExecute_DisplaySlotCarriesUIFields(t *testing.T) {
	uc := NewUseCase(nopLogger{})

	start := time.Date(2026, 3, 10, 14, 30, 0, 0, time.Local)
	a := availability(7, start, 1)
	a.Location = "Room 204"

	resp := uc.Execute(&Request{Availabilities: []domain.InterviewAvailability{a}})

	slot := resp.FindByAvailabilityID(7)
	require.NotNil(t, slot)
	assert.Equal(t, "2026-03-10", slot.DateKey)
	assert.Equal(t, "Tuesday, 10 March 2026", slot.DateLabel)
	assert.Equal(t, "14:30", slot.Time.String())
	assert.Equal(t, "Dr. Ramirez", slot.ProfessorName)
	assert.Equal(t, "Room 204", slot.Location)
	assert.True(t, slot.Available)
}

func TestFindByAvailabilityID_NotFound(t *testing.T) {
	uc := NewUseCase(nopLogger{})

	resp := uc.Execute(&Request{Availabilities: []domain.InterviewAvailability{
		availability(1, time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local), 1),
	}})

	assert.Nil(t, resp.FindByAvailabilityID(99))
}
