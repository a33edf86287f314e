package group_availabilities

import (
	"sort"
)

// UseCase use case нормализации доступностей для отображения
// Чистое преобразование без побочных эффектов: безопасно вызывать
// на каждый запрос расписания
type UseCase struct {
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(logger Logger) *UseCase {
	return &UseCase{logger: logger}
}

// Execute группирует доступности по календарным дням.
// Каждая доступность отображается в ровно один DisplaySlot — без фильтрации
// и дедупликации; слоты с capacity=0 остаются в выдаче как недоступные.
func (uc *UseCase) Execute(req *Request) *Response {
	if len(req.Availabilities) == 0 {
		uc.logger.Info("GroupAvailabilities: empty input, nothing to group")
		return &Response{
			DateKeys: []string{},
			Groups:   map[string][]DisplaySlot{},
		}
	}

	// 1. Преобразуем 1:1 в display-слоты
	slots := make([]DisplaySlot, 0, len(req.Availabilities))
	for i := range req.Availabilities {
		slots = append(slots, toDisplaySlot(&req.Availabilities[i]))
	}

	// 2. Группируем по календарному дню start_at (локальное время)
	groups := groupByDate(slots)

	// 3. Сортируем ключи по возрастанию — хронологический порядок дней
	dateKeys := sortedDateKeys(groups)

	// 4. Внутри дня сортируем по времени начала
	// Backend порядок внутри дня не гарантирует, поэтому сортируем явно
	for _, key := range dateKeys {
		sortSlotsByStart(groups[key])
	}

	uc.logger.Info("GroupAvailabilities: grouped %d slots into %d days", len(slots), len(dateKeys))

	return &Response{
		DateKeys: dateKeys,
		Groups:   groups,
		Total:    len(slots),
	}
}

func sortedDateKeys(groups map[string][]DisplaySlot) []string {
	keys := make([]string, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
