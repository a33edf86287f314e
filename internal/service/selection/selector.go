package selection

import (
	"context"
	"sync"

	"github.com/m04kA/ADM-InterviewPortal/internal/domain"
	bookInterview "github.com/m04kA/ADM-InterviewPortal/internal/usecase/book_interview"
	groupAvailabilities "github.com/m04kA/ADM-InterviewPortal/internal/usecase/group_availabilities"
)

// Selector машина состояний выбора слота одной сессии.
// Переходы: Idle → Selected → ConfirmPending → Submitting → Idle/Selected.
// Все переходы выполняются под мьютексом; в полёте может быть не больше
// одного запроса бронирования на селектор.
type Selector struct {
	mu sync.Mutex

	state        State
	selected     *groupAvailabilities.DisplaySlot
	result       *Result
	needsRefresh bool

	bookUC    BookInterviewUseCase
	onSuccess func() // Хук обновления данных после успешного бронирования
	logger    Logger
}

// NewSelector создает селектор в состоянии Idle
func NewSelector(bookUC BookInterviewUseCase, onSuccess func(), logger Logger) *Selector {
	return &Selector{
		state:     StateIdle,
		bookUC:    bookUC,
		onSuccess: onSuccess,
		logger:    logger,
	}
}

// Select выбирает слот. Недоступный слот (capacity=0) игнорируется без ошибки —
// состояние не меняется. Выбор при уже выбранном слоте просто заменяет выбор
// и сбрасывает прежнее итоговое сообщение.
// Возвращает true, если выбор изменился.
func (s *Selector) Select(slot *groupAvailabilities.DisplaySlot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateSubmitting {
		return false
	}

	if slot == nil || !slot.Available {
		s.logger.Info("Selection: ignoring unavailable slot")
		return false
	}

	s.selected = slot
	s.state = StateSelected
	s.result = nil

	s.logger.Info("Selection: slot availability_id=%d selected", slot.AvailabilityID)
	return true
}

// OpenConfirm открывает диалог подтверждения: Selected → ConfirmPending
// No-op без выбранного слота
func (s *Selector) OpenConfirm() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateSelected || s.selected == nil {
		return false
	}

	s.state = StateConfirmPending
	return true
}

// CloseConfirm закрывает диалог без подтверждения: ConfirmPending → Selected
func (s *Selector) CloseConfirm() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateConfirmPending {
		return false
	}

	s.state = StateSelected
	return true
}

// Confirm подтверждает бронирование: ConfirmPending → Submitting → Idle/Selected.
// Пока запрос в полёте, повторный Confirm немедленно возвращает
// ErrSubmissionInFlight — второй сетевой вызов не выполняется.
// При отказе выбранный слот сохраняется для повторной попытки.
func (s *Selector) Confirm(ctx context.Context, auth domain.AuthContext) (*Result, error) {
	s.mu.Lock()

	if s.state == StateSubmitting {
		s.mu.Unlock()
		s.logger.Warn("Selection: confirm rejected, submission already in flight")
		return nil, ErrSubmissionInFlight
	}
	if s.selected == nil {
		s.mu.Unlock()
		return nil, ErrNoSlotSelected
	}
	if s.state != StateConfirmPending {
		s.mu.Unlock()
		return nil, ErrConfirmNotRequested
	}

	slot := s.selected
	s.state = StateSubmitting
	s.result = nil
	s.mu.Unlock()

	// Сетевой вызов без удержания мьютекса: Snapshot и отказ повторного
	// Confirm должны работать, пока запрос в полёте
	resp, err := s.bookUC.Execute(ctx, &bookInterview.Request{
		Auth:           auth,
		AvailabilityID: slot.AvailabilityID,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		// Локальный отказ валидации: слот остаётся выбранным
		s.state = StateSelected
		s.result = &Result{Kind: ResultError, Text: err.Error()}
		return s.result, nil
	}

	if resp.IsSuccess() {
		// Успех: ёмкость слота на backend изменилась, локальный список
		// доступностей больше не достоверен — UI обязан перезапросить данные
		s.state = StateIdle
		s.selected = nil
		s.result = &Result{Kind: ResultSuccess, Text: resp.Message}
		s.needsRefresh = true

		if s.onSuccess != nil {
			s.onSuccess()
		}
		return s.result, nil
	}

	// Бизнес-отказ backend: сообщение дословно, выбор сохранён для повтора
	s.state = StateSelected
	s.result = &Result{Kind: ResultError, Text: resp.Message}
	return s.result, nil
}

// Clear сбрасывает выбор и итоговое сообщение из любого состояния,
// кроме Submitting
func (s *Selector) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateSubmitting {
		return ErrSubmissionInFlight
	}

	s.state = StateIdle
	s.selected = nil
	s.result = nil
	return nil
}

// Snapshot возвращает согласованный снимок состояния для UI
// Флаг NeedsRefresh одноразовый: сбрасывается при чтении
func (s *Selector) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		State:        s.state,
		SelectedSlot: s.selected,
		ConfirmOpen:  s.state == StateConfirmPending,
		Submitting:   s.state == StateSubmitting,
		Result:       s.result,
		NeedsRefresh: s.needsRefresh,
	}
	s.needsRefresh = false
	return snap
}
