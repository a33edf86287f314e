package selection

import (
	groupAvailabilities "github.com/m04kA/ADM-InterviewPortal/internal/usecase/group_availabilities"
)

// State состояние машины выбора слота
type State string

const (
	// StateIdle слот не выбран
	StateIdle State = "idle"
	// StateSelected слот выбран, диалог подтверждения закрыт
	StateSelected State = "selected"
	// StateConfirmPending открыт диалог подтверждения
	StateConfirmPending State = "confirm_pending"
	// StateSubmitting запрос бронирования в полёте
	StateSubmitting State = "submitting"
)

// ResultKind тип итогового сообщения
type ResultKind string

const (
	ResultSuccess ResultKind = "success"
	ResultError   ResultKind = "error"
)

// Result итоговое сообщение последней попытки бронирования
type Result struct {
	Kind ResultKind
	Text string
}

// Snapshot согласованный снимок состояния селектора для отдачи в UI
type Snapshot struct {
	State         State
	SelectedSlot  *groupAvailabilities.DisplaySlot
	ConfirmOpen   bool
	Submitting    bool
	Result        *Result
	NeedsRefresh  bool // true после успеха: UI должен перезапросить расписание
}
