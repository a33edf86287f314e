package selection

import "errors"

var (
	// ErrSubmissionInFlight возвращается на любое действие, пока бронирование
	// уже выполняется: второй confirm не порождает второй сетевой запрос
	ErrSubmissionInFlight = errors.New("booking request already in progress")

	// ErrNoSlotSelected возвращается при подтверждении без выбранного слота
	ErrNoSlotSelected = errors.New("no slot selected")

	// ErrConfirmNotRequested возвращается, когда confirm вызван без открытого
	// диалога подтверждения
	ErrConfirmNotRequested = errors.New("confirmation dialog is not open")
)
