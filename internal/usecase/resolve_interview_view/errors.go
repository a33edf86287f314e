package resolve_interview_view

import "errors"

var (
	// ErrUnauthorized возвращается при невалидном или истекшем токене
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
