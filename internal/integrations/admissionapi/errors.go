package admissionapi

import "errors"

var (
	// ErrUnauthorized возвращается при невалидном или истекшем токене (401)
	ErrUnauthorized = errors.New("admission api: unauthorized")

	// ErrInvalidCredentials возвращается при неверной паре email/пароль
	ErrInvalidCredentials = errors.New("admission api: invalid credentials")

	// ErrNotFound возвращается, когда ресурс не найден (404)
	ErrNotFound = errors.New("admission api: resource not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("admission api client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("admission api client: invalid response")
)
