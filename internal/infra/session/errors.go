package session

import "errors"

var (
	// ErrNoSession возвращается, когда у запроса нет активной сессии портала
	ErrNoSession = errors.New("no active portal session")

	// ErrInternal возвращается при внутренних ошибках хранилища сессий
	ErrInternal = errors.New("session store: internal error")
)
