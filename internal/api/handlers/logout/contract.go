package logout

import (
	"context"
	"net/http"

	"github.com/m04kA/ADM-InterviewPortal/internal/domain"
)

// AuthClient интерфейс инвалидации токена в admission API
type AuthClient interface {
	Logout(ctx context.Context, token string) error
}

// SessionManager интерфейс очистки cookie-сессии
type SessionManager interface {
	Auth(r *http.Request) (domain.AuthContext, string, error)
	Clear(w http.ResponseWriter, r *http.Request) (string, error)
}

// SelectorRegistry реестр селекторов по сессиям
type SelectorRegistry interface {
	Remove(sessionID string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
