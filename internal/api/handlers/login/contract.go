package login

import (
	"context"
	"net/http"

	"github.com/m04kA/ADM-InterviewPortal/internal/domain"
	"github.com/m04kA/ADM-InterviewPortal/internal/integrations/admissionapi"
)

// AuthClient интерфейс логина в admission API
type AuthClient interface {
	Login(ctx context.Context, email, password string) (*admissionapi.LoginResult, error)
}

// SessionManager интерфейс установки cookie-сессии
type SessionManager interface {
	Establish(w http.ResponseWriter, r *http.Request, auth domain.AuthContext, userName string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
