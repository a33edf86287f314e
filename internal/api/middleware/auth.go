package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/ADM-InterviewPortal/internal/api/handlers"
	"github.com/m04kA/ADM-InterviewPortal/internal/domain"
)

type contextKey string

const (
	ctxKeyAuth      contextKey = "auth"
	ctxKeySessionID contextKey = "session_id"
)

// SessionSource источник аутентификации запроса
type SessionSource interface {
	Auth(r *http.Request) (domain.AuthContext, string, error)
}

// Auth middleware аутентификации: восстанавливает AuthContext из cookie-сессии
// и кладет его в контекст запроса. Запросы без сессии получают 401.
func Auth(source SessionSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth, sessionID, err := source.Auth(r)
			if err != nil {
				handlers.RespondUnauthorized(w, "требуется вход в систему")
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyAuth, auth)
			ctx = context.WithValue(ctx, ctxKeySessionID, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AuthFrom извлекает AuthContext из контекста запроса
func AuthFrom(ctx context.Context) (domain.AuthContext, bool) {
	auth, ok := ctx.Value(ctxKeyAuth).(domain.AuthContext)
	return auth, ok
}

// SessionIDFrom извлекает идентификатор сессии из контекста запроса
func SessionIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKeySessionID).(string)
	return id, ok
}
