package session

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/m04kA/ADM-InterviewPortal/internal/domain"
)

// Ключи значений внутри cookie-сессии
const (
	keySessionID = "session_id"
	keyToken     = "token"
	keyUserID    = "user_id"
	keyUserName  = "user_name"
	keyRoles     = "roles"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Manager cookie-сессии портала.
// Хранит bearer-токен admission API и личность пользователя между запросами;
// токен дальше передаётся компонентам явно через domain.AuthContext.
type Manager struct {
	store      *sessions.CookieStore
	cookieName string
	log        Logger
}

// NewManager создает менеджер сессий поверх gorilla CookieStore
func NewManager(secret, cookieName string, maxAge int, secure bool, log Logger) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{
		store:      store,
		cookieName: cookieName,
		log:        log,
	}
}

// Establish создает сессию после успешного логина
// Возвращает идентификатор сессии — по нему реестр селекторов держит состояние
func (m *Manager) Establish(w http.ResponseWriter, r *http.Request, auth domain.AuthContext, userName string) (string, error) {
	sess, err := m.store.Get(r, m.cookieName)
	if err != nil {
		// Битая cookie: Get возвращает новую пустую сессию, ошибку только логируем
		m.log.Warn("Session: recreating session after decode error: %v", err)
	}

	sessionID := uuid.NewString()

	sess.Values[keySessionID] = sessionID
	sess.Values[keyToken] = auth.Token
	sess.Values[keyUserID] = auth.UserID
	sess.Values[keyUserName] = userName
	sess.Values[keyRoles] = strings.Join(auth.Roles, ",")

	if err := sess.Save(r, w); err != nil {
		return "", fmt.Errorf("%w: failed to save session: %v", ErrInternal, err)
	}

	m.log.Info("Session: established for user_id=%d, session_id=%s", auth.UserID, sessionID)
	return sessionID, nil
}

// Auth восстанавливает AuthContext из cookie-сессии запроса
func (m *Manager) Auth(r *http.Request) (domain.AuthContext, string, error) {
	sess, err := m.store.Get(r, m.cookieName)
	if err != nil {
		return domain.AuthContext{}, "", ErrNoSession
	}

	token, _ := sess.Values[keyToken].(string)
	if token == "" {
		return domain.AuthContext{}, "", ErrNoSession
	}

	sessionID, _ := sess.Values[keySessionID].(string)
	userID, _ := sess.Values[keyUserID].(int64)

	var roles []string
	if raw, _ := sess.Values[keyRoles].(string); raw != "" {
		roles = strings.Split(raw, ",")
	}

	return domain.AuthContext{
		Token:  token,
		UserID: userID,
		Roles:  roles,
	}, sessionID, nil
}

// Clear уничтожает сессию (logout)
// Возвращает идентификатор удаляемой сессии для очистки реестра селекторов
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) (string, error) {
	sess, err := m.store.Get(r, m.cookieName)
	if err != nil {
		return "", nil
	}

	sessionID, _ := sess.Values[keySessionID].(string)

	sess.Options.MaxAge = -1
	for key := range sess.Values {
		delete(sess.Values, key)
	}

	if err := sess.Save(r, w); err != nil {
		return sessionID, fmt.Errorf("%w: failed to clear session: %v", ErrInternal, err)
	}

	return sessionID, nil
}
