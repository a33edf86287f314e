package domain

// AuthContext carries the applicant's session identity through the portal.
// Токен выдаётся admission API при логине и передаётся дальше как opaque строка;
// все компоненты получают его явно, глобального состояния сессии нет.
type AuthContext struct {
	Token  string
	UserID int64
	Roles  []string
}

// HasToken returns true if the context carries a non-empty bearer token
func (c AuthContext) HasToken() bool {
	return c.Token != ""
}

// HasRole проверяет наличие роли у пользователя
func (c AuthContext) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}
