package admissionapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// loginRequest тело запроса на логин
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login выполняет вход и возвращает bearer-токен с данными пользователя
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/login", "", loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusUnprocessableEntity:
		return nil, ErrInvalidCredentials
	default:
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var payload loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if payload.Token == "" {
		return nil, fmt.Errorf("%w: login response without token", ErrInvalidResponse)
	}

	c.log.Info("Login: user id=%d authenticated", payload.User.ID)

	return &LoginResult{
		Token:    payload.Token,
		UserID:   payload.User.ID,
		UserName: payload.User.Name,
		Email:    payload.User.Email,
		Roles:    payload.Roles,
		Message:  payload.Message,
	}, nil
}

// Logout инвалидирует токен на стороне admission API
// Ошибка не критична: локальная сессия очищается в любом случае
func (c *Client) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := c.doJSON(ctx, http.MethodPost, "/logout", token, nil, nil); err != nil {
		c.log.Warn("Logout: failed to invalidate token upstream: %v", err)
		return err
	}

	return nil
}
