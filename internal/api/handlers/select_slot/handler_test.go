package select_slot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ADM-InterviewPortal/internal/api/middleware"
	"github.com/m04kA/ADM-InterviewPortal/internal/domain"
	"github.com/m04kA/ADM-InterviewPortal/internal/integrations/admissionapi"
	"github.com/m04kA/ADM-InterviewPortal/internal/service/selection"
	bookInterview "github.com/m04kA/ADM-InterviewPortal/internal/usecase/book_interview"
	groupAvailabilities "github.com/m04kA/ADM-InterviewPortal/internal/usecase/group_availabilities"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubSession struct{}

func (stubSession) Auth(*http.Request) (domain.AuthContext, string, error) {
	return domain.AuthContext{Token: "tok", UserID: 42}, "sess-1", nil
}

type deniedSession struct{}

func (deniedSession) Auth(*http.Request) (domain.AuthContext, string, error) {
	return domain.AuthContext{}, "", http.ErrNoCookie
}

type stubAvailabilities struct {
	avails []domain.InterviewAvailability
	err    error
}

func (s *stubAvailabilities) GetInterviewAvailabilities(context.Context, string) ([]domain.InterviewAvailability, error) {
	return s.avails, s.err
}

type stubBookUC struct{}

func (stubBookUC) Execute(context.Context, *bookInterview.Request) (*bookInterview.Response, error) {
	return &bookInterview.Response{Status: "success"}, nil
}

func newServer(avails *stubAvailabilities, registry *selection.Registry, source middleware.SessionSource) http.Handler {
	grouper := groupAvailabilities.NewUseCase(nopLogger{})
	h := NewHandler(avails, grouper, registry, nopLogger{})

	var protected http.Handler = http.HandlerFunc(h.Handle)
	return middleware.Auth(source)(protected)
}

func availability(id int64, capacity int) domain.InterviewAvailability {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	return domain.InterviewAvailability{
		ID:       id,
		StartAt:  start,
		EndAt:    start.Add(30 * time.Minute),
		Capacity: capacity,
	}
}

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/api/v1/interview/selection", strings.NewReader(body))
}

func TestHandle_SelectsAvailableSlot(t *testing.T) {
	registry := selection.NewRegistry(stubBookUC{}, nopLogger{})
	srv := newServer(&stubAvailabilities{avails: []domain.InterviewAvailability{availability(11, 1)}}, registry, stubSession{})

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, post(`{"availabilityId": 11}`))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp SelectSlotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Selected)
	assert.Equal(t, string(selection.StateSelected), resp.State)

	snap := registry.Get("sess-1").Snapshot()
	require.NotNil(t, snap.SelectedSlot)
	assert.Equal(t, int64(11), snap.SelectedSlot.AvailabilityID)
}

// Слот с нулевой ёмкостью остаётся в выдаче, но его выбор — no-op
func TestHandle_UnavailableSlotIsNoOp(t *testing.T) {
	registry := selection.NewRegistry(stubBookUC{}, nopLogger{})
	srv := newServer(&stubAvailabilities{avails: []domain.InterviewAvailability{availability(11, 0)}}, registry, stubSession{})

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, post(`{"availabilityId": 11}`))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp SelectSlotResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Selected)
	assert.Equal(t, string(selection.StateIdle), resp.State)
}

func TestHandle_UnknownAvailability(t *testing.T) {
	registry := selection.NewRegistry(stubBookUC{}, nopLogger{})
	srv := newServer(&stubAvailabilities{avails: []domain.InterviewAvailability{availability(11, 1)}}, registry, stubSession{})

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, post(`{"availabilityId": 99}`))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandle_UpstreamUnauthorized(t *testing.T) {
	registry := selection.NewRegistry(stubBookUC{}, nopLogger{})
	srv := newServer(&stubAvailabilities{err: admissionapi.ErrUnauthorized}, registry, stubSession{})

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, post(`{"availabilityId": 11}`))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandle_NoSession(t *testing.T) {
	registry := selection.NewRegistry(stubBookUC{}, nopLogger{})
	srv := newServer(&stubAvailabilities{}, registry, deniedSession{})

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, post(`{"availabilityId": 11}`))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	registry := selection.NewRegistry(stubBookUC{}, nopLogger{})
	srv := newServer(&stubAvailabilities{}, registry, stubSession{})

	w := httptest.NewRecorder()
	srv.ServeHTTP(w, post(`{"availabilityId": -3}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
