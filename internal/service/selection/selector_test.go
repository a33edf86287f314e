package selection

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ADM-InterviewPortal/internal/domain"
	bookInterview "github.com/m04kA/ADM-InterviewPortal/internal/usecase/book_interview"
	groupAvailabilities "github.com/m04kA/ADM-InterviewPortal/internal/usecase/group_availabilities"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// fakeBookUC считает вызовы и отдаёт заранее заданный ответ.
// Канал release позволяет удерживать запрос "в полёте".
type fakeBookUC struct {
	calls   atomic.Int64
	resp    *bookInterview.Response
	err     error
	release chan struct{}
}

func (f *fakeBookUC) Execute(_ context.Context, _ *bookInterview.Request) (*bookInterview.Response, error) {
	f.calls.Add(1)
	if f.release != nil {
		<-f.release
	}
	return f.resp, f.err
}

func availableSlot(id int64) *groupAvailabilities.DisplaySlot {
	return &groupAvailabilities.DisplaySlot{
		AvailabilityID: id,
		Available:      true,
		Capacity:       1,
	}
}

func unavailableSlot(id int64) *groupAvailabilities.DisplaySlot {
	return &groupAvailabilities.DisplaySlot{
		AvailabilityID: id,
		Available:      false,
	}
}

func successResponse() *bookInterview.Response {
	return &bookInterview.Response{Status: "success", Message: "запись создана"}
}

func auth() domain.AuthContext {
	return domain.AuthContext{Token: "token", UserID: 42}
}

func TestSelect_IgnoresUnavailableSlot(t *testing.T) {
	sel := NewSelector(&fakeBookUC{}, nil, nopLogger{})

	assert.False(t, sel.Select(unavailableSlot(1)))

	snap := sel.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.Nil(t, snap.SelectedSlot)
}

func TestSelect_ReplacesSelectionAndClearsResult(t *testing.T) {
	uc := &fakeBookUC{resp: &bookInterview.Response{Status: "error", Message: "слот занят"}}
	sel := NewSelector(uc, nil, nopLogger{})

	require.True(t, sel.Select(availableSlot(1)))
	require.True(t, sel.OpenConfirm())
	_, err := sel.Confirm(context.Background(), auth())
	require.NoError(t, err)
	require.NotNil(t, sel.Snapshot().Result)

	require.True(t, sel.Select(availableSlot(2)))

	snap := sel.Snapshot()
	assert.Equal(t, StateSelected, snap.State)
	assert.Equal(t, int64(2), snap.SelectedSlot.AvailabilityID)
	assert.Nil(t, snap.Result)
}

func TestConfirm_RequiresOpenDialog(t *testing.T) {
	sel := NewSelector(&fakeBookUC{resp: successResponse()}, nil, nopLogger{})

	_, err := sel.Confirm(context.Background(), auth())
	assert.ErrorIs(t, err, ErrNoSlotSelected)

	require.True(t, sel.Select(availableSlot(1)))
	_, err = sel.Confirm(context.Background(), auth())
	assert.ErrorIs(t, err, ErrConfirmNotRequested)
}

func TestCloseConfirm_KeepsSelection(t *testing.T) {
	sel := NewSelector(&fakeBookUC{}, nil, nopLogger{})

	require.True(t, sel.Select(availableSlot(1)))
	require.True(t, sel.OpenConfirm())
	require.True(t, sel.CloseConfirm())

	snap := sel.Snapshot()
	assert.Equal(t, StateSelected, snap.State)
	assert.Equal(t, int64(1), snap.SelectedSlot.AvailabilityID)
	assert.False(t, snap.ConfirmOpen)
}

func TestConfirm_Success(t *testing.T) {
	refreshed := false
	uc := &fakeBookUC{resp: successResponse()}
	sel := NewSelector(uc, func() { refreshed = true }, nopLogger{})

	require.True(t, sel.Select(availableSlot(1)))
	require.True(t, sel.OpenConfirm())

	result, err := sel.Confirm(context.Background(), auth())
	require.NoError(t, err)
	assert.Equal(t, ResultSuccess, result.Kind)
	assert.Equal(t, "запись создана", result.Text)
	assert.True(t, refreshed)

	snap := sel.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.Nil(t, snap.SelectedSlot)
	assert.True(t, snap.NeedsRefresh)

	// Флаг одноразовый: повторное чтение уже без него
	assert.False(t, sel.Snapshot().NeedsRefresh)
}

func TestConfirm_BusinessRejectionKeepsSelection(t *testing.T) {
	uc := &fakeBookUC{resp: &bookInterview.Response{Status: "error", Message: "слот уже занят другим абитуриентом"}}
	sel := NewSelector(uc, nil, nopLogger{})

	require.True(t, sel.Select(availableSlot(1)))
	require.True(t, sel.OpenConfirm())

	result, err := sel.Confirm(context.Background(), auth())
	require.NoError(t, err)
	assert.Equal(t, ResultError, result.Kind)
	assert.Equal(t, "слот уже занят другим абитуриентом", result.Text)

	snap := sel.Snapshot()
	assert.Equal(t, StateSelected, snap.State)
	assert.Equal(t, int64(1), snap.SelectedSlot.AvailabilityID)
	assert.False(t, snap.NeedsRefresh)
}

// Пока первый Confirm в полёте, второй отваливается с ErrSubmissionInFlight
// и сетевой вызов уходит ровно один раз
func TestConfirm_SecondAttemptWhileInFlight(t *testing.T) {
	uc := &fakeBookUC{resp: successResponse(), release: make(chan struct{})}
	sel := NewSelector(uc, nil, nopLogger{})

	require.True(t, sel.Select(availableSlot(1)))
	require.True(t, sel.OpenConfirm())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := sel.Confirm(context.Background(), auth())
		assert.NoError(t, err)
	}()

	// Дожидаемся, пока первый запрос реально уйдёт в полёт
	require.Eventually(t, func() bool {
		return sel.Snapshot().Submitting
	}, time.Second, 5*time.Millisecond)

	_, err := sel.Confirm(context.Background(), auth())
	assert.ErrorIs(t, err, ErrSubmissionInFlight)

	assert.ErrorIs(t, sel.Clear(), ErrSubmissionInFlight)

	close(uc.release)
	wg.Wait()

	assert.Equal(t, int64(1), uc.calls.Load())
	assert.Equal(t, StateIdle, sel.Snapshot().State)
}

func TestSelect_IgnoredWhileSubmitting(t *testing.T) {
	uc := &fakeBookUC{resp: successResponse(), release: make(chan struct{})}
	sel := NewSelector(uc, nil, nopLogger{})

	require.True(t, sel.Select(availableSlot(1)))
	require.True(t, sel.OpenConfirm())

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _ = sel.Confirm(context.Background(), auth())
	}()

	require.Eventually(t, func() bool {
		return sel.Snapshot().Submitting
	}, time.Second, 5*time.Millisecond)

	assert.False(t, sel.Select(availableSlot(2)))

	close(uc.release)
	wg.Wait()
}

func TestClear_ResetsSelectionAndResult(t *testing.T) {
	uc := &fakeBookUC{resp: &bookInterview.Response{Status: "error", Message: "отказ"}}
	sel := NewSelector(uc, nil, nopLogger{})

	require.True(t, sel.Select(availableSlot(1)))
	require.True(t, sel.OpenConfirm())
	_, err := sel.Confirm(context.Background(), auth())
	require.NoError(t, err)

	require.NoError(t, sel.Clear())

	snap := sel.Snapshot()
	assert.Equal(t, StateIdle, snap.State)
	assert.Nil(t, snap.SelectedSlot)
	assert.Nil(t, snap.Result)
}

func TestRegistry_PerSessionIsolation(t *testing.T) {
	reg := NewRegistry(&fakeBookUC{}, nopLogger{})

	first := reg.Get("session-a")
	second := reg.Get("session-b")
	require.NotSame(t, first, second)

	require.True(t, first.Select(availableSlot(1)))
	assert.Nil(t, second.Snapshot().SelectedSlot)

	// Повторный Get той же сессии возвращает тот же селектор
	assert.Same(t, first, reg.Get("session-a"))

	reg.Remove("session-a")
	assert.NotSame(t, first, reg.Get("session-a"))
}
