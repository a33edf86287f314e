package get_interview_schedule

import (
	"context"

	"github.com/m04kA/ADM-InterviewPortal/internal/service/selection"
	resolveInterviewView "github.com/m04kA/ADM-InterviewPortal/internal/usecase/resolve_interview_view"
)

// ResolveInterviewViewUseCase интерфейс use case выбора ветки страницы
type ResolveInterviewViewUseCase interface {
	Execute(ctx context.Context, req *resolveInterviewView.Request) (*resolveInterviewView.Response, error)
}

// SelectorRegistry реестр селекторов по сессиям
type SelectorRegistry interface {
	Get(sessionID string) *selection.Selector
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
