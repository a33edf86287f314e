package confirm_dialog

import (
	"github.com/m04kA/ADM-InterviewPortal/internal/service/selection"
)

// SelectorRegistry реестр селекторов по сессиям
type SelectorRegistry interface {
	Get(sessionID string) *selection.Selector
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
