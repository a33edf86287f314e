package selection

import (
	"context"

	bookInterview "github.com/m04kA/ADM-InterviewPortal/internal/usecase/book_interview"
)

// BookInterviewUseCase интерфейс use case бронирования
type BookInterviewUseCase interface {
	Execute(ctx context.Context, req *bookInterview.Request) (*bookInterview.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
