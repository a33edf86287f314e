package get_program

import (
	"context"

	"github.com/m04kA/ADM-InterviewPortal/internal/domain"
)

// CatalogClient интерфейс получения программы из admission API
type CatalogClient interface {
	GetProgramByUUID(ctx context.Context, uuid string) (*domain.Program, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
