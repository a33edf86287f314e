package get_program_documents

import (
	"context"

	"github.com/m04kA/ADM-InterviewPortal/internal/domain"
)

// CatalogClient интерфейс получения документов программы
type CatalogClient interface {
	GetProgramDocuments(ctx context.Context, token string, programID int64) ([]domain.ProgramDocument, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
