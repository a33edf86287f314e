package get_applicant_documents

import (
	"context"

	"github.com/m04kA/ADM-InterviewPortal/internal/domain"
)

// DocumentClient интерфейс получения документов абитуриента
type DocumentClient interface {
	GetApplicantDocuments(ctx context.Context, token string) ([]domain.ApplicantDocument, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
