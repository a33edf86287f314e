package get_document_types

import (
	"context"

	"github.com/m04kA/ADM-InterviewPortal/internal/domain"
)

// CatalogClient интерфейс справочника типов документов
type CatalogClient interface {
	GetDocumentTypesWithGracefulDegradation(ctx context.Context) []domain.DocumentType
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}
