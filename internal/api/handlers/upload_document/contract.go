package upload_document

import (
	"context"
	"io"

	"github.com/m04kA/ADM-InterviewPortal/internal/integrations/admissionapi"
)

// DocumentClient интерфейс загрузки документов в admission API
type DocumentClient interface {
	UploadDocument(ctx context.Context, token, documentName, fileName string, file io.Reader) (*admissionapi.UploadResult, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
