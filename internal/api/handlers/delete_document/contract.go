package delete_document

import (
	"context"
)

// DocumentClient интерфейс удаления документа абитуриента
type DocumentClient interface {
	DeleteDocument(ctx context.Context, token string, documentID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
