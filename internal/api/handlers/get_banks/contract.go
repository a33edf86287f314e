package get_banks

import (
	"context"

	"github.com/m04kA/ADM-InterviewPortal/internal/domain"
)

// CatalogClient интерфейс справочника банков
type CatalogClient interface {
	GetBanks(ctx context.Context) ([]domain.Bank, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
