package get_active_period

import (
	"context"

	"github.com/m04kA/ADM-InterviewPortal/internal/domain"
)

// CatalogClient интерфейс получения активного периода приёма
type CatalogClient interface {
	GetActivePeriod(ctx context.Context) (*domain.AcademicPeriod, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
