package submit_application

import (
	"context"

	"github.com/m04kA/ADM-InterviewPortal/internal/integrations/admissionapi"
)

// ApplicationClient интерфейс подачи заявки в admission API
type ApplicationClient interface {
	SubmitApplication(ctx context.Context, application *admissionapi.ApplicationRequest) (*admissionapi.ApplicationResult, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
