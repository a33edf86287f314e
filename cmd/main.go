package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	clearSelectionHandler "github.com/m04kA/ADM-InterviewPortal/internal/api/handlers/clear_selection"
	confirmAppointmentHandler "github.com/m04kA/ADM-InterviewPortal/internal/api/handlers/confirm_appointment"
	confirmDialogHandler "github.com/m04kA/ADM-InterviewPortal/internal/api/handlers/confirm_dialog"
	deleteDocumentHandler "github.com/m04kA/ADM-InterviewPortal/internal/api/handlers/delete_document"
	getActivePeriodHandler "github.com/m04kA/ADM-InterviewPortal/internal/api/handlers/get_active_period"
	getApplicantDocumentsHandler "github.com/m04kA/ADM-InterviewPortal/internal/api/handlers/get_applicant_documents"
	getBanksHandler "github.com/m04kA/ADM-InterviewPortal/internal/api/handlers/get_banks"
	getDocumentTypesHandler "github.com/m04kA/ADM-InterviewPortal/internal/api/handlers/get_document_types"
	getInterviewScheduleHandler "github.com/m04kA/ADM-InterviewPortal/internal/api/handlers/get_interview_schedule"
	getProgramHandler "github.com/m04kA/ADM-InterviewPortal/internal/api/handlers/get_program"
	getProgramDocumentsHandler "github.com/m04kA/ADM-InterviewPortal/internal/api/handlers/get_program_documents"
	getUniversitiesHandler "github.com/m04kA/ADM-InterviewPortal/internal/api/handlers/get_universities"
	loginHandler "github.com/m04kA/ADM-InterviewPortal/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/ADM-InterviewPortal/internal/api/handlers/logout"
	selectSlotHandler "github.com/m04kA/ADM-InterviewPortal/internal/api/handlers/select_slot"
	submitApplicationHandler "github.com/m04kA/ADM-InterviewPortal/internal/api/handlers/submit_application"
	uploadDocumentHandler "github.com/m04kA/ADM-InterviewPortal/internal/api/handlers/upload_document"
	"github.com/m04kA/ADM-InterviewPortal/internal/api/middleware"
	"github.com/m04kA/ADM-InterviewPortal/internal/config"
	sessionManager "github.com/m04kA/ADM-InterviewPortal/internal/infra/session"
	admissionClient "github.com/m04kA/ADM-InterviewPortal/internal/integrations/admissionapi"
	selectionService "github.com/m04kA/ADM-InterviewPortal/internal/service/selection"
	bookInterviewUC "github.com/m04kA/ADM-InterviewPortal/internal/usecase/book_interview"
	groupAvailabilitiesUC "github.com/m04kA/ADM-InterviewPortal/internal/usecase/group_availabilities"
	resolveInterviewViewUC "github.com/m04kA/ADM-InterviewPortal/internal/usecase/resolve_interview_view"
	"github.com/m04kA/ADM-InterviewPortal/pkg/clientmetrics"
	"github.com/m04kA/ADM-InterviewPortal/pkg/logger"
	"github.com/m04kA/ADM-InterviewPortal/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting ADM-InterviewPortal...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Инициализируем клиента admission API
	admission := admissionClient.NewClient(
		cfg.AdmissionAPI.URL,
		time.Duration(cfg.AdmissionAPI.Timeout)*time.Second,
		log,
	)
	if cfg.Metrics.Enabled {
		admission.WithTransport(clientmetrics.Wrap(http.DefaultTransport, metricsCollector, "admission_api"))
		log.Info("Outbound request metrics collection enabled for admission API")
	}
	log.Info("Admission API client initialized (url=%s, timeout=%ds)",
		cfg.AdmissionAPI.URL, cfg.AdmissionAPI.Timeout)

	// Инициализируем cookie-сессии портала
	sessions := sessionManager.NewManager(
		cfg.Session.Secret,
		cfg.Session.CookieName,
		cfg.Session.MaxAge,
		cfg.Session.Secure,
		log,
	)

	// Инициализируем use cases
	groupAvailabilitiesUseCase := groupAvailabilitiesUC.NewUseCase(log)
	bookInterviewUseCase := bookInterviewUC.NewUseCase(admission, log)
	resolveInterviewViewUseCase := resolveInterviewViewUC.NewUseCase(admission, groupAvailabilitiesUseCase, log)

	// Реестр селекторов: состояние выбора слота на каждую сессию
	selectors := selectionService.NewRegistry(bookInterviewUseCase, log)

	// Инициализируем handlers
	login := loginHandler.NewHandler(admission, sessions, log)
	logout := logoutHandler.NewHandler(admission, sessions, selectors, log)
	submitApplication := submitApplicationHandler.NewHandler(admission, log)
	uploadDocument := uploadDocumentHandler.NewHandler(admission, log)
	getApplicantDocuments := getApplicantDocumentsHandler.NewHandler(admission, log)
	deleteDocument := deleteDocumentHandler.NewHandler(admission, log)
	getInterviewSchedule := getInterviewScheduleHandler.NewHandler(resolveInterviewViewUseCase, selectors, log)
	selectSlot := selectSlotHandler.NewHandler(admission, groupAvailabilitiesUseCase, selectors, log)
	clearSelection := clearSelectionHandler.NewHandler(selectors, log)
	confirmDialog := confirmDialogHandler.NewHandler(selectors, log)
	confirmAppointment := confirmAppointmentHandler.NewHandler(selectors, log)
	getProgram := getProgramHandler.NewHandler(admission, log)
	getProgramDocuments := getProgramDocumentsHandler.NewHandler(admission, log)
	getDocumentTypes := getDocumentTypesHandler.NewHandler(admission, log)
	getActivePeriod := getActivePeriodHandler.NewHandler(admission, log)
	getBanks := getBanksHandler.NewHandler(admission, log)
	getUniversities := getUniversitiesHandler.NewHandler(admission, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Вход и выход
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)

	// Подача заявки на поступление
	api.HandleFunc("/admission/apply", submitApplication.Handle).Methods(http.MethodPost)

	// Справочники для формы регистрации
	api.HandleFunc("/programs/{uuid}", getProgram.Handle).Methods(http.MethodGet)
	api.HandleFunc("/document-types", getDocumentTypes.Handle).Methods(http.MethodGet)
	api.HandleFunc("/period", getActivePeriod.Handle).Methods(http.MethodGet)
	api.HandleFunc("/banks", getBanks.Handle).Methods(http.MethodGet)
	api.HandleFunc("/universities", getUniversities.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют cookie-сессию)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(sessions))

	// --- Интервью ---
	// Страница записи на интервью: ветка + расписание + состояние выбора
	protected.HandleFunc("/interview/schedule", getInterviewSchedule.Handle).Methods(http.MethodGet)

	// Выбор и сброс слота
	protected.HandleFunc("/interview/selection", selectSlot.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/interview/selection", clearSelection.Handle).Methods(http.MethodDelete)

	// Диалог подтверждения
	protected.HandleFunc("/interview/selection/confirm", confirmDialog.HandleOpen).Methods(http.MethodPost)
	protected.HandleFunc("/interview/selection/confirm", confirmDialog.HandleClose).Methods(http.MethodDelete)

	// Подтверждение бронирования
	protected.HandleFunc("/interview/appointments", confirmAppointment.Handle).Methods(http.MethodPost)

	// --- Документы абитуриента ---
	protected.HandleFunc("/applicant/documents", uploadDocument.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/applicant/documents", getApplicantDocuments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/applicant/documents/{id}", deleteDocument.Handle).Methods(http.MethodDelete)

	// --- Документы программы ---
	protected.HandleFunc("/programs/{id}/documents", getProgramDocuments.Handle).Methods(http.MethodGet)

	// CORS для фронтенда портала (cookie-сессия требует credentials)
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}).Handler(r)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
