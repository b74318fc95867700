package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	createTimeSlotHandler "github.com/m04kA/SMC-TimeSlotService/internal/api/handlers/create_time_slot"
	deleteTimeSlotHandler "github.com/m04kA/SMC-TimeSlotService/internal/api/handlers/delete_time_slot"
	getAvailableSlotsHandler "github.com/m04kA/SMC-TimeSlotService/internal/api/handlers/get_available_slots"
	getTimeSlotHandler "github.com/m04kA/SMC-TimeSlotService/internal/api/handlers/get_time_slot"
	updateTimeSlotHandler "github.com/m04kA/SMC-TimeSlotService/internal/api/handlers/update_time_slot"
	"github.com/m04kA/SMC-TimeSlotService/internal/api/middleware"
	"github.com/m04kA/SMC-TimeSlotService/internal/config"
	timeslotRepo "github.com/m04kA/SMC-TimeSlotService/internal/infra/storage/timeslot"
	userRepo "github.com/m04kA/SMC-TimeSlotService/internal/infra/storage/user"
	userServiceClient "github.com/m04kA/SMC-TimeSlotService/internal/integrations/userservice"
	timeslotsService "github.com/m04kA/SMC-TimeSlotService/internal/service/timeslots"
	createTimeSlotUC "github.com/m04kA/SMC-TimeSlotService/internal/usecase/create_time_slot"
	getAvailableSlotsUC "github.com/m04kA/SMC-TimeSlotService/internal/usecase/get_available_slots"
	updateTimeSlotUC "github.com/m04kA/SMC-TimeSlotService/internal/usecase/update_time_slot"
	"github.com/m04kA/SMC-TimeSlotService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TimeSlotService/pkg/logger"
	"github.com/m04kA/SMC-TimeSlotService/pkg/metrics"
	"github.com/m04kA/SMC-TimeSlotService/pkg/txmanager"
)

// UserProvider проверка существования пользователя (таблица users или UserService)
type UserProvider interface {
	Exists(ctx context.Context, userID int64) (bool, error)
}

func main() {
	// Загружаем конфигурацию
	configPath := config.Path()
	cfg, err := config.Load(configPath)
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

	log.Info("Starting SMC-TimeSlotService...")
	log.Info("Configuration loaded from %s", configPath)

	// Метрики собираются всегда, эндпоинт публикуется только если включен
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)
	stopMetricsCh := make(chan struct{})

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)

	// Репозитории и менеджер транзакций
	slotRepository := timeslotRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB).WithMaxRetries(cfg.Database.MaxTxRetries)

	// Источник пользователей
	var users UserProvider
	if cfg.UserService.Enabled {
		users = userServiceClient.NewClient(
			cfg.UserService.URL,
			time.Duration(cfg.UserService.Timeout)*time.Second,
			log,
		)
		log.Info("User lookup via UserService=%s timeout=%ds", cfg.UserService.URL, cfg.UserService.Timeout)
	} else {
		users = userRepo.NewRepository(wrappedDB)
		log.Info("User lookup via users table")
	}

	// Сервисы и use cases
	slotSvc := timeslotsService.NewService(slotRepository, txMgr, metricsCollector, log)
	createTimeSlotUseCase := createTimeSlotUC.NewUseCase(slotRepository, users, txMgr, metricsCollector, log)
	updateTimeSlotUseCase := updateTimeSlotUC.NewUseCase(slotRepository, txMgr, metricsCollector, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(slotRepository, users, log)

	// Handlers
	createTimeSlot := createTimeSlotHandler.NewHandler(createTimeSlotUseCase, log)
	updateTimeSlot := updateTimeSlotHandler.NewHandler(updateTimeSlotUseCase, log)
	deleteTimeSlot := deleteTimeSlotHandler.NewHandler(slotSvc, log)
	getTimeSlot := getTimeSlotHandler.NewHandler(slotSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.MetricsMiddleware(metricsCollector))

	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", healthHandler(wrappedDB)).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// /available регистрируется раньше /{id}
	api.HandleFunc("/time-slots/available", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/time-slots", createTimeSlot.Handle).Methods(http.MethodPost)
	api.HandleFunc("/time-slots/{id:[0-9]+}", getTimeSlot.Handle).Methods(http.MethodGet)
	api.HandleFunc("/time-slots/{id:[0-9]+}", updateTimeSlot.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/time-slots/{id:[0-9]+}", deleteTimeSlot.Handle).Methods(http.MethodDelete)

	// Access log и восстановление после паники
	handler := gorillaHandlers.CombinedLoggingHandler(log.Writer(), r)
	handler = gorillaHandlers.RecoveryHandler(gorillaHandlers.PrintRecoveryStack(true))(handler)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

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

type pinger interface {
	PingContext(ctx context.Context) error
}

// healthHandler отвечает 200, если база доступна
func healthHandler(db pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		w.Header().Set("Content-Type", "application/json")
		if err := db.PingContext(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"unavailable"}`))
			return
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}
