package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createAppointmentHandler "github.com/Hayzedd-A/appointment-booking/internal/api/handlers/create_appointment"
	getAvailableSlotsHandler "github.com/Hayzedd-A/appointment-booking/internal/api/handlers/get_available_slots"
	getSettingsHandler "github.com/Hayzedd-A/appointment-booking/internal/api/handlers/get_settings"
	listAppointmentsHandler "github.com/Hayzedd-A/appointment-booking/internal/api/handlers/list_appointments"
	loginHandler "github.com/Hayzedd-A/appointment-booking/internal/api/handlers/login"
	updateSettingsHandler "github.com/Hayzedd-A/appointment-booking/internal/api/handlers/update_settings"
	updateStatusHandler "github.com/Hayzedd-A/appointment-booking/internal/api/handlers/update_status"
	"github.com/Hayzedd-A/appointment-booking/internal/api/middleware"
	"github.com/Hayzedd-A/appointment-booking/internal/auth"
	"github.com/Hayzedd-A/appointment-booking/internal/config"
	"github.com/Hayzedd-A/appointment-booking/internal/infra/cache"
	appointmentRepo "github.com/Hayzedd-A/appointment-booking/internal/infra/storage/appointment"
	settingsRepo "github.com/Hayzedd-A/appointment-booking/internal/infra/storage/settings"
	appointmentsService "github.com/Hayzedd-A/appointment-booking/internal/service/appointments"
	settingsService "github.com/Hayzedd-A/appointment-booking/internal/service/settings"
	createAppointmentUC "github.com/Hayzedd-A/appointment-booking/internal/usecase/create_appointment"
	getAvailableSlotsUC "github.com/Hayzedd-A/appointment-booking/internal/usecase/get_available_slots"
	"github.com/Hayzedd-A/appointment-booking/pkg/logger"
	"github.com/Hayzedd-A/appointment-booking/pkg/metrics"
	"github.com/Hayzedd-A/appointment-booking/pkg/txmanager"
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

	log.Info("Starting appointment-booking service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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

	// Применяем миграции
	if cfg.Database.MigrationsDir != "" {
		if err := goose.SetDialect("postgres"); err != nil {
			log.Fatal("Failed to set migrations dialect: %v", err)
		}
		if err := goose.Up(db, cfg.Database.MigrationsDir); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database migrations applied from %s", cfg.Database.MigrationsDir)
	}

	// Инициализируем кеш доступных слотов
	var slotsCache cache.Cache = cache.NewNoop()
	if cfg.Cache.Enabled {
		redisCache := cache.NewRedis(cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB)
		if err := redisCache.Ping(context.Background()); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		slotsCache = redisCache
		log.Info("Redis cache connected (addr=%s, db=%d)", cfg.Cache.Addr, cfg.Cache.DB)
	}

	// Инициализируем репозитории и transaction manager
	appointmentRepository := appointmentRepo.NewRepository(db)
	settingsRepository := settingsRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем JWT менеджер
	tokenTTL := time.Duration(cfg.Auth.TokenTTLSeconds) * time.Second
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	authManager := &auth.Manager{
		Secret: []byte(cfg.Auth.JWTSecret),
		TTL:    tokenTTL,
		Issuer: cfg.Metrics.ServiceName,
	}

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, slotsCache, log)
	settingsSvc := settingsService.NewService(settingsRepository, slotsCache, log)

	// Инициализируем use cases
	cacheTTL := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		settingsRepository,
		slotsCache,
		cacheTTL,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		settingsRepository,
		txMgr,
		slotsCache,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	updateStatus := updateStatusHandler.NewHandler(appointmentsSvc, log)
	adminLogin := loginHandler.NewHandler(authManager, cfg.Auth.AdminUsername, cfg.Auth.AdminPasswordHash, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Доступные слоты на дату
	api.HandleFunc("/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание записи
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Текущие настройки расписания (нужны клиентской форме записи)
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)

	// Вход администратора
	api.HandleFunc("/auth/login", adminLogin.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют JWT с ролью admin)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth(authManager))

	// Список записей с опциональным фильтром по статусу
	admin.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)

	// Обновление статуса записи
	admin.HandleFunc("/appointments/{id}/status", updateStatus.Handle).Methods(http.MethodPatch)

	// Полная замена настроек расписания
	admin.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
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
