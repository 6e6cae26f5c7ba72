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
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/petlink/PetLink-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/petlink/PetLink-BookingService/internal/api/handlers/create_booking"
	createWindowHandler "github.com/petlink/PetLink-BookingService/internal/api/handlers/create_window"
	deleteWindowHandler "github.com/petlink/PetLink-BookingService/internal/api/handlers/delete_window"
	getAvailableSlotsHandler "github.com/petlink/PetLink-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/petlink/PetLink-BookingService/internal/api/handlers/get_booking"
	getClientBookingsHandler "github.com/petlink/PetLink-BookingService/internal/api/handlers/get_client_bookings"
	getProfessionalBookingsHandler "github.com/petlink/PetLink-BookingService/internal/api/handlers/get_professional_bookings"
	listWindowsHandler "github.com/petlink/PetLink-BookingService/internal/api/handlers/list_windows"
	updateBookingStatusHandler "github.com/petlink/PetLink-BookingService/internal/api/handlers/update_booking_status"
	updateWindowHandler "github.com/petlink/PetLink-BookingService/internal/api/handlers/update_window"
	"github.com/petlink/PetLink-BookingService/internal/api/middleware"
	"github.com/petlink/PetLink-BookingService/internal/config"
	"github.com/petlink/PetLink-BookingService/internal/infra/events"
	availabilityRepo "github.com/petlink/PetLink-BookingService/internal/infra/storage/availability"
	bookingRepo "github.com/petlink/PetLink-BookingService/internal/infra/storage/booking"
	profileServiceClient "github.com/petlink/PetLink-BookingService/internal/integrations/profileservice"
	availabilityService "github.com/petlink/PetLink-BookingService/internal/service/availability"
	bookingsService "github.com/petlink/PetLink-BookingService/internal/service/bookings"
	createBookingUC "github.com/petlink/PetLink-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/petlink/PetLink-BookingService/internal/usecase/get_available_slots"
	"github.com/petlink/PetLink-BookingService/pkg/dbmetrics"
	"github.com/petlink/PetLink-BookingService/pkg/logger"
	"github.com/petlink/PetLink-BookingService/pkg/metrics"
	"github.com/petlink/PetLink-BookingService/pkg/simpletxmanager"
	"github.com/petlink/PetLink-BookingService/pkg/txmanager"
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

	log.Info("Starting PetLink-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

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

	// Инициализируем интеграционного клиента ProfileService
	profileClient := profileServiceClient.NewClient(
		cfg.ProfileService.URL,
		time.Duration(cfg.ProfileService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (ProfileService=%s timeout=%ds)",
		cfg.ProfileService.URL, cfg.ProfileService.Timeout)

	// Инициализируем publisher доменных событий
	var publisher events.Publisher
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		defer redisClient.Close()

		publisher = events.NewRedisPublisher(redisClient, log)
		log.Info("Redis event publisher initialized (addr=%s)", cfg.Redis.Addr)
	} else {
		publisher = events.NewNopPublisher()
		log.Info("Event publishing disabled")
	}

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository      *bookingRepo.Repository
		availabilityRepository *availabilityRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.New(
		bookingRepository,
		publisher,
		log,
	)
	availabilitySvc := availabilityService.New(
		availabilityRepository,
		bookingRepository,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		profileClient,
		txMgr,
		publisher,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		availabilityRepository,
		profileClient,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getClientBookings := getClientBookingsHandler.NewHandler(bookingSvc, log)
	getProfessionalBookings := getProfessionalBookingsHandler.NewHandler(bookingSvc, log)
	createWindow := createWindowHandler.NewHandler(availabilitySvc, log)
	updateWindow := updateWindowHandler.NewHandler(availabilitySvc, log)
	deleteWindow := deleteWindowHandler.NewHandler(availabilitySvc, log)
	listWindows := listWindowsHandler.NewHandler(availabilitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Health endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Получение доступных слотов специалиста на дату
	api.HandleFunc("/professionals/{professionalId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// Расписание специалиста
	api.HandleFunc("/professionals/{professionalId}/availability-windows",
		listWindows.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Переход статуса бронирования
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// История бронирований клиента
	protected.HandleFunc("/clients/{clientId}/bookings", getClientBookings.Handle).Methods(http.MethodGet)

	// Календарь специалиста
	protected.HandleFunc("/professionals/{professionalId}/bookings",
		getProfessionalBookings.Handle).Methods(http.MethodGet)

	// --- Управление расписанием (для специалистов) ---
	protected.HandleFunc("/availability-windows", createWindow.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/availability-windows/{windowId}", updateWindow.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/availability-windows/{windowId}", deleteWindow.Handle).Methods(http.MethodDelete)

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

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
