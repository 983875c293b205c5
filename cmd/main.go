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

	addUnavailabilityHandler "github.com/ciphersage74/elegancecoiffure/internal/api/handlers/add_unavailability"
	cancelBookingHandler "github.com/ciphersage74/elegancecoiffure/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/ciphersage74/elegancecoiffure/internal/api/handlers/create_booking"
	deleteUnavailabilityHandler "github.com/ciphersage74/elegancecoiffure/internal/api/handlers/delete_unavailability"
	getAdminBookingsHandler "github.com/ciphersage74/elegancecoiffure/internal/api/handlers/get_admin_bookings"
	getAvailableDaysHandler "github.com/ciphersage74/elegancecoiffure/internal/api/handlers/get_available_days"
	getAvailableSlotsHandler "github.com/ciphersage74/elegancecoiffure/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/ciphersage74/elegancecoiffure/internal/api/handlers/get_booking"
	getBusinessHoursHandler "github.com/ciphersage74/elegancecoiffure/internal/api/handlers/get_business_hours"
	getClientBookingsHandler "github.com/ciphersage74/elegancecoiffure/internal/api/handlers/get_client_bookings"
	getGalleryHandler "github.com/ciphersage74/elegancecoiffure/internal/api/handlers/get_gallery"
	getSalonInfoHandler "github.com/ciphersage74/elegancecoiffure/internal/api/handlers/get_salon_info"
	getWorkingHoursHandler "github.com/ciphersage74/elegancecoiffure/internal/api/handlers/get_working_hours"
	listCategoriesHandler "github.com/ciphersage74/elegancecoiffure/internal/api/handlers/list_categories"
	listServiceStaffHandler "github.com/ciphersage74/elegancecoiffure/internal/api/handlers/list_service_staff"
	listServicesHandler "github.com/ciphersage74/elegancecoiffure/internal/api/handlers/list_services"
	listUnavailabilityHandler "github.com/ciphersage74/elegancecoiffure/internal/api/handlers/list_unavailability"
	replaceWorkingHoursHandler "github.com/ciphersage74/elegancecoiffure/internal/api/handlers/replace_working_hours"
	updateBookingStatusHandler "github.com/ciphersage74/elegancecoiffure/internal/api/handlers/update_booking_status"
	updateSalonInfoHandler "github.com/ciphersage74/elegancecoiffure/internal/api/handlers/update_salon_info"
	"github.com/ciphersage74/elegancecoiffure/internal/api/middleware"
	"github.com/ciphersage74/elegancecoiffure/internal/availability"
	"github.com/ciphersage74/elegancecoiffure/internal/config"
	"github.com/ciphersage74/elegancecoiffure/internal/infra/cache"
	bookingRepo "github.com/ciphersage74/elegancecoiffure/internal/infra/storage/booking"
	catalogRepo "github.com/ciphersage74/elegancecoiffure/internal/infra/storage/catalog"
	salonRepo "github.com/ciphersage74/elegancecoiffure/internal/infra/storage/salon"
	scheduleRepo "github.com/ciphersage74/elegancecoiffure/internal/infra/storage/schedule"
	bookingsService "github.com/ciphersage74/elegancecoiffure/internal/service/bookings"
	catalogService "github.com/ciphersage74/elegancecoiffure/internal/service/catalog"
	salonService "github.com/ciphersage74/elegancecoiffure/internal/service/salon"
	scheduleService "github.com/ciphersage74/elegancecoiffure/internal/service/schedule"
	createBookingUC "github.com/ciphersage74/elegancecoiffure/internal/usecase/create_booking"
	getAvailableDaysUC "github.com/ciphersage74/elegancecoiffure/internal/usecase/get_available_days"
	getAvailableSlotsUC "github.com/ciphersage74/elegancecoiffure/internal/usecase/get_available_slots"
	"github.com/ciphersage74/elegancecoiffure/pkg/dbmetrics"
	"github.com/ciphersage74/elegancecoiffure/pkg/logger"
	"github.com/ciphersage74/elegancecoiffure/pkg/metrics"
	"github.com/ciphersage74/elegancecoiffure/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
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

	log.Info("Starting Elegance Coiffure booking service...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Обёртка над пулом: с nil-коллектором метрики не пишутся
	var wrappedDB *dbmetrics.DB
	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")
	} else {
		wrappedDB = dbmetrics.Wrap(db, nil)
	}

	txMgr := txmanager.NewTransactionManager(
		wrappedDB,
		txmanager.WithMaxRetries(cfg.Booking.SerializeAttempts),
		txmanager.WithBackoff(time.Duration(cfg.Booking.RetryBackoffMs)*time.Millisecond),
	)

	// Кеш справочных данных. Недоступный Redis не мешает запуску.
	var store cache.Store = cache.NopCache{}
	if cfg.Redis.Enabled {
		pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
		redisCache, err := cache.NewRedisCache(pingCtx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.Prefix)
		cancelPing()
		if err != nil {
			log.Warn("Redis unavailable at %s, caching disabled: %v", cfg.Redis.Addr, err)
		} else {
			store = redisCache
			defer redisCache.Close()
			log.Info("Redis cache enabled (addr=%s, prefix=%s)", cfg.Redis.Addr, cfg.Redis.Prefix)
		}
	}

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	catalogRepository := catalogRepo.NewRepository(wrappedDB)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)
	salonRepository := salonRepo.NewRepository(wrappedDB)

	// Движок доступности читает расписание, бронирования и мастеров
	engine := availability.NewEngine(scheduleRepository, scheduleRepository, bookingRepository, catalogRepository)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	catalogSvc := catalogService.NewService(catalogRepository, store, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, catalogRepository, txMgr, log)
	salonSvc := salonService.NewService(salonRepository, store, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		engine,
		txMgr,
		metricsCollector,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(catalogRepository, engine, log)
	getAvailableDaysUseCase := getAvailableDaysUC.NewUseCase(catalogRepository, engine, cfg.Booking.MaxRangeDays, log)

	// Инициализируем handlers
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	listCategories := listCategoriesHandler.NewHandler(catalogSvc, log)
	listServiceStaff := listServiceStaffHandler.NewHandler(catalogSvc, log)
	getSalonInfo := getSalonInfoHandler.NewHandler(salonSvc, log)
	getGallery := getGalleryHandler.NewHandler(salonSvc, log)
	getBusinessHours := getBusinessHoursHandler.NewHandler(salonSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getAvailableDays := getAvailableDaysHandler.NewHandler(getAvailableDaysUseCase, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getClientBookings := getClientBookingsHandler.NewHandler(bookingSvc, log)

	getAdminBookings := getAdminBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getWorkingHours := getWorkingHoursHandler.NewHandler(scheduleSvc, log)
	replaceWorkingHours := replaceWorkingHoursHandler.NewHandler(scheduleSvc, log)
	listUnavailability := listUnavailabilityHandler.NewHandler(scheduleSvc, log)
	addUnavailability := addUnavailabilityHandler.NewHandler(scheduleSvc, log)
	deleteUnavailability := deleteUnavailabilityHandler.NewHandler(scheduleSvc, log)
	updateSalonInfo := updateSalonInfoHandler.NewHandler(salonSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware и endpoint (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// --- Каталог ---
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/categories", listCategories.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services/{serviceId}/staff", listServiceStaff.Handle).Methods(http.MethodGet)

	// --- Салон ---
	api.HandleFunc("/salon/info", getSalonInfo.Handle).Methods(http.MethodGet)
	api.HandleFunc("/salon/gallery", getGallery.Handle).Methods(http.MethodGet)
	api.HandleFunc("/salon/hours", getBusinessHours.Handle).Methods(http.MethodGet)

	// --- Доступность ---
	api.HandleFunc("/availability", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/days", getAvailableDays.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/clients/{clientId}/bookings", getClientBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (X-User-Role: admin)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth)
	admin.Use(middleware.RequireRole(middleware.RoleAdmin))

	// --- Бронирования ---
	admin.HandleFunc("/bookings", getAdminBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPut)

	// --- Расписание мастеров ---
	admin.HandleFunc("/staff/{staffId}/hours", getWorkingHours.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/staff/{staffId}/hours", replaceWorkingHours.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/staff/{staffId}/unavailability", listUnavailability.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/staff/{staffId}/unavailability", addUnavailability.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/unavailability/{unavailabilityId}", deleteUnavailability.Handle).Methods(http.MethodDelete)

	// --- Салон ---
	admin.HandleFunc("/salon/info", updateSalonInfo.Handle).Methods(http.MethodPut)

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
