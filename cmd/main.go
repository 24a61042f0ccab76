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

	getBookingHandler "github.com/m04kA/Pickleball-BookingService/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/m04kA/Pickleball-BookingService/internal/api/handlers/get_calendar"
	getUpcomingEventsHandler "github.com/m04kA/Pickleball-BookingService/internal/api/handlers/get_upcoming_events"
	getUserBookingsHandler "github.com/m04kA/Pickleball-BookingService/internal/api/handlers/get_user_bookings"
	reserveSlotHandler "github.com/m04kA/Pickleball-BookingService/internal/api/handlers/reserve_slot"
	"github.com/m04kA/Pickleball-BookingService/internal/api/middleware"
	"github.com/m04kA/Pickleball-BookingService/internal/config"
	"github.com/m04kA/Pickleball-BookingService/internal/infra/cache/slotfeed"
	bookingRepo "github.com/m04kA/Pickleball-BookingService/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/Pickleball-BookingService/internal/infra/storage/slot"
	authServiceClient "github.com/m04kA/Pickleball-BookingService/internal/integrations/authservice"
	bookingsService "github.com/m04kA/Pickleball-BookingService/internal/service/bookings"
	getCalendarUC "github.com/m04kA/Pickleball-BookingService/internal/usecase/get_calendar"
	getUpcomingEventsUC "github.com/m04kA/Pickleball-BookingService/internal/usecase/get_upcoming_events"
	reserveSlotUC "github.com/m04kA/Pickleball-BookingService/internal/usecase/reserve_slot"
	"github.com/m04kA/Pickleball-BookingService/pkg/dbmetrics"
	"github.com/m04kA/Pickleball-BookingService/pkg/logger"
	"github.com/m04kA/Pickleball-BookingService/pkg/metrics"
	"github.com/m04kA/Pickleball-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/Pickleball-BookingService/pkg/txmanager"
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

	log.Info("Starting Pickleball-BookingService...")
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

	// Инициализируем клиент AuthService
	authClient := authServiceClient.NewClient(
		cfg.AuthService.URL,
		time.Duration(cfg.AuthService.Timeout)*time.Second,
		log,
	)
	log.Info("AuthService client initialized (url=%s timeout=%ds)",
		cfg.AuthService.URL, cfg.AuthService.Timeout)

	// Инициализируем кеш ленты событий (если включен)
	// Переменные интерфейсных типов остаются nil при выключенном Redis,
	// и use cases работают напрямую с БД
	var feedCacheRead getUpcomingEventsUC.FeedCache
	var feedCacheInvalidate reserveSlotUC.FeedCache

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

		feedCache := slotfeed.New(redisClient, time.Duration(cfg.Redis.TTLSeconds)*time.Second)
		feedCacheRead = feedCache
		feedCacheInvalidate = feedCache
		log.Info("Feed cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTLSeconds)
	}

	// Инициализируем репозитории и transaction manager (с метриками или без)
	var (
		slotRepository    *slotRepo.Repository
		bookingRepository *bookingRepo.Repository
		txMgr             reserveSlotUC.TransactionManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		slotRepository = slotRepo.NewRepository(wrappedDB)
		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		slotRepository = slotRepo.NewRepository(db)
		bookingRepository = bookingRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	getUpcomingEventsUseCase := getUpcomingEventsUC.NewUseCase(
		slotRepository,
		feedCacheRead,
		log,
	)

	getCalendarUseCase := getCalendarUC.NewUseCase(
		slotRepository,
		log,
	)

	reserveSlotUseCase := reserveSlotUC.NewUseCase(
		slotRepository,
		bookingRepository,
		authClient,
		txMgr,
		feedCacheInvalidate,
		log,
	)

	// Инициализируем handlers
	getUpcomingEvents := getUpcomingEventsHandler.NewHandler(getUpcomingEventsUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	reserveSlot := reserveSlotHandler.NewHandler(reserveSlotUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
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

	// Лента ближайших событий (корты и занятия)
	api.HandleFunc("/events/upcoming", getUpcomingEvents.Handle).Methods(http.MethodGet)

	// Календарь доступности кортов на месяц
	api.HandleFunc("/calendar", getCalendar.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Бронирование места в слоте
	protected.HandleFunc("/reservations", reserveSlot.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

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
