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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	createCheckoutHandler "github.com/m04kA/KaraBox-BookingService/internal/api/handlers/create_checkout"
	deleteBookingHandler "github.com/m04kA/KaraBox-BookingService/internal/api/handlers/delete_booking"
	getAvailableSlotsHandler "github.com/m04kA/KaraBox-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/KaraBox-BookingService/internal/api/handlers/get_booking"
	getExcludedDaysHandler "github.com/m04kA/KaraBox-BookingService/internal/api/handlers/get_excluded_days"
	getMaxDurationHandler "github.com/m04kA/KaraBox-BookingService/internal/api/handlers/get_max_duration"
	getPriceQuoteHandler "github.com/m04kA/KaraBox-BookingService/internal/api/handlers/get_price_quote"
	getSettingsHandler "github.com/m04kA/KaraBox-BookingService/internal/api/handlers/get_settings"
	listAccountsHandler "github.com/m04kA/KaraBox-BookingService/internal/api/handlers/list_accounts"
	listBookingsHandler "github.com/m04kA/KaraBox-BookingService/internal/api/handlers/list_bookings"
	stripeWebhookHandler "github.com/m04kA/KaraBox-BookingService/internal/api/handlers/stripe_webhook"
	updateBookingStatusHandler "github.com/m04kA/KaraBox-BookingService/internal/api/handlers/update_booking_status"
	updateSettingsHandler "github.com/m04kA/KaraBox-BookingService/internal/api/handlers/update_settings"
	"github.com/m04kA/KaraBox-BookingService/internal/api/middleware"
	"github.com/m04kA/KaraBox-BookingService/internal/config"
	availabilityCache "github.com/m04kA/KaraBox-BookingService/internal/infra/cache"
	accountRepo "github.com/m04kA/KaraBox-BookingService/internal/infra/storage/account"
	bookingRepo "github.com/m04kA/KaraBox-BookingService/internal/infra/storage/booking"
	settingsRepo "github.com/m04kA/KaraBox-BookingService/internal/infra/storage/settings"
	"github.com/m04kA/KaraBox-BookingService/internal/integrations/mailer"
	"github.com/m04kA/KaraBox-BookingService/internal/integrations/stripeclient"
	accountsService "github.com/m04kA/KaraBox-BookingService/internal/service/accounts"
	bookingsService "github.com/m04kA/KaraBox-BookingService/internal/service/bookings"
	settingsService "github.com/m04kA/KaraBox-BookingService/internal/service/settings"
	createCheckoutUC "github.com/m04kA/KaraBox-BookingService/internal/usecase/create_checkout"
	getAvailableSlotsUC "github.com/m04kA/KaraBox-BookingService/internal/usecase/get_available_slots"
	getExcludedDaysUC "github.com/m04kA/KaraBox-BookingService/internal/usecase/get_excluded_days"
	getMaxDurationUC "github.com/m04kA/KaraBox-BookingService/internal/usecase/get_max_duration"
	getPriceQuoteUC "github.com/m04kA/KaraBox-BookingService/internal/usecase/get_price_quote"
	"github.com/m04kA/KaraBox-BookingService/pkg/dbmetrics"
	"github.com/m04kA/KaraBox-BookingService/pkg/logger"
	"github.com/m04kA/KaraBox-BookingService/pkg/metrics"
	"github.com/m04kA/KaraBox-BookingService/pkg/simpletxmanager"
	"github.com/m04kA/KaraBox-BookingService/pkg/txmanager"
)

func main() {
	// Подхватываем .env (секреты для локальной разработки)
	_ = godotenv.Load()

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

	log.Info("Starting KaraBox-BookingService...")
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

	// Инициализируем кэш доступности (если Redis включен)
	var (
		slotsCacheUC       getAvailableSlotsUC.AvailabilityCache
		slotsCacheCheckout createCheckoutUC.AvailabilityCache
		slotsCacheBookings bookingsService.AvailabilityCache
		slotsCacheSettings settingsService.AvailabilityCache
	)
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

		slotsCache := availabilityCache.NewAvailabilityCache(
			redisClient,
			time.Duration(cfg.Redis.TTLSeconds)*time.Second,
		)
		slotsCacheUC = slotsCache
		slotsCacheCheckout = slotsCache
		slotsCacheBookings = slotsCache
		slotsCacheSettings = slotsCache
		log.Info("Availability cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTLSeconds)
	}

	// Инициализируем интеграции
	stripeClient := stripeclient.NewClient(stripeclient.Config{
		SecretKey:               cfg.Stripe.SecretKey,
		TestSecretKey:           cfg.Stripe.TestSecretKey,
		WebhookSecret:           cfg.Stripe.WebhookSecret,
		WebhookToleranceSeconds: cfg.Stripe.WebhookToleranceSeconds,
		SuccessURL:              cfg.Stripe.SuccessURL,
		CancelURL:               cfg.Stripe.CancelURL,
	}, log)

	mailClient := mailer.New(mailer.Config{
		Enabled:    cfg.SMTP.Enabled,
		Host:       cfg.SMTP.Host,
		Port:       cfg.SMTP.Port,
		Username:   cfg.SMTP.Username,
		Password:   cfg.SMTP.Password,
		From:       cfg.SMTP.From,
		AdminEmail: cfg.SMTP.AdminEmail,
	}, log)
	log.Info("Integrations initialized (stripe webhooks tolerance=%ds, smtp enabled=%t)",
		cfg.Stripe.WebhookToleranceSeconds, cfg.SMTP.Enabled)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		settingsRepository *settingsRepo.Repository
		accountRepository  *accountRepo.Repository
	)

	var txMgr createCheckoutUC.TransactionManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		accountRepository = accountRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		accountRepository = accountRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		mailClient,
		slotsCacheBookings,
		log,
	)
	settingsSvc := settingsService.NewService(
		settingsRepository,
		slotsCacheSettings,
		log,
	)
	accountSvc := accountsService.NewService(
		accountRepository,
		log,
	)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		settingsRepository,
		slotsCacheUC,
		log,
	)
	getExcludedDaysUseCase := getExcludedDaysUC.NewUseCase(settingsRepository, log)
	getMaxDurationUseCase := getMaxDurationUC.NewUseCase(bookingRepository, settingsRepository, log)
	getPriceQuoteUseCase := getPriceQuoteUC.NewUseCase(settingsRepository, log)
	createCheckoutUseCase := createCheckoutUC.NewUseCase(
		bookingRepository,
		settingsRepository,
		accountRepository,
		stripeClient,
		mailClient,
		slotsCacheCheckout,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getExcludedDays := getExcludedDaysHandler.NewHandler(getExcludedDaysUseCase, log)
	getMaxDuration := getMaxDurationHandler.NewHandler(getMaxDurationUseCase, log)
	getPriceQuote := getPriceQuoteHandler.NewHandler(getPriceQuoteUseCase, log)
	createCheckout := createCheckoutHandler.NewHandler(createCheckoutUseCase, log)
	stripeWebhook := stripeWebhookHandler.NewHandler(stripeClient, bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	listAccounts := listAccountsHandler.NewHandler(accountSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)

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

	// Доступность и цены
	api.HandleFunc("/availability/slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/excluded-days", getExcludedDays.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/max-duration", getMaxDuration.Handle).Methods(http.MethodGet)
	api.HandleFunc("/pricing/quote", getPriceQuote.Handle).Methods(http.MethodGet)

	// Создание бронирования с платежной сессией
	api.HandleFunc("/checkout", createCheckout.Handle).Methods(http.MethodPost)

	// Stripe webhook (авторизуется подписью события)
	api.HandleFunc("/webhooks/stripe", stripeWebhook.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-User-Id/X-User-Email и роль admin)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Auth)
	admin.Use(middleware.AdminOnly(accountRepository, log))

	// --- Бронирования ---
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)

	// --- Аккаунты клиентов ---
	admin.HandleFunc("/accounts", listAccounts.Handle).Methods(http.MethodGet)

	// --- Настройки бронирования ---
	admin.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
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
