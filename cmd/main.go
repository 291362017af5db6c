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

	cancelReservationHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/cancel_reservation"
	confirmPaymentHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/confirm_payment"
	createAdminReservationHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/create_admin_reservation"
	createBlockHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/create_block"
	getAvailabilityHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_availability"
	getReservationHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/get_reservation"
	initPaymentHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/init_payment"
	listCitiesHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/list_cities"
	listCourtsHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/list_courts"
	releaseBlockHandler "github.com/m04kA/SMC-CourtService/internal/api/handlers/release_block"
	"github.com/m04kA/SMC-CourtService/internal/api/middleware"
	"github.com/m04kA/SMC-CourtService/internal/config"
	blockRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/block"
	courtRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/court"
	paymentRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/payment"
	reservationRepo "github.com/m04kA/SMC-CourtService/internal/infra/storage/reservation"
	gatewayClient "github.com/m04kA/SMC-CourtService/internal/integrations/paymentgateway"
	blocksService "github.com/m04kA/SMC-CourtService/internal/service/blocks"
	courtsService "github.com/m04kA/SMC-CourtService/internal/service/courts"
	reservationsService "github.com/m04kA/SMC-CourtService/internal/service/reservations"
	acquireBlockUC "github.com/m04kA/SMC-CourtService/internal/usecase/acquire_block"
	checkAvailabilityUC "github.com/m04kA/SMC-CourtService/internal/usecase/check_availability"
	confirmPaymentUC "github.com/m04kA/SMC-CourtService/internal/usecase/confirm_payment"
	finalizeReservationUC "github.com/m04kA/SMC-CourtService/internal/usecase/finalize_reservation"
	initPaymentUC "github.com/m04kA/SMC-CourtService/internal/usecase/init_payment"
	"github.com/m04kA/SMC-CourtService/internal/worker/sweeper"
	"github.com/m04kA/SMC-CourtService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CourtService/pkg/logger"
	"github.com/m04kA/SMC-CourtService/pkg/metrics"
	"github.com/m04kA/SMC-CourtService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-CourtService/pkg/txmanager"
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

	log.Info("Starting SMC-CourtService...")
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

	// Инициализируем клиента платёжного шлюза
	gateway := gatewayClient.NewClient(
		cfg.PaymentGateway.URL,
		cfg.PaymentGateway.APIKey,
		time.Duration(cfg.PaymentGateway.Timeout)*time.Second,
		log,
	)
	log.Info("Payment gateway client initialized (url=%s, timeout=%ds)",
		cfg.PaymentGateway.URL, cfg.PaymentGateway.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		courtRepository       *courtRepo.Repository
		reservationRepository *reservationRepo.Repository
		blockRepository       *blockRepo.Repository
		paymentRepository     *paymentRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		courtRepository = courtRepo.NewRepository(wrappedDB)
		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		blockRepository = blockRepo.NewRepository(wrappedDB)
		paymentRepository = paymentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		courtRepository = courtRepo.NewRepository(db)
		reservationRepository = reservationRepo.NewRepository(db)
		blockRepository = blockRepo.NewRepository(db)
		paymentRepository = paymentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(reservationRepository, log)
	blockSvc := blocksService.NewService(blockRepository, log)
	courtSvc := courtsService.NewService(courtRepository, log)

	// Инициализируем use cases
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		courtRepository,
		reservationRepository,
		blockRepository,
		log,
	)

	acquireBlockUseCase := acquireBlockUC.NewUseCase(
		courtRepository,
		reservationRepository,
		blockRepository,
		txMgr,
		cfg.Blocks.TTLMinutes,
		log,
	)

	finalizeReservationUseCase := finalizeReservationUC.NewUseCase(
		courtRepository,
		reservationRepository,
		blockRepository,
		txMgr,
		log,
	)

	initPaymentUseCase := initPaymentUC.NewUseCase(
		blockRepository,
		paymentRepository,
		gateway,
		cfg.PaymentGateway.ReturnURL,
		log,
	)

	confirmPaymentUseCase := confirmPaymentUC.NewUseCase(
		paymentRepository,
		blockRepository,
		gateway,
		finalizeReservationUseCase,
		log,
	)

	// Инициализируем handlers
	getAvailability := getAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	createBlock := createBlockHandler.NewHandler(acquireBlockUseCase, log)
	releaseBlock := releaseBlockHandler.NewHandler(blockSvc, log)
	initPayment := initPaymentHandler.NewHandler(initPaymentUseCase, log)
	confirmPayment := confirmPaymentHandler.NewHandler(confirmPaymentUseCase, log)
	createAdminReservation := createAdminReservationHandler.NewHandler(finalizeReservationUseCase, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	listCourts := listCourtsHandler.NewHandler(courtSvc, log)
	listCities := listCitiesHandler.NewHandler(courtSvc, log)

	// Запускаем фоновый уборщик просроченных блоков
	sweepWorker, err := sweeper.New(blockRepository, cfg.Blocks.SweepIntervalSeconds, log)
	if err != nil {
		log.Fatal("Failed to create sweeper: %v", err)
	}

	sweeperCtx, cancelSweeper := context.WithCancel(context.Background())
	defer cancelSweeper()

	if err := sweepWorker.Start(sweeperCtx); err != nil {
		log.Fatal("Failed to start sweeper: %v", err)
	}

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

	// Справочник: города и площадки комплексов
	api.HandleFunc("/cities", listCities.Handle).Methods(http.MethodGet)
	api.HandleFunc("/complexes/{complexId}/courts", listCourts.Handle).Methods(http.MethodGet)

	// Занятые интервалы площадки на дату
	api.HandleFunc("/courts/{courtId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Временные блоки слотов
	api.HandleFunc("/blocks", createBlock.Handle).Methods(http.MethodPost)
	api.HandleFunc("/blocks/{blockId}", releaseBlock.Handle).Methods(http.MethodDelete)

	// Оплата
	api.HandleFunc("/payments/init", initPayment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/payments/confirm", confirmPayment.Handle).Methods(http.MethodPost)

	// Бронирование по коду
	api.HandleFunc("/reservations/{code}", getReservation.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("/admin").Subrouter()
	protected.Use(middleware.Auth)

	// Административное бронирование без временного блока
	protected.HandleFunc("/reservations", createAdminReservation.Handle).Methods(http.MethodPost)

	// Отмена бронирования
	protected.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)

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

	// Останавливаем уборщик
	cancelSweeper()
	if err := sweepWorker.Stop(); err != nil {
		log.Error("Failed to stop sweeper: %v", err)
	}

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
