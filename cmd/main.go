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

	createBookingHandler "github.com/bossbaby/BBS-BookingService/internal/api/handlers/create_booking"
	createClosureHandler "github.com/bossbaby/BBS-BookingService/internal/api/handlers/create_closure"
	deleteBookingHandler "github.com/bossbaby/BBS-BookingService/internal/api/handlers/delete_booking"
	deleteClosureHandler "github.com/bossbaby/BBS-BookingService/internal/api/handlers/delete_closure"
	getAvailableSlotsHandler "github.com/bossbaby/BBS-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/bossbaby/BBS-BookingService/internal/api/handlers/get_booking"
	getBookingsHandler "github.com/bossbaby/BBS-BookingService/internal/api/handlers/get_bookings"
	getClosuresHandler "github.com/bossbaby/BBS-BookingService/internal/api/handlers/get_closures"
	getUserBookingsHandler "github.com/bossbaby/BBS-BookingService/internal/api/handlers/get_user_bookings"
	loginHandler "github.com/bossbaby/BBS-BookingService/internal/api/handlers/login"
	logoutHandler "github.com/bossbaby/BBS-BookingService/internal/api/handlers/logout"
	registerHandler "github.com/bossbaby/BBS-BookingService/internal/api/handlers/register"
	syncCalendarHandler "github.com/bossbaby/BBS-BookingService/internal/api/handlers/sync_calendar"
	"github.com/bossbaby/BBS-BookingService/internal/api/middleware"
	"github.com/bossbaby/BBS-BookingService/internal/auth"
	"github.com/bossbaby/BBS-BookingService/internal/config"
	bookingRepo "github.com/bossbaby/BBS-BookingService/internal/infra/storage/booking"
	closureRepo "github.com/bossbaby/BBS-BookingService/internal/infra/storage/closure"
	userRepo "github.com/bossbaby/BBS-BookingService/internal/infra/storage/user"
	calendarClient "github.com/bossbaby/BBS-BookingService/internal/integrations/calendar"
	bookingsService "github.com/bossbaby/BBS-BookingService/internal/service/bookings"
	closuresService "github.com/bossbaby/BBS-BookingService/internal/service/closures"
	createBookingUC "github.com/bossbaby/BBS-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/bossbaby/BBS-BookingService/internal/usecase/get_available_slots"
	syncCalendarUC "github.com/bossbaby/BBS-BookingService/internal/usecase/sync_calendar"
	"github.com/bossbaby/BBS-BookingService/pkg/dbmetrics"
	"github.com/bossbaby/BBS-BookingService/pkg/logger"
	"github.com/bossbaby/BBS-BookingService/pkg/metrics"
	"github.com/bossbaby/BBS-BookingService/pkg/simpletxmanager"
	"github.com/bossbaby/BBS-BookingService/pkg/txmanager"
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

	log.Info("Starting BBS-BookingService...")

	schedule, err := cfg.ToSchedule()
	if err != nil {
		log.Fatal("Failed to build studio schedule: %v", err)
	}
	log.Info("Studio schedule: %d session windows, %d-minute slots, timezone=%s",
		len(schedule.Sessions), schedule.SlotDurationMinutes, cfg.Schedule.Timezone)

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

	// Клиент внешнего календаря-зеркала
	calendar := calendarClient.NewClient(
		cfg.Calendar.URL,
		cfg.Calendar.CalendarID,
		schedule.Location,
		time.Duration(cfg.Calendar.Timeout)*time.Second,
		log,
	)
	log.Info("Calendar client initialized (url=%s, calendar=%s, timeout=%ds)",
		cfg.Calendar.URL, cfg.Calendar.CalendarID, cfg.Calendar.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository *bookingRepo.Repository
		closureRepository *closureRepo.Repository
		userRepository    *userRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		closureRepository = closureRepo.NewRepository(wrappedDB)
		userRepository = userRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		closureRepository = closureRepo.NewRepository(db)
		userRepository = userRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Сервис авторизации
	authService := auth.NewService(
		userRepository,
		[]byte(cfg.Auth.HashKey),
		[]byte(cfg.Auth.BlockKey),
		time.Duration(cfg.Auth.SessionTTLSec)*time.Second,
		log,
	)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, userRepository, calendar, log)
	closureSvc := closuresService.NewService(closureRepository, log)

	// Инициализируем use cases
	notifier := syncCalendarUC.NewNotifier()

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		closureRepository,
		userRepository,
		txMgr,
		notifier,
		schedule,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		closureRepository,
		txMgr,
		schedule,
		log,
	)
	syncCalendarUseCase := syncCalendarUC.NewUseCase(bookingRepository, calendar, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getBookings := getBookingsHandler.NewHandler(bookingSvc, log)
	createClosure := createClosureHandler.NewHandler(closureSvc, log)
	getClosures := getClosuresHandler.NewHandler(closureSvc, log)
	deleteClosure := deleteClosureHandler.NewHandler(closureSvc, log)
	syncCalendar := syncCalendarHandler.NewHandler(syncCalendarUseCase, log)
	register := registerHandler.NewHandler(authService, log)
	login := loginHandler.NewHandler(authService, log)
	logout := logoutHandler.NewHandler(authService, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/auth/register", register.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", login.Handle).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", logout.Handle).Methods(http.MethodPost)

	// Сетка слотов на дату
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Перерывы студии (просмотр доступен всем)
	api.HandleFunc("/closures", getClosures.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют сессию)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Session(authService))

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", deleteBooking.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (требуют сессию администратора)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.Session(authService), middleware.Admin)

	admin.HandleFunc("/bookings", getBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/closures", createClosure.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/closures/{closureId}", deleteClosure.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/sync-calendar", syncCalendar.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Фоновый воркер синхронизации календаря: просыпается по уведомлению от
	// создания бронирования и по таймеру (подхватывает то, что не удалось с
	// первого раза)
	workerCtx, stopWorker := context.WithCancel(context.Background())
	workerDone := make(chan struct{})
	go runSyncWorker(workerCtx, workerDone, syncCalendarUseCase, notifier,
		time.Duration(cfg.Calendar.SyncIntervalSeconds)*time.Second, log)

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	stopWorker()
	<-workerDone

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

// runSyncWorker гоняет проходы синхронизации до отмены контекста.
// interval <= 0 отключает таймер, остаются только уведомления.
func runSyncWorker(
	ctx context.Context,
	done chan<- struct{},
	uc *syncCalendarUC.UseCase,
	notifier *syncCalendarUC.Notifier,
	interval time.Duration,
	log *logger.Logger,
) {
	defer close(done)

	var tick <-chan time.Time
	if interval > 0 {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tick = ticker.C
		log.Info("Calendar sync worker started (interval=%s)", interval)
	} else {
		log.Info("Calendar sync worker started (timer disabled)")
	}

	for {
		select {
		case <-ctx.Done():
			log.Info("Calendar sync worker stopped")
			return
		case <-notifier.C():
		case <-tick:
		}

		if _, err := uc.Execute(ctx); err != nil && ctx.Err() == nil {
			log.Error("Calendar sync sweep failed: %v", err)
		}
	}
}
