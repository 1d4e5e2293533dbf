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

	createBookingHandler "github.com/titikcuci/booking-service/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/titikcuci/booking-service/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/titikcuci/booking-service/internal/api/handlers/get_booking"
	getNotificationsHandler "github.com/titikcuci/booking-service/internal/api/handlers/get_notifications"
	getTimelineHandler "github.com/titikcuci/booking-service/internal/api/handlers/get_timeline"
	getUserBookingsHandler "github.com/titikcuci/booking-service/internal/api/handlers/get_user_bookings"
	markNotificationReadHandler "github.com/titikcuci/booking-service/internal/api/handlers/mark_notification_read"
	updateBookingStatusHandler "github.com/titikcuci/booking-service/internal/api/handlers/update_booking_status"
	"github.com/titikcuci/booking-service/internal/api/middleware"
	"github.com/titikcuci/booking-service/internal/config"
	bookingRepo "github.com/titikcuci/booking-service/internal/infra/storage/booking"
	catalogRepo "github.com/titikcuci/booking-service/internal/infra/storage/catalog"
	historyRepo "github.com/titikcuci/booking-service/internal/infra/storage/history"
	notificationRepo "github.com/titikcuci/booking-service/internal/infra/storage/notification"
	bookingsService "github.com/titikcuci/booking-service/internal/service/bookings"
	notificationsService "github.com/titikcuci/booking-service/internal/service/notifications"
	createBookingUC "github.com/titikcuci/booking-service/internal/usecase/create_booking"
	getAvailabilityUC "github.com/titikcuci/booking-service/internal/usecase/get_availability"
	transitionStatusUC "github.com/titikcuci/booking-service/internal/usecase/transition_status"
	"github.com/titikcuci/booking-service/pkg/dbmetrics"
	"github.com/titikcuci/booking-service/pkg/logger"
	"github.com/titikcuci/booking-service/pkg/metrics"
	"github.com/titikcuci/booking-service/pkg/qr"
	"github.com/titikcuci/booking-service/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting booking-service...")

	schedule, err := cfg.Booking.Schedule()
	if err != nil {
		log.Fatal("Failed to build schedule: %v", err)
	}
	log.Info("Operating window %02d:00-%02d:00 %s, %d-minute slots, capacity %d",
		cfg.Booking.OpenHour, cfg.Booking.CloseHour, cfg.Booking.Timezone,
		cfg.Booking.SlotMinutes, cfg.Booking.SlotCapacity)

	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Repositories run over the metrics wrapper when metrics are enabled;
	// transactions always begin on the raw pool.
	var executor txmanager.Executor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.Wrap(db, dbmetrics.NewCollectors(cfg.Metrics.ServiceName), stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	bookingRepository := bookingRepo.NewRepository(executor)
	historyRepository := historyRepo.NewRepository(executor)
	catalogRepository := catalogRepo.NewRepository(executor)
	notificationRepository := notificationRepo.NewRepository(executor)
	txMgr := txmanager.NewTransactionManager(db)
	encoder := qr.NewEncoder()

	var (
		createMetrics     createBookingUC.Metrics
		transitionMetrics transitionStatusUC.Metrics
	)
	if metricsCollector != nil {
		createMetrics = metricsCollector
		transitionMetrics = metricsCollector
	}

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		historyRepository,
		catalogRepository,
		txMgr,
		encoder,
		createMetrics,
		log,
		schedule,
		cfg.Booking.SlotCapacity,
		cfg.Booking.NumberPrefix,
	)
	transitionStatusUseCase := transitionStatusUC.NewUseCase(
		bookingRepository,
		historyRepository,
		notificationRepository,
		txMgr,
		transitionMetrics,
		log,
		cfg.Booking.StrictTransitions,
	)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		catalogRepository,
		log,
		schedule,
		cfg.Booking.SlotCapacity,
	)

	bookingSvc := bookingsService.NewService(
		bookingRepository,
		historyRepository,
		catalogRepository,
		encoder,
		log,
	)
	notificationSvc := notificationsService.NewService(notificationRepository, log)

	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log, schedule.Location())
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailabilityUseCase, log, schedule.Location())
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getTimeline := getTimelineHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(transitionStatusUseCase, log)
	getNotifications := getNotificationsHandler.NewHandler(notificationSvc, log)
	markNotificationRead := markNotificationReadHandler.NewHandler(notificationSvc, log)

	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	rateLimiter := middleware.NewRateLimiter(float64(cfg.Server.RateLimitRPS), cfg.Server.RateLimitBurst)
	r.Use(rateLimiter.Handler)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public: the slot grid needs no identity.
	api.HandleFunc("/locations/{locationId}/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Protected: requires the gateway identity headers.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/timeline", getTimeline.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/notifications", getNotifications.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/{notificationId}/read", markNotificationRead.Handle).Methods(http.MethodPatch)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
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
