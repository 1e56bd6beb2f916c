package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers/acquire_hold"
	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers/cancel_reservation"
	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers/create_hall"
	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers/create_post"
	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers/create_reservation"
	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers/delete_hall"
	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers/delete_media"
	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers/delete_post"
	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers/delete_reservation"
	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers/export_reservations"
	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers/get_available_slots"
	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers/get_hall"
	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers/get_hall_reservations"
	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers/get_post"
	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers/get_reservation"
	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers/list_halls"
	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers/list_posts"
	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers/update_hall"
	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers/update_post"
	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers/update_reservation_status"
	"github.com/m04kA/BMC-HallBookingService/internal/api/handlers/upload_media"
	"github.com/m04kA/BMC-HallBookingService/internal/api/middleware"
	"github.com/m04kA/BMC-HallBookingService/internal/config"
	"github.com/m04kA/BMC-HallBookingService/internal/infra/holdstore"
	"github.com/m04kA/BMC-HallBookingService/internal/infra/media"
	hallstorage "github.com/m04kA/BMC-HallBookingService/internal/infra/storage/hall"
	poststorage "github.com/m04kA/BMC-HallBookingService/internal/infra/storage/post"
	reservstorage "github.com/m04kA/BMC-HallBookingService/internal/infra/storage/reservation"
	"github.com/m04kA/BMC-HallBookingService/internal/service/halls"
	"github.com/m04kA/BMC-HallBookingService/internal/service/posts"
	"github.com/m04kA/BMC-HallBookingService/internal/service/reservations"
	acquireholduc "github.com/m04kA/BMC-HallBookingService/internal/usecase/acquire_hold"
	createreservuc "github.com/m04kA/BMC-HallBookingService/internal/usecase/create_reservation"
	slotsuc "github.com/m04kA/BMC-HallBookingService/internal/usecase/get_available_slots"
	"github.com/m04kA/BMC-HallBookingService/pkg/dbmetrics"
	"github.com/m04kA/BMC-HallBookingService/pkg/logger"
	"github.com/m04kA/BMC-HallBookingService/pkg/metrics"
	"github.com/m04kA/BMC-HallBookingService/pkg/simpletxmanager"
	"github.com/m04kA/BMC-HallBookingService/pkg/txmanager"
)

// txManager общий контракт менеджеров транзакций
type txManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

func main() {
	configPath := flag.String("config", "config.toml", "путь к файлу конфигурации")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logg, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logg.Close()

	logg.Info("main: starting hall booking service on port %d", cfg.Server.HTTPPort)

	// База данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		logg.Fatal("main: failed to open database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.PingContext(pingCtx); err != nil {
		cancelPing()
		logg.Fatal("main: failed to ping database: %v", err)
	}
	cancelPing()
	logg.Info("main: connected to database %s", cfg.Database.DBName)

	m := metrics.New(cfg.Metrics.ServiceName)

	stopPoolStats := make(chan struct{})
	defer close(stopPoolStats)

	var dbExecutor dbmetrics.DBExecutor = db
	var txMgr txManager = simpletxmanager.NewTransactionManager(db)
	if cfg.Metrics.Enabled {
		wrapped := dbmetrics.WrapWithDefault(db, m, cfg.Metrics.ServiceName, stopPoolStats)
		dbExecutor = wrapped
		txMgr = txmanager.NewTransactionManager(wrapped)
	}

	// Репозитории
	hallRepo := hallstorage.NewRepository(dbExecutor)
	reservRepo := reservstorage.NewRepository(dbExecutor)
	postRepo := poststorage.NewRepository(dbExecutor)

	// Redis для холдов слотов
	var holdStore *holdstore.Store
	if cfg.Redis.Enabled {
		redisClient := holdstore.NewClient(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.PoolSize)
		defer redisClient.Close()

		redisCtx, cancelRedis := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(redisCtx).Err(); err != nil {
			cancelRedis()
			logg.Fatal("main: failed to ping redis: %v", err)
		}
		cancelRedis()

		holdStore = holdstore.NewStore(redisClient, time.Duration(cfg.Booking.HoldTTLSeconds)*time.Second)
		logg.Info("main: slot holds enabled, ttl %ds", cfg.Booking.HoldTTLSeconds)
	}

	// S3-совместимое хранилище изображений
	var mediaStore *media.Store
	if cfg.Media.Enabled {
		mediaStore, err = media.NewStore(cfg.Media)
		if err != nil {
			logg.Fatal("main: failed to create media store: %v", err)
		}

		bucketCtx, cancelBucket := context.WithTimeout(context.Background(), 10*time.Second)
		if err := mediaStore.EnsureBucket(bucketCtx); err != nil {
			cancelBucket()
			logg.Fatal("main: failed to ensure media bucket: %v", err)
		}
		cancelBucket()
		logg.Info("main: media storage enabled, bucket %s", cfg.Media.Bucket)
	}

	// Usecases и сервисы
	var createHolds createreservuc.HoldStore
	if holdStore != nil {
		createHolds = holdStore
	}

	createReservationUC := createreservuc.NewUseCase(
		hallRepo, reservRepo, createHolds, txMgr, m, logg,
		cfg.Booking.SlotStepMinutes, cfg.Booking.MinBookingNoticeMinutes, cfg.Booking.AdvanceBookingDays,
	)
	availableSlotsUC := slotsuc.NewUseCase(
		hallRepo, reservRepo, logg,
		cfg.Booking.SlotStepMinutes, cfg.Booking.MinBookingNoticeMinutes,
	)

	hallsService := halls.NewService(hallRepo, logg)
	reservationsService := reservations.NewService(reservRepo, logg)
	postsService := posts.NewService(postRepo, logg)

	// Маршруты
	router := mux.NewRouter()

	if cfg.Metrics.Enabled {
		router.Use(middleware.Metrics(m))
		router.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
	}

	router.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)

	// Публичная часть
	public := router.PathPrefix("/api").Subrouter()

	bookingLimiter := func(h http.Handler) http.Handler { return h }
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		bookingLimiter = limiter.Middleware
		logg.Info("main: rate limit enabled, %.1f rps burst %d", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	public.HandleFunc("/halls",
		list_halls.NewHandler(hallsService, logg, false).Handle).Methods(http.MethodGet)
	public.HandleFunc("/halls/{id}",
		get_hall.NewHandler(hallsService, logg, false).Handle).Methods(http.MethodGet)
	public.HandleFunc("/halls/{id}/slots",
		get_available_slots.NewHandler(availableSlotsUC, logg).Handle).Methods(http.MethodGet)
	public.Handle("/reservations",
		bookingLimiter(http.HandlerFunc(create_reservation.NewHandler(createReservationUC, logg).Handle))).Methods(http.MethodPost)
	public.HandleFunc("/posts",
		list_posts.NewHandler(postsService, logg, false).Handle).Methods(http.MethodGet)
	public.HandleFunc("/posts/{slug}",
		get_post.NewHandler(postsService, logg, false).Handle).Methods(http.MethodGet)

	if holdStore != nil {
		acquireHoldUC := acquireholduc.NewUseCase(hallRepo, reservRepo, holdStore, logg, cfg.Booking.SlotStepMinutes)
		public.Handle("/holds",
			bookingLimiter(http.HandlerFunc(acquire_hold.NewHandler(acquireHoldUC, logg).Handle))).Methods(http.MethodPost)
	}

	// Админская часть
	admin := router.PathPrefix("/api/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Auth.AdminToken, logg))

	admin.HandleFunc("/halls",
		list_halls.NewHandler(hallsService, logg, true).Handle).Methods(http.MethodGet)
	admin.HandleFunc("/halls",
		create_hall.NewHandler(hallsService, logg).Handle).Methods(http.MethodPost)
	admin.HandleFunc("/halls/{id}",
		get_hall.NewHandler(hallsService, logg, true).Handle).Methods(http.MethodGet)
	admin.HandleFunc("/halls/{id}",
		update_hall.NewHandler(hallsService, logg).Handle).Methods(http.MethodPut)
	admin.HandleFunc("/halls/{id}",
		delete_hall.NewHandler(hallsService, logg).Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/halls/{id}/reservations",
		get_hall_reservations.NewHandler(reservationsService, logg).Handle).Methods(http.MethodGet)
	admin.HandleFunc("/halls/{id}/reservations/export",
		export_reservations.NewHandler(reservationsService, logg).Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{id}",
		get_reservation.NewHandler(reservationsService, logg).Handle).Methods(http.MethodGet)
	admin.HandleFunc("/reservations/{id}/status",
		update_reservation_status.NewHandler(reservationsService, logg).Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/reservations/{id}/cancel",
		cancel_reservation.NewHandler(reservationsService, logg).Handle).Methods(http.MethodPost)
	admin.HandleFunc("/reservations/{id}",
		delete_reservation.NewHandler(reservationsService, logg).Handle).Methods(http.MethodDelete)

	admin.HandleFunc("/posts",
		list_posts.NewHandler(postsService, logg, true).Handle).Methods(http.MethodGet)
	admin.HandleFunc("/posts",
		create_post.NewHandler(postsService, logg).Handle).Methods(http.MethodPost)
	admin.HandleFunc("/posts/{slug}",
		get_post.NewHandler(postsService, logg, true).Handle).Methods(http.MethodGet)
	admin.HandleFunc("/posts/{id:[0-9]+}",
		update_post.NewHandler(postsService, logg).Handle).Methods(http.MethodPut)
	admin.HandleFunc("/posts/{id:[0-9]+}",
		delete_post.NewHandler(postsService, logg).Handle).Methods(http.MethodDelete)

	if mediaStore != nil {
		admin.HandleFunc("/media",
			upload_media.NewHandler(mediaStore, logg).Handle).Methods(http.MethodPost)
		admin.HandleFunc("/media/{object}",
			delete_media.NewHandler(mediaStore, logg).Handle).Methods(http.MethodDelete)
	}

	// HTTP сервер с graceful shutdown
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.HTTPPort),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info("main: listening on %s", server.Addr)
		errCh <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logg.Fatal("main: server error: %v", err)
	case sig := <-quit:
		logg.Info("main: received signal %s, shutting down", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logg.Error("main: shutdown error: %v", err)
	}

	logg.Info("main: stopped")
}
