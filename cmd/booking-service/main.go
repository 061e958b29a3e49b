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

	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"ms-booking/internal/booking"
	bookingapi "ms-booking/internal/booking/api"
	"ms-booking/internal/booking/lock"
	"ms-booking/internal/booking/voucher"
	catalogapi "ms-booking/internal/catalog/api"
	"ms-booking/internal/catalog/db"
	"ms-booking/internal/config"
	"ms-booking/internal/kafka"
	"ms-booking/internal/logger"
	"ms-booking/internal/promo"
	"ms-booking/internal/utils"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.NewLogger()
	defer log.Close()

	ctx := context.Background()

	// --- In-memory SQLite setup ---
	sqldb, err := sql.Open(sqliteshim.ShimName, cfg.Database.DSN)
	if err != nil {
		log.Fatal("BOOT", fmt.Sprintf("Failed to open database: %v", err))
	}
	defer sqldb.Close()

	// Everything lives in one in-memory database; a second connection
	// would see a different empty database.
	sqldb.SetMaxOpenConns(1)

	bunDB := bun.NewDB(sqldb, sqlitedialect.New())

	if err := db.Migrate(ctx, bunDB); err != nil {
		log.Fatal("BOOT", fmt.Sprintf("Migration failed: %v", err))
	}
	if err := db.Seed(ctx, bunDB); err != nil {
		log.Fatal("BOOT", fmt.Sprintf("Seeding failed: %v", err))
	}
	log.Info("BOOT", "📦 Catalog seeded into in-memory store")

	store := &db.DB{Bun: bunDB}

	// --- Slot lock ---
	var slotLock booking.SlotLock
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatal("BOOT", fmt.Sprintf("Failed to connect to Redis: %v", err))
		}
		slotLock = lock.NewRedisLock(redisClient, cfg.Redis.LockTTL)
		log.Info("BOOT", "🔗 Redis slot locks enabled")
	} else {
		slotLock = lock.NewLocalLock(cfg.Redis.LockTTL)
		log.Info("BOOT", "Using in-process slot locks")
	}

	// --- Kafka producer ---
	var events booking.EventPublisher
	if cfg.Kafka.Enabled && !cfg.Kafka.MockMode {
		if err := kafka.EnsureTopic(cfg.Kafka.Brokers, cfg.Kafka.Topics.BookingEvents); err != nil {
			log.Warn("BOOT", fmt.Sprintf("Failed to ensure Kafka topic: %v", err))
		}
		producer := kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topics.BookingEvents, log)
		defer producer.Close()
		events = producer
		log.Info("BOOT", "🔗 Kafka booking events enabled")
	} else {
		events = kafka.NewMockProducer(log)
	}

	// --- Services ---
	promoTable := promo.NewTable()
	promoService := promo.NewService(promoTable)
	bookingService := booking.NewService(store, slotLock, events, promoTable, log)
	voucherGen := voucher.NewGenerator(cfg.Voucher.Secret)

	catalogHandler := &catalogapi.Handler{Store: store, Logger: log}
	bookingHandler := &bookingapi.Handler{
		Bookings: bookingService,
		Promo:    promoService,
		Voucher:  voucherGen,
		Logger:   log,
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(utils.Recover(log))
	r.Use(utils.RequestLogger(log))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		utils.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/experiences", catalogHandler.ListExperiences)
		r.Get("/experiences/{experienceId}", catalogHandler.GetExperience)

		r.Post("/bookings", bookingHandler.CreateBooking)
		r.Get("/bookings", bookingHandler.ListBookings)
		r.Get("/bookings/{bookingId}", bookingHandler.GetBooking)
		r.Delete("/bookings/{bookingId}", bookingHandler.CancelBooking)
		r.Get("/bookings/{bookingId}/voucher", bookingHandler.GetVoucher)

		r.Post("/promo/validate", bookingHandler.ValidatePromo)
	})

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("BOOT", fmt.Sprintf("🚀 Booking service running on %s", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("BOOT", fmt.Sprintf("HTTP server error: %v", err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("BOOT", "Shutdown signal received, cleaning up...")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatal("BOOT", fmt.Sprintf("Server forced to shutdown: %v", err))
	}

	log.Info("BOOT", "✅ Server exited gracefully")
}
