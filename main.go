// File: glowstudio/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glowstudio/config"
	"glowstudio/cron"
	"glowstudio/database"
	ledgerRepo "glowstudio/database/repository/ledger"
	"glowstudio/handlers"
	"glowstudio/middleware"
	"glowstudio/routes"
	"glowstudio/services/booking"
	"glowstudio/services/catalog"
	"glowstudio/services/notification"
	"glowstudio/services/tasks"
	"glowstudio/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Without a Mongo URL the service runs standalone: in-memory ledger with
	// demo bookings, in-memory drafts, no reminder queue.
	standalone := config.AppConfig.MongoURL == ""

	var repo ledgerRepo.LedgerRepository
	var sessions booking.SessionStore
	var reminders booking.ReminderScheduler

	if standalone {
		logger.Sugar().Info("main: no MONGO_URL configured, running with in-memory storage")
		repo = ledgerRepo.NewMemoryLedgerRepo(catalog.DemoBookings(time.Now())...)
		sessions = booking.NewMemorySessionStore()
	} else {
		database.InitDB()
		repo = ledgerRepo.NewMongoLedgerRepo()
		sessions = booking.NewRedisSessionStore(utils.GetSessionCacheClient(), 10*time.Minute)

		queueClient := asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		})
		defer queueClient.Close()
		reminders = &tasks.ReminderQueue{
			Client: queueClient,
			Lead:   time.Duration(config.AppConfig.ReminderLeadHours) * time.Hour,
		}
		cron.InitReminderWorker(&notification.LogNotificationService{})
	}

	studioCatalog := catalog.Default()

	ledger, err := booking.NewBookingLedger(repo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load booking ledger: %v", err)
	}

	sessionService := &booking.DefaultSessionService{
		Catalog:  studioCatalog,
		Ledger:   ledger,
		Sessions: sessions,
		Slots: booking.SlotConfig{
			SlotDuration: config.AppConfig.SlotDurationMin,
			MinLeadHours: config.AppConfig.MinBookingHoursAhead,
		},
		DaysAhead: config.AppConfig.BookingDaysAhead,
		Reminders: reminders,
	}

	catalogHandler := handlers.NewCatalogHandler(studioCatalog)
	bookingHandler := handlers.NewBookingHandler(sessionService, ledger, logger)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	routes.RegisterRoutes(router, catalogHandler, bookingHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
