package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"

	"divinedetail/config"
	"divinedetail/cron"
	"divinedetail/database"
	"divinedetail/database/repository"
	blockedRepoPkg "divinedetail/database/repository/blocked"
	bookingRepoPkg "divinedetail/database/repository/booking"
	"divinedetail/handlers"
	"divinedetail/routes"
	"divinedetail/services/booking"
	"divinedetail/services/notification"
	"divinedetail/services/tasks"
	"divinedetail/utils"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitSessionCache()
	utils.StartHealthMonitor(database.MongoClient)
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	blockedRepo := blockedRepoPkg.NewMongoBlockedRepo()
	if err := bookingRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}
	if err := blockedRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure blocked-date indexes: %v", err)
	}
	if config.AppConfig.SeedDemoData {
		repository.SeedDemoData(context.Background(), bookingRepo, blockedRepo, logger)
	}

	// services.
	draftStore := booking.NewRedisDraftStore(utils.GetSessionCacheClient())
	engine := &booking.AvailabilityEngine{
		Sources: []booking.CalendarSource{bookingRepo, booking.DraftCalendar{Store: draftStore}},
		Blocked: blockedRepo,
		Logger:  logger,
	}
	sessionService := &booking.SessionService{
		Store:  draftStore,
		Engine: engine,
		Logger: logger,
	}
	checkoutService := &booking.CheckoutService{
		Repo:    bookingRepo,
		Gateway: &booking.StripeGateway{FallbackOrigin: config.AppConfig.FrontendOrigin},
		Logger:  logger,
	}

	notificationService := notification.NewResendNotificationService(
		config.AppConfig.ResendAPIKey,
		config.AppConfig.BookingEmailFrom,
		config.AppConfig.ContactEmail,
	)

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()
	reminderScheduler := &tasks.AsynqReminderScheduler{
		Client:    asynqClient,
		SlotStart: booking.SlotStart,
		Logger:    logger,
	}
	cron.InitReminderWorker(bookingRepo, notificationService)

	confirmationService := &booking.ConfirmationService{
		Repo:      bookingRepo,
		Notifier:  notificationService,
		Scheduler: reminderScheduler,
		Logger:    logger,
	}

	// handlers.
	bookingHandler := handlers.NewBookingHandler(sessionService, engine)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	webhookHandler := handlers.NewWebhookHandler(confirmationService, utils.GetCacheClient(), logger)
	confirmationHandler := handlers.NewConfirmationHandler(bookingRepo)

	handlerBundle := &handlers.HandlerBundle{
		// Catalog endpoints.
		GetServicesHandler:  handlers.GetServicesHandler,
		GetAddOnsHandler:    handlers.GetAddOnsHandler,
		GetTimeSlotsHandler: handlers.GetTimeSlotsHandler,

		// Availability endpoints.
		MonthAvailabilityHandler: bookingHandler.MonthAvailability,
		DayTimesHandler:          bookingHandler.DayTimes,

		// Wizard session endpoints.
		StartSessionHandler:   bookingHandler.StartSession,
		GetSessionHandler:     bookingHandler.GetSession,
		UpdateSessionHandler:  bookingHandler.UpdateSession,
		AdvanceSessionHandler: bookingHandler.AdvanceSession,
		BackSessionHandler:    bookingHandler.BackSession,
		SubmitSessionHandler:  bookingHandler.SubmitSession,
		LatestBookingHandler:  bookingHandler.LatestBooking,

		// Payment endpoints.
		CheckoutHandler:      checkoutHandler.CreateCheckoutSession,
		StripeWebhookHandler: webhookHandler.HandleStripeEvent,

		// Confirmation endpoints.
		GetBookingHandler:       confirmationHandler.GetBooking,
		DownloadCalendarHandler: confirmationHandler.DownloadCalendar,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	routes.RegisterRoutes(router, handlerBundle)

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
