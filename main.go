// File: apptly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"apptly/config"
	"apptly/cron"
	"apptly/database"
	appointmentsRepo "apptly/database/repository/appointments"
	"apptly/handlers"
	"apptly/middleware"
	"apptly/routes"
	"apptly/services/booking"
	"apptly/services/indexer"
	ai "apptly/services/intelligence"
	"apptly/services/notification"
	"apptly/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitSessionStore()
	utils.InitHistoryStore()

	location, err := time.LoadLocation(config.AppConfig.BusinessTimezone)
	if err != nil {
		logger.Sugar().Fatalf("main: invalid business timezone %q: %v", config.AppConfig.BusinessTimezone, err)
	}

	gemini, err := ai.NewGeminiClient(context.Background(), config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Collaborators.
	mailer := notification.NewSMTPMailer(
		config.AppConfig.SMTPHost,
		config.AppConfig.SMTPPort,
		config.AppConfig.SMTPUser,
		config.AppConfig.SMTPPassword,
	)
	apptRepo := appointmentsRepo.NewMongoAppointmentRepo()
	index := indexer.NewMongoIndexer(database.DB())
	reminders := cron.NewReminderQueue()
	defer reminders.Close()

	cron.InitReminderWorker(mailer)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetSessionClient(), utils.GetHistoryClient()},
		database.MongoClient,
	)

	// The booking conversation engine.
	engine := &booking.Engine{
		States:       booking.NewRedisStateStore(utils.GetSessionClient()),
		History:      booking.NewRedisHistoryStore(utils.GetHistoryClient()),
		Classifier:   booking.NewClassifier(config.AppConfig.BookingTriggers),
		Responder:    gemini,
		Notifier:     mailer,
		Embedder:     gemini,
		Indexer:      index,
		Records:      apptRepo,
		Reminders:    reminders,
		AdminEmail:   config.AppConfig.AdminEmail,
		Location:     location,
		ReminderLead: time.Duration(config.AppConfig.ReminderLeadHours) * time.Hour,
		Logger:       logger,
	}

	chatHandler := handlers.NewChatHandler(engine, logger)
	apptHandler := handlers.NewAppointmentHandler(mailer, apptRepo, config.AppConfig.AdminEmail, logger)

	routes.RegisterRoutes(router, chatHandler, apptHandler)

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
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: forced shutdown: %v", err)
	}
}
