package main

import (
	"platformone/config"
	"platformone/internal/api"
	"platformone/internal/mailer"
	"platformone/internal/repository"
	"platformone/internal/service"
	"platformone/pkg/db"
	"platformone/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	// 1. Load config
	cfg := config.Load()

	log := logger.NewLogger()
	defer log.Sync()

	// 2. Init DB
	dbConn, err := db.NewConnection(cfg.DB, log)
	if err != nil {
		log.Fatal("DB initialization failed", zap.Error(err))
	}

	// 3. Init repositories
	eventRepo := repository.NewEventRepository(dbConn)
	bookingRepo := repository.NewBookingRepository(dbConn)
	confirmationRepo := repository.NewConfirmationRepository(dbConn)
	userRepo := repository.NewUserRepository(dbConn)

	// 4. Init email sender; left nil without a credential so reminder
	// sends run in mock mode instead of attempting delivery.
	var sender mailer.Sender
	if cfg.Email.APIKey != "" {
		sender = mailer.NewResendSender(cfg.Email.APIKey, cfg.Email.From, log)
	} else {
		log.Warn("RESEND_API_KEY not configured, reminder sends will be mocked")
	}

	// 5. Init services
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret)
	reminderService := service.NewReminderService(
		eventRepo,
		bookingRepo,
		confirmationRepo,
		sender,
		cfg.App.BaseURL,
		cfg.App.SendConcurrency,
		log,
	)
	confirmationService := service.NewConfirmationService(confirmationRepo, cfg.Confirmation.AllowReresponse, log)
	attendeeService := service.NewAttendeeService(eventRepo, bookingRepo, confirmationRepo)

	// 6. Init handlers
	authHandler := api.NewAuthHandler(authService)
	eventHandler := api.NewEventHandler(eventRepo, userRepo, cfg.JWT.Secret)
	confirmationHandler := api.NewConfirmationHandler(confirmationService)
	reminderHandler := api.NewReminderHandler(reminderService, attendeeService)

	// 7. Init router
	router := api.NewRouter(authHandler, eventHandler, confirmationHandler, reminderHandler, cfg.JWT.Secret)

	// 8. Run server
	if err := router.Run(cfg.Server.Port); err != nil {
		log.Fatal("server start failed", zap.Error(err))
	}
}
