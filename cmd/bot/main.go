package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/domain/notification"
	"homework_status_bot/internal/infra/config"
	idb "homework_status_bot/internal/infra/database"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"
)

func main() {
	fmt.Println("Homework Status Bot starting...")

	cfg, err := config.Load()
	if err != nil {
		// Logger is not configured yet.
		log.Fatalf("FATAL: Could not load application configuration: %v", err)
	}

	baseLogger := logger.New(cfg)
	svcLogger := baseLogger.WithField("service", "homework_status_bot")
	mainLogger := svcLogger.WithField("component", "main")
	mainLogger.Infof("Configuration loaded. LogLevel: %s, Environment: %s, Endpoint: %s, Schedule: %s, Chat: %s",
		cfg.LogLevel, cfg.Environment, cfg.Endpoint, cfg.RetrySchedule, cfg.TelegramChatID)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Delivery journal is optional
	var journal notification.Repository
	if cfg.DatabaseURL != "" {
		db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
		if err != nil {
			mainLogger.WithError(err).Fatal("Could not connect to database")
		}
		defer db.Close()
		if err := idb.EnsureSchema(ctx, db); err != nil {
			mainLogger.WithError(err).Fatal("Could not prepare database schema")
		}
		journal = idb.NewPostgresNotificationRepository(db)
		mainLogger.Info("Notification journal initialized.")
	}

	bot, err := telegram.NewSendOnlyBot(cfg.TelegramToken, mainLogger)
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create Telegram bot")
	}
	messenger := telegram.NewTelebotAdapter(bot, cfg.TelegramSendRate)
	mainLogger.Info("Telegram bot initialized.")

	retryScheduler, err := scheduler.NewRetryScheduler(cfg.RetrySchedule, svcLogger)
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not configure retry schedule")
	}

	apiClient := practicum.NewClient(cfg.Endpoint, cfg.PracticumToken, cfg.HTTPTimeout, svcLogger)

	loop := app.NewPollLoop(
		apiClient,
		messenger,
		journal,
		retryScheduler,
		cfg.TelegramChatID,
		cfg.InitialFromDate,
		svcLogger,
	)

	mainLogger.Info("Application setup complete. Polling is starting...")
	if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		mainLogger.WithError(err).Error("Poll loop exited unexpectedly")
	}
	mainLogger.Info("Application shut down gracefully.")
}
