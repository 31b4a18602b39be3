package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/example/nchub/internal/assistant"
	"github.com/example/nchub/internal/config"
	"github.com/example/nchub/internal/database"
	"github.com/example/nchub/internal/notify"
	"github.com/example/nchub/internal/scheduler"
	"github.com/example/nchub/internal/server"
	"github.com/example/nchub/internal/store"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	cfg := config.Load()

	var backend database.Backend
	switch cfg.PersistMode {
	case config.ModeRemote:
		backend, err = database.NewRemote(cfg.DatabaseURL, logger)
	default:
		backend, err = database.NewLocal(cfg.LocalDBPath, logger)
	}
	if err != nil {
		logger.Fatal("failed to open persistence backend",
			zap.String("mode", string(cfg.PersistMode)),
			zap.Error(err))
	}
	defer backend.Close()
	logger.Info("persistence backend ready", zap.String("mode", string(cfg.PersistMode)))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st := store.New(backend, logger)
	st.Hydrate(ctx)

	gateway := assistant.New(cfg.AnthropicAPIKey, logger)

	// Reminders only run when a Telegram chat is configured.
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		notifier, err := notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID, logger)
		if err != nil {
			logger.Warn("telegram notifier unavailable, reminders disabled", zap.Error(err))
		} else {
			sched := scheduler.New(st, notifier, logger, cfg.ReminderStartHour, cfg.ReminderEndHour)
			sched.Start()
			defer sched.Stop()
		}
	}

	srv := server.New(st, gateway, logger, cfg.HTTPAddr)

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
		if err := backend.Close(); err != nil {
			logger.Warn("error closing backend", zap.Error(err))
		}
		logger.Sync()
		os.Exit(0)
	}()

	logger.Info("server starting", zap.String("addr", cfg.HTTPAddr))
	if err := srv.Run(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
