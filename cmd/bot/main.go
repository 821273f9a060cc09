package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/reminder-bot/internal/config"
	"github.com/diegoclair/reminder-bot/internal/database"
	"github.com/diegoclair/reminder-bot/internal/domain/contract"
	"github.com/diegoclair/reminder-bot/internal/domain/service"
	"github.com/diegoclair/reminder-bot/internal/handlers"
	"github.com/diegoclair/reminder-bot/internal/scheduler"
	slacknotifier "github.com/diegoclair/reminder-bot/internal/slack"
	"github.com/diegoclair/reminder-bot/internal/telegram"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/joho/godotenv"
	"github.com/mudler/xlog"
	"github.com/slack-go/slack"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (default $"+config.EnvConfigFile+")")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		xlog.Warn("No .env file found")
	}

	if err := run(*configPath); err != nil {
		xlog.Error("Reminder bot stopped", "error", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	store, err := database.Open(database.Options{
		Driver:    cfg.Store.Driver,
		Path:      cfg.Store.Path,
		OnCorrupt: database.OnCorrupt(cfg.Store.OnCorrupt),
	})
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer store.Close()

	if err := store.Load(); err != nil {
		return fmt.Errorf("failed to load reminders: %w", err)
	}
	xlog.Info("Reminder store loaded", "driver", cfg.Store.Driver, "path", cfg.Store.Path)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := service.Options{Location: loc, SendTimeout: cfg.Scheduler.SendTimeout}

	switch cfg.Transport {
	case config.TransportSlack:
		return runSlack(ctx, cfg, store, opts)
	default:
		return runTelegram(ctx, cfg, store, opts)
	}
}

func runTelegram(ctx context.Context, cfg *config.Config, store contract.ReminderStore, opts service.Options) error {
	var handler *handlers.TelegramHandler

	b, err := bot.New(cfg.Telegram.BotToken,
		bot.WithDefaultHandler(func(ctx context.Context, _ *bot.Bot, update *models.Update) {
			handler.HandleUpdate(ctx, update)
		}),
		bot.WithErrorsHandler(func(err error) {
			xlog.Error("Telegram polling error", "error", err)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to connect to Telegram: %w", err)
	}
	xlog.Info("Connected to Telegram")

	services := service.NewInstance(store, telegram.NewNotifier(b), scheduler.New(), opts)
	handler = handlers.NewTelegramHandler(b, services.Reminder)

	if err := startScheduler(services.Scheduler, store); err != nil {
		return err
	}
	defer services.Scheduler.Stop()

	xlog.Info("Telegram reminder bot is running")
	b.Start(ctx)
	return nil
}

func runSlack(ctx context.Context, cfg *config.Config, store contract.ReminderStore, opts service.Options) error {
	slackClient := slack.New(cfg.Slack.BotToken)

	services := service.NewInstance(store, slacknotifier.NewNotifier(slackClient), scheduler.New(), opts)
	handler := handlers.New(services.Reminder, cfg.Slack.SigningSecret)

	if err := startScheduler(services.Scheduler, store); err != nil {
		return err
	}
	defer services.Scheduler.Stop()

	mux := http.NewServeMux()
	mux.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	mux.HandleFunc("/health", handler.HandleHealth)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		xlog.Info("Server starting", "port", cfg.Server.Port)
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}

// startScheduler starts the wake-up loop and arms every stored reminder.
func startScheduler(s contract.Scheduler, store contract.ReminderStore) error {
	reminders, err := store.GetReminders()
	if err != nil {
		return fmt.Errorf("failed to read reminders: %w", err)
	}

	s.Start()
	s.ArmAll(reminders)
	return nil
}
