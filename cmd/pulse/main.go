package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/healthloop/pulse/internal/api"
	"github.com/healthloop/pulse/internal/bus"
	"github.com/healthloop/pulse/internal/config"
	"github.com/healthloop/pulse/internal/openai"
	"github.com/healthloop/pulse/internal/pipeline"
	"github.com/healthloop/pulse/internal/slack"
	"github.com/healthloop/pulse/internal/store"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("pulse starting", "port", cfg.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	if cfg.DatabaseURL == "" {
		slog.Error("DATABASE_URL is required")
		os.Exit(1)
	}
	db, err := store.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.EnsureSchema(ctx); err != nil {
		slog.Error("failed to apply schema", "error", err)
		os.Exit(1)
	}
	slog.Info("database connected")

	// Completion client
	if cfg.OpenAIAPIKey == "" {
		slog.Error("OPENAI_API_KEY is required")
		os.Exit(1)
	}
	llm := openai.NewClient(cfg.OpenAIAPIKey, cfg.Model, cfg.OpenAIBaseURL,
		time.Duration(cfg.CompletionTimeoutSecs)*time.Second)
	slog.Info("completion client ready", "model", cfg.Model)

	// Event bus (optional — pulse works without NATS, just no events)
	var publisher pipeline.Publisher
	var busClient *bus.Client
	if cfg.NatsURL != "" {
		busClient, err = bus.NewClient(cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			slog.Error("failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer busClient.Close()
		publisher = busClient
		slog.Info("NATS connected", "url", cfg.NatsURL)
	} else {
		slog.Warn("NATS not configured — running without event bus")
	}

	// Slack notifier (optional)
	var notifier pipeline.Notifier
	if cfg.SlackBotToken != "" && cfg.SlackChannel != "" {
		notifier = slack.NewPoster(cfg.SlackBotToken, cfg.SlackChannel, slog.Default())
		slog.Info("slack notifier ready", "channel", cfg.SlackChannel)
	} else {
		slog.Warn("slack not configured — running without notifications")
	}

	// Pipeline — the core
	pipe := pipeline.New(db, llm, publisher, notifier, slog.Default())

	// HTTP API
	srv := api.NewServer(cfg.Port, pipe)
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	// Announce registration
	if busClient != nil {
		if err := busClient.Publish(bus.SubjectServiceRegistered, map[string]any{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"port":      cfg.Port,
			"model":     cfg.Model,
		}); err != nil {
			slog.Warn("failed to publish registration", "error", err)
		}
	}

	slog.Info("pulse ready", "port", cfg.Port)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	cancel()
	slog.Info("pulse stopped")
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
