package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campusdesk/meritbot/internal/api"
	"github.com/campusdesk/meritbot/internal/config"
	"github.com/campusdesk/meritbot/internal/dialogue"
	"github.com/campusdesk/meritbot/internal/events"
	"github.com/campusdesk/meritbot/internal/extract"
	"github.com/campusdesk/meritbot/internal/gemini"
	"github.com/campusdesk/meritbot/internal/merit"
	"github.com/campusdesk/meritbot/internal/normalize"
	"github.com/campusdesk/meritbot/internal/resolve"
	"github.com/campusdesk/meritbot/internal/session"
	"github.com/campusdesk/meritbot/internal/store"
)

func main() {
	cfg := config.Load()
	setupLogging(cfg.LogLevel)

	slog.Info("meritbot starting", "port", cfg.Port)

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
		slog.Error("failed to ensure schema", "error", err)
		os.Exit(1)
	}
	slog.Info("database ready")

	// One-time CSV ingestion when the table is empty.
	count, err := db.CountRecords(ctx)
	if err != nil {
		slog.Error("failed to count records", "error", err)
		os.Exit(1)
	}
	if count == 0 && cfg.CSVPath != "" {
		if _, statErr := os.Stat(cfg.CSVPath); statErr == nil {
			n, err := db.ImportCSV(ctx, cfg.CSVPath)
			if err != nil {
				slog.Error("csv import failed", "path", cfg.CSVPath, "error", err)
				os.Exit(1)
			}
			slog.Info("csv imported", "path", cfg.CSVPath, "rows", n)
		} else {
			slog.Warn("merit table empty and no CSV found", "path", cfg.CSVPath)
		}
	}

	records, err := db.LoadRecords(ctx)
	if err != nil {
		slog.Error("failed to load records", "error", err)
		os.Exit(1)
	}
	slog.Info("merit records loaded", "count", len(records))

	// Derived vocabularies and the turn pipeline.
	index := merit.BuildIndex(records)
	aliases := merit.DefaultAliases()
	normalizer := normalize.New(index, aliases)
	extractor := extract.New(index, aliases)
	resolver := resolve.New(records, index)

	// Gemini oracle (optional; heuristics cover extraction without it).
	var oracle *extract.Oracle
	if cfg.GeminiAPIKey != "" {
		llm := gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
		oracle = extract.NewOracle(llm, index, slog.Default())
		slog.Info("gemini oracle ready", "model", cfg.GeminiModel)
	} else {
		slog.Warn("GEMINI_API_KEY not set, running on heuristic extraction only")
	}

	// NATS turn telemetry (optional).
	var bus *events.Client
	if cfg.NatsURL != "" {
		bus, err = events.NewClient(cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			slog.Error("failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer bus.Close()
		slog.Info("NATS connected", "url", cfg.NatsURL)

		if err := bus.Publish(events.SubjectRegistered, map[string]any{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"port":      cfg.Port,
			"records":   len(records),
		}); err != nil {
			slog.Warn("failed to publish registration", "error", err)
		}
	} else {
		slog.Warn("NATS not configured, running without turn telemetry")
	}

	sessions := session.NewMemoryStore()
	manager := dialogue.NewManager(index, normalizer, extractor, oracle, resolver, sessions, bus, slog.Default())

	// HTTP API
	srv := api.NewServer(cfg.Port, manager, cfg.StaticDir, len(records))
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	slog.Info("meritbot ready", "port", cfg.Port)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	slog.Info("shutting down")
	cancel()
	slog.Info("meritbot stopped")
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
