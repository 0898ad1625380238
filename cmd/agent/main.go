package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Vodeneev/autobet/internal/agent"
	"github.com/Vodeneev/autobet/internal/analyzer"
	"github.com/Vodeneev/autobet/internal/collector"
	"github.com/Vodeneev/autobet/internal/notifier"
	"github.com/Vodeneev/autobet/internal/pkg/config"
	"github.com/Vodeneev/autobet/internal/pkg/enums"
	"github.com/Vodeneev/autobet/internal/pkg/logging"
	"github.com/Vodeneev/autobet/internal/pkg/storage"
)

const defaultConfigPath = "configs/production.yaml"

func main() {
	// .env is optional, real deployments set env vars directly
	_ = godotenv.Load()

	var configPath string
	var healthAddr string

	defaultConfig := os.Getenv("CONFIG_PATH")
	if defaultConfig == "" {
		defaultConfig = defaultConfigPath
	}

	flag.StringVar(&configPath, "config", defaultConfig, "Path to config file (can be set via CONFIG_PATH env var)")
	flag.StringVar(&healthAddr, "health-addr", ":8080", "Health server listen address (e.g. :8080)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if _, err := logging.SetupLogger(&cfg.Logging, "agent"); err != nil {
		log.Printf("Warning: failed to setup logging: %v, continuing with default logger", err)
	}
	slog.Info("Config loaded", "path", configPath)

	if cfg.SportsAPI.BaseURL == "" {
		slog.Error("sports_api.base_url is required in config")
		log.Fatalf("agent: sports_api.base_url is required in config")
	}
	if cfg.SportsAPI.APIKey == "" {
		slog.Warn("Sports API key is not configured, requests may be rejected")
	}

	var picks storage.PickStorage
	if cfg.Postgres.DSN != "" {
		pgStorage, err := storage.NewPostgresPickStorage(&cfg.Postgres)
		if err != nil {
			log.Fatalf("agent: failed to initialize PostgreSQL storage: %v", err)
		}
		picks = pgStorage
		defer func() {
			if err := pgStorage.Close(); err != nil {
				slog.Error("Error closing PostgreSQL storage", "error", err)
			}
		}()
	} else {
		slog.Info("Postgres DSN not configured, pick history disabled")
	}

	var cache storage.SnapshotCache
	if cfg.Redis.Addr != "" {
		redisCache, err := storage.NewRedisSnapshotCache(&cfg.Redis)
		if err != nil {
			// Cache is an optimization, not a requirement.
			slog.Error("Failed to connect to Redis, snapshot caching disabled", "error", err)
		} else {
			cache = redisCache
			defer func() {
				if err := redisCache.Close(); err != nil {
					slog.Error("Error closing Redis cache", "error", err)
				}
			}()
		}
	}

	sports, err := selectSports(cfg.SportsAPI.Sports)
	if err != nil {
		log.Fatalf("agent: %v", err)
	}

	tg := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	if tg == nil {
		slog.Warn("Telegram is not configured, selections will only be logged")
	}

	a := agent.New(
		collector.NewCollector(collector.NewClient(&cfg.SportsAPI), sports),
		analyzer.NewAnalyzer(nil),
		tg,
		picks,
		cache,
		cfg.Schedule,
		cfg.Redis.SnapshotTTL,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, stopping agent...")
		cancel()
	}()

	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("pong\n"))
	})
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})
	a.RegisterHTTP(mux)

	srv := &http.Server{
		Addr:              healthAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	go func() {
		slog.Info("HTTP server listening", "addr", healthAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
		}
	}()

	if err := a.Start(ctx); err != nil {
		slog.Error("Agent failed", "error", err)
		log.Fatalf("Agent failed: %v", err)
	}

	slog.Info("Agent stopped")
}

// selectSports resolves the configured sport list. If sports_api.sports is
// not specified, all supported sports are collected.
func selectSports(names []string) ([]enums.Sport, error) {
	var sports []enums.Sport
	for _, name := range names {
		n := strings.ToLower(strings.TrimSpace(name))
		if n == "" {
			continue
		}
		sport, ok := enums.ParseSport(n)
		if !ok {
			return nil, fmt.Errorf("unknown sport in sports_api.sports: %q (supported: %v)", name, enums.GetAllSports())
		}
		sports = append(sports, sport)
	}
	return sports, nil
}
