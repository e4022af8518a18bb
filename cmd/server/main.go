package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"wordlookup/internal/config"
	"wordlookup/internal/db"
	"wordlookup/internal/dictionary"
	"wordlookup/internal/jobs"
	"wordlookup/internal/logger"
	"wordlookup/internal/metrics"
	"wordlookup/internal/server"
	"wordlookup/internal/validation"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()
	logger.New(cfg.LogLevel, cfg.LogFormat)

	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		fatal("Failed to load config file", err)
	}
	if err := yamlCfg.Apply(cfg); err != nil {
		fatal("Invalid config file", err)
	}

	for _, endpoint := range []string{cfg.DictionaryBaseURL, cfg.MediaBaseURL} {
		if valid, msg := validation.ValidateURL(endpoint); !valid {
			slog.Error("Invalid dictionary endpoint", "url", endpoint, "reason", msg)
			os.Exit(1)
		}
	}

	if !cfg.HasAPIKey() {
		slog.Warn("DICTIONARY_API_KEY is not set; lookups will be rejected by the dictionary API")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	deps := server.Deps{
		Lookup:   dictionary.NewClient(cfg.DictionaryBaseURL, cfg.DictionaryAPIKey, cfg.DictionaryTimeout, slog.Default()),
		Gatherer: registry,
	}

	// Lookup statistics are optional
	var recorder *metrics.Recorder
	if cfg.StatsEnabled() {
		database, err := db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			fatal("Failed to connect to database", err)
		}
		defer database.Close()

		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			fatal("Failed to run migrations", err)
		}
		slog.Info("Migrations completed successfully")

		recorder = metrics.New(registry, database)
		deps.DB = database
		deps.TopWords = database
	} else {
		slog.Info("DATABASE_URL not set; lookup statistics are kept in memory")
		recorder = metrics.New(registry, nil)
	}
	deps.Recorder = recorder

	// Background upstream checker
	if cfg.UpstreamCheckInterval > 0 {
		checker := jobs.NewUpstreamChecker([]string{cfg.DictionaryBaseURL, cfg.MediaBaseURL}, cfg.UpstreamCheckInterval, recorder)
		go checker.Start(ctx)
		deps.Upstream = checker
	}

	srv := server.New(cfg)
	srv.RegisterRoutes(deps)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("Server error", "error", err)
		}
	}()

	slog.Info("Server started", "addr", cfg.ServerAddr, "dictionary", endpointHost(cfg.DictionaryBaseURL))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		fatal("Server forced to shutdown", err)
	}
	recorder.Wait()
	slog.Info("Server exited")
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}

func endpointHost(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return u.Host
}
