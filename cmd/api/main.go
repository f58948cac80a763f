package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"time"

	"watchlog/internal/config"
	"watchlog/internal/http"
	"watchlog/internal/llm"
	"watchlog/internal/service"
	"watchlog/internal/storage"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))

	// Initialize database; failure here is fatal, no operation can
	// proceed without the store
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	historyRepo := storage.NewHistoryRepo(db)
	historyService := service.NewHistoryService(historyRepo)

	llmClient := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)
	enrichmentService := service.NewEnrichmentService(llmClient)
	recommender := service.NewRecommender()

	// A reset destroys the store and ends the process; the shell is
	// responsible for restarting it
	shutdownCh := make(chan struct{})
	resetService := service.NewResetService(db, cfg.DBPath, func() {
		close(shutdownCh)
	})

	deps := &http.Deps{
		History:     historyService,
		Enrichment:  enrichmentService,
		Recommender: recommender,
		Reset:       resetService,
		DB:          db,
	}
	router := http.NewRouter(deps)

	addr := ":" + cfg.APIPort
	server := &nethttp.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		<-shutdownCh
		slog.Info("Store reset complete, shutting down for restart")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Shutdown error", "error", err)
		}
	}()

	slog.Info("Starting API server", "addr", addr)
	slog.Debug("LLM configuration", "base_url", cfg.LLMBaseURL, "model", cfg.LLMModel)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		log.Fatalf("API server failed to start: %v", err)
	}
}
