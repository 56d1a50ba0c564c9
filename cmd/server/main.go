package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yourusername/resumeboost-api/internal/config"
	"github.com/yourusername/resumeboost-api/internal/handler"
	"github.com/yourusername/resumeboost-api/internal/service"
	"github.com/yourusername/resumeboost-api/internal/upload"
	"github.com/yourusername/resumeboost-api/web"
)

func main() {
	// ── Config ───────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// ── Logging ──────────────────────────────────────────
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.Env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("Unknown LOG_LEVEL, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Info().
		Str("env", cfg.Env).
		Str("port", cfg.Port).
		Str("model", cfg.OpenAIModel).
		Int("maxConcurrentCompletions", cfg.MaxConcurrentCompletions).
		Msg("Starting ResumeBoost API")

	// ── Services ─────────────────────────────────────────
	openaiClient := service.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
	completer := service.NewLimitedCompleter(openaiClient, cfg.MaxConcurrentCompletions, cfg.OpenAITimeout)
	analyzer := service.NewAnalyzer(completer)

	stager, err := upload.NewStager(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to prepare upload directory")
	}

	// ── Router ───────────────────────────────────────────
	assets := web.Public()
	analyzeHandler := handler.NewAnalyzeHandler(analyzer, stager, assets)
	r := handler.NewRouter(cfg, analyzeHandler, assets)

	// ── Server ───────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.OpenAITimeout + 30*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	log.Info().Str("addr", "http://localhost:"+cfg.Port).Msg("ResumeBoost API server running")

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.OpenAITimeout+5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
