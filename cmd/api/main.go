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

	_ "cv-builder/docs" // Swagger docs
	"cv-builder/internal/ai"
	"cv-builder/internal/api"
	"cv-builder/internal/config"
	"cv-builder/internal/posting"
	"cv-builder/internal/storage"
)

// @title CV Builder API
// @version 1.0
// @description Backend for a CV builder: validated record storage plus AI-assisted summary improvement and job-posting compatibility analysis

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /api

func main() {
	log.Logger = zerolog.New(os.Stdout).With().
		Str("service", "cv-builder").
		Timestamp().
		Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := storage.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db open")
	}
	defer db.Close()
	log.Info().Msg("database connected")

	// Without the credential the AI endpoints degrade to a clean 500.
	var enhancer api.Enhancer
	if cfg.OpenAIAPIKey != "" {
		enhancer = ai.NewService(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	} else {
		log.Warn().Msg("OPENAI_API_KEY not set, AI endpoints disabled")
	}

	apiSrv := api.NewAPI(db, enhancer, posting.NewExtractor(cfg.UploadsDir))
	router := api.NewRouter(apiSrv)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 3 * time.Minute, // completion calls can be slow
		IdleTimeout:  120 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("server shutdown")
		}
		close(idleConnsClosed)
	}()

	log.Info().Str("addr", srv.Addr).Msg("API server listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server failed")
	}

	<-idleConnsClosed
}
