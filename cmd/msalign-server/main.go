// Command msalign-server provides a REST API for multi-speaker dialogue
// alignment.
//
// Usage:
//
//	msalign-server [options]
//
// Options:
//
//	--addr             Address to bind to (default: ":8080")
//	--log-level        zerolog level (default: "info")
//	--partial-bound    Loaded into the configuration but not passed to the
//	                   handlers, which use 2 unless a request body sets
//	                   partial_bound
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/dialogalign/msalign/api/handlers"
	appmiddleware "github.com/dialogalign/msalign/api/middleware"
	"github.com/dialogalign/msalign/internal/config"
)

func main() {
	flags := pflag.NewFlagSet("msalign-server", pflag.ExitOnError)
	flags.String("addr", ":8080", "address to bind to")
	flags.String("log-level", "info", "zerolog level")
	flags.Int("partial-bound", 2, "partial-match bound (not applied by the handlers, which use 2 unless a request sets partial_bound)")
	flags.Parse(os.Args[1:])

	cfg, err := config.Load(flags)
	if err != nil {
		zerolog.New(os.Stderr).Fatal().Err(err).Msg("failed to load configuration")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(appmiddleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Route("/api/align", func(r chi.Router) {
		r.Post("/without-segment", handlers.WithoutSegmentHandler)
		r.Post("/auto-segment", handlers.AutoSegmentHandler)
		r.Post("/manual-segment", handlers.ManualSegmentHandler)
		r.Post("/match-result", handlers.MatchResultHandler)
		r.Post("/indices", handlers.IndicesHandler)
		r.Post("/ref-original-indices", handlers.RefOriginalIndicesHandler)
		r.Post("/speaker-labels", handlers.SpeakerLabelsHandler)
		r.Post("/stats", handlers.StatsHandler)
	})

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info().Msg("server is shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		server.SetKeepAlivesEnabled(false)
		if err := server.Shutdown(ctx); err != nil {
			log.Fatal().Err(err).Msg("could not gracefully shut down")
		}
		close(done)
	}()

	log.Info().Str("addr", cfg.Addr).Msg("msalign-server starting")
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Str("addr", cfg.Addr).Msg("could not listen")
	}

	<-done
	log.Info().Msg("server stopped")
}
