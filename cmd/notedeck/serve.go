package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"notedeck/internal/adapter"
	"notedeck/internal/config"
	"notedeck/internal/handler"
	"notedeck/internal/repository/sqlite"
	"notedeck/internal/service"
)

var (
	serveAddr   string
	serveDB     string
	serveConfig string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the notedeck HTTP server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "HTTP listen address (overrides config)")
	serveCmd.Flags().StringVar(&serveDB, "db", "", "SQLite database path (overrides config)")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Config file path")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	var (
		cfg  *config.Config
		path string
		err  error
	)
	if serveConfig != "" {
		cfg, path, err = config.LoadFromPath(serveConfig)
	} else {
		cfg, path, err = config.Load()
	}
	if err != nil {
		return err
	}
	if path != "" {
		log.Info().Str("path", path).Msg("config loaded")
	}

	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}
	if serveDB != "" {
		cfg.Database.Path = serveDB
	}

	// A store that cannot be opened and migrated is fatal: the server
	// must not run against an unverified schema.
	repo, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		return err
	}
	defer repo.Close()
	log.Info().Str("path", cfg.Database.Path).Msg("database opened")

	summarizer := adapter.NewClaudeSummarizer(config.APIKey(), cfg.AI.Model, cfg.AI.Timeout.Duration())
	speech := adapter.NewTTSClient(cfg.Speech.Endpoint, cfg.Speech.Language, cfg.Speech.Timeout.Duration())

	noteSvc := service.NewNoteService(repo, summarizer, speech)
	todoSvc := service.NewTodoService(repo)

	mux := handler.Routes(handler.NewNoteHandler(noteSvc), handler.NewTodoHandler(todoSvc))

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler.Chain(mux, handler.Recover, handler.CORS, handler.Logger),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("server listening")
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("server stopped")
	return nil
}
