package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"paralympics-api/internal/server"
	"paralympics-api/internal/storage"
	"paralympics-api/pkg/config"
	"paralympics-api/pkg/logger"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:          "api",
		Short:        "REST API for Paralympic regions and events",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), envFile)
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load before reading the environment")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), envFile)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Load the bundled regions and events into an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), envFile)
		},
	})
	return root
}

// setup loads configuration, builds the logger and opens the database
func setup(ctx context.Context, envFile string) (*config.Config, zerolog.Logger, *sqlx.DB, error) {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}

	// Load configuration
	cfg, err := config.LoadConfig(files...)
	if err != nil {
		return nil, zerolog.Nop(), nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Environment, cfg.LogLevel)

	// Connect to database
	db, err := storage.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error().Err(err).Msg("failed to connect to database")
		return nil, log, nil, err
	}
	return cfg, log, db, nil
}

func runSeed(ctx context.Context, envFile string) error {
	_, log, db, err := setup(ctx, envFile)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := storage.Seed(ctx, db, logger.Component(log, "seed")); err != nil {
		log.Error().Err(err).Msg("failed to seed database")
		return err
	}
	return nil
}

func runServe(ctx context.Context, envFile string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, log, db, err := setup(ctx, envFile)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.SeedData {
		if _, err := storage.Seed(ctx, db, logger.Component(log, "seed")); err != nil {
			log.Error().Err(err).Msg("failed to seed database")
			return err
		}
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := server.NewRouter(db, log, server.Options{AllowedOrigins: cfg.AllowedOrigins})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("failed to start server")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return err
	}
	return nil
}
