package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/servisthird/coreledger/internal/config"
	"github.com/servisthird/coreledger/internal/logging"
	"github.com/servisthird/coreledger/internal/seed"
	"github.com/servisthird/coreledger/internal/server"
	"github.com/servisthird/coreledger/internal/storage"
	"github.com/servisthird/coreledger/internal/store"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the ledger HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configPath)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to config file (optional)")

	return cmd
}

func runServe(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Logging)

	gateway, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("opening ledger store: %w", err)
	}
	defer func() {
		if err := gateway.Close(); err != nil {
			logger.Warn("closing ledger store failed", "error", err)
		}
	}()

	var seeds seed.Source = seed.DemoSource{}
	if cfg.Seed.File != "" {
		fileSeeds, err := seed.LoadFile(cfg.Seed.File)
		if err != nil {
			return fmt.Errorf("loading seed file: %w", err)
		}
		seeds = fileSeeds
		logger.Info("using seed file", "path", cfg.Seed.File)
	}

	st := store.New(gateway, seeds, logger)
	router := server.NewRouter(st, logger)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Server.Addr)
		errCh <- srv.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", "signal", sig.String())
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
