// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The VaultLocker Authors

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/vaultlocker/vaultlocker/internal/config"
	"github.com/vaultlocker/vaultlocker/internal/crypto"
	"github.com/vaultlocker/vaultlocker/internal/handler"
	"github.com/vaultlocker/vaultlocker/internal/logger"
	"github.com/vaultlocker/vaultlocker/internal/service"
	"github.com/vaultlocker/vaultlocker/internal/session"
	"github.com/vaultlocker/vaultlocker/internal/storage"
	"github.com/vaultlocker/vaultlocker/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const shutdownTimeout = 5 * time.Second

func main() {
	printBuildInfo()

	log := logger.NewLogger("vaultd")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("vault daemon stopped with error")
	}

	log.Info().Msg("vault daemon stopped")
}

func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	extension, page, closeStorage, err := storage.OpenAreas(ctx,
		cfg.Storage.Driver, cfg.Storage.Path, cfg.Storage.PageAreaPath, log)
	if err != nil {
		return fmt.Errorf("opening storage areas: %w", err)
	}
	defer closeStorage()

	cipher := crypto.NewCipher()
	vaultStore := store.NewVaultStore(extension, cipher, log)
	sessions := session.NewManager(extension, page, vaultStore, log)
	resolver := session.NewResolver(sessions, log)
	vault := service.NewVaultService(vaultStore, resolver, cipher, log)

	h := handler.NewHandler(vault, log)

	server := &http.Server{
		Addr:    cfg.Daemon.Address,
		Handler: h.Init(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("address", cfg.Daemon.Address).Msg("vault daemon listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err = <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err = server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	if err = <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
